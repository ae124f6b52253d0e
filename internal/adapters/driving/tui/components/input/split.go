package input

import (
	"errors"
	"strings"
)

// ErrUnterminatedQuote is returned by SplitLine for a quote left open.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// SplitLine splits a command line into words. Words are separated by
// whitespace; single and double quotes group text, and a backslash outside
// single quotes escapes the next character.
func SplitLine(line string) ([]string, error) {
	var (
		words   []string
		current strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inWord = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				words = append(words, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 || escaped {
		return nil, ErrUnterminatedQuote
	}
	if inWord {
		words = append(words, current.String())
	}
	return words, nil
}
