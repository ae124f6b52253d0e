package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNewCommandLine(t *testing.T) {
	c := NewCommandLine(nil)

	assert.True(t, c.Focused())
	assert.Empty(t, c.Value())
	assert.Empty(t, c.Recall())
	assert.Equal(t, 50, c.Width())
}

func TestCommandLine_Init(t *testing.T) {
	c := NewCommandLine(nil)

	assert.NotNil(t, c.Init())
}

func TestCommandLine_Typing(t *testing.T) {
	c := NewCommandLine(nil)

	c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("debug_ping")})

	assert.Equal(t, "debug_ping", c.Value())
}

func TestCommandLine_SetValueAndReset(t *testing.T) {
	c := NewCommandLine(nil)

	c.SetValue("shell_echo hi")
	assert.Equal(t, "shell_echo hi", c.Value())

	c.Reset()
	assert.Empty(t, c.Value())
}

func TestCommandLine_View(t *testing.T) {
	c := NewCommandLine(nil)

	assert.Contains(t, c.View(), "dsctl> ")
}

func TestCommandLine_FocusBlur(t *testing.T) {
	c := NewCommandLine(nil)

	c.Blur()
	assert.False(t, c.Focused())

	c.Focus()
	assert.True(t, c.Focused())
}

func TestCommandLine_SetWidth(t *testing.T) {
	c := NewCommandLine(nil)

	c.SetWidth(100)
	assert.Equal(t, 100, c.Width())
	assert.Equal(t, 88, c.textinput.Width)

	c.SetWidth(10)
	assert.Equal(t, 20, c.textinput.Width)
}

func TestCommandLine_Remember(t *testing.T) {
	c := NewCommandLine(nil)

	c.Remember("a")
	c.Remember("a")
	c.Remember("")
	c.Remember("b")

	assert.Equal(t, []string{"a", "b"}, c.Recall())
}

func TestCommandLine_RememberCapped(t *testing.T) {
	c := NewCommandLine(nil)

	for i := 0; i < maxRecall+10; i++ {
		c.Remember(string(rune('a' + i%26)))
	}

	assert.Len(t, c.Recall(), maxRecall)
}

func TestCommandLine_PreviousNext(t *testing.T) {
	c := NewCommandLine(nil)
	c.Remember("first")
	c.Remember("second")
	c.SetValue("draft")

	c.Previous()
	assert.Equal(t, "second", c.Value())

	c.Previous()
	assert.Equal(t, "first", c.Value())

	// Stays on the oldest line.
	c.Previous()
	assert.Equal(t, "first", c.Value())

	c.Next()
	assert.Equal(t, "second", c.Value())

	c.Next()
	assert.Equal(t, "draft", c.Value())

	// Nothing newer than the draft.
	c.Next()
	assert.Equal(t, "draft", c.Value())
}

func TestCommandLine_PreviousWithoutRecall(t *testing.T) {
	c := NewCommandLine(nil)
	c.SetValue("typed")

	c.Previous()

	assert.Equal(t, "typed", c.Value())
}

func TestCommandLine_RecallIsCopy(t *testing.T) {
	c := NewCommandLine(nil)
	c.Remember("a")

	recall := c.Recall()
	recall[0] = "changed"

	assert.Equal(t, []string{"a"}, c.Recall())
}
