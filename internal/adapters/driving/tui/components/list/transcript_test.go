package list

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

func TestNewTranscript(t *testing.T) {
	tr := NewTranscript(nil)

	assert.Equal(t, 0, tr.Count())
	assert.Nil(t, tr.Init())
	assert.Contains(t, tr.View(), "Type a command")
}

func TestTranscript_Add(t *testing.T) {
	tr := NewTranscript(nil)

	tr.Add(Entry{Line: "debug_add 1 2", Value: domain.IntegerValue(3), Duration: time.Millisecond})

	assert.Equal(t, 1, tr.Count())
	view := tr.View()
	assert.Contains(t, view, "debug_add 1 2")
	assert.Contains(t, view, "3")
	assert.Contains(t, view, "Integer")
}

func TestTranscript_AddError(t *testing.T) {
	tr := NewTranscript(nil)

	tr.Add(Entry{Line: "debug_fail", Err: errors.New("boom")})

	assert.Contains(t, tr.View(), "!! boom")
}

func TestTranscript_Capped(t *testing.T) {
	tr := NewTranscript(nil)

	for i := 0; i < maxEntries+5; i++ {
		tr.Add(Entry{Line: fmt.Sprintf("line %d", i)})
	}

	entries := tr.Entries()
	assert.Len(t, entries, maxEntries)
	assert.Equal(t, "line 5", entries[0].Line)
}

func TestTranscript_Clear(t *testing.T) {
	tr := NewTranscript(nil)
	tr.Add(Entry{Line: "a"})
	tr.Add(Entry{Line: "b"})
	tr.ScrollUp()

	tr.Clear()

	assert.Equal(t, 0, tr.Count())
	assert.Equal(t, 0, tr.Offset())
}

func TestTranscript_Scroll(t *testing.T) {
	tr := NewTranscript(nil)
	for i := 0; i < 3; i++ {
		tr.Add(Entry{Line: fmt.Sprintf("line %d", i)})
	}

	tr.ScrollUp()
	tr.ScrollUp()
	assert.Equal(t, 2, tr.Offset())

	// Never scrolls past the oldest entry.
	tr.ScrollUp()
	assert.Equal(t, 2, tr.Offset())

	tr.ScrollDown()
	assert.Equal(t, 1, tr.Offset())
	assert.Contains(t, tr.View(), "1 newer")

	tr.ScrollDown()
	tr.ScrollDown()
	assert.Equal(t, 0, tr.Offset())
}

func TestTranscript_AddResetsScroll(t *testing.T) {
	tr := NewTranscript(nil)
	tr.Add(Entry{Line: "a"})
	tr.Add(Entry{Line: "b"})
	tr.ScrollUp()

	tr.Add(Entry{Line: "c"})

	assert.Equal(t, 0, tr.Offset())
}

func TestTranscript_UpdateKeys(t *testing.T) {
	tr := NewTranscript(nil)
	tr.Add(Entry{Line: "a"})
	tr.Add(Entry{Line: "b"})

	tr.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 1, tr.Offset())

	tr.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 0, tr.Offset())
}

func TestTranscript_ShowsNewestThatFit(t *testing.T) {
	tr := NewTranscript(nil)
	tr.SetDimensions(80, 4)
	for i := 0; i < 5; i++ {
		tr.Add(Entry{Line: fmt.Sprintf("line %d", i)})
	}

	view := tr.View()

	assert.NotContains(t, view, "line 2")
	assert.Contains(t, view, "line 3")
	assert.Contains(t, view, "line 4")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "a...", truncate("abcdefgh", 1))
}
