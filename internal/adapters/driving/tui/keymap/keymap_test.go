package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, []string{"ctrl+c", "ctrl+d"}, km.Quit.Keys())
	assert.Equal(t, []string{"enter"}, km.Run.Keys())
	assert.Equal(t, []string{"tab"}, km.Commands.Keys())
	assert.Equal(t, []string{"ctrl+r"}, km.History.Keys())
	assert.Equal(t, []string{"ctrl+l"}, km.Clear.Keys())
	assert.Equal(t, []string{"pgup"}, km.ScrollUp.Keys())
	assert.Equal(t, []string{"pgdown"}, km.ScrollDown.Keys())
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ShortHelp()

	assert.Len(t, help, 4)
	assert.Equal(t, "run", help[0].Help().Desc)
	assert.Equal(t, "quit", help[3].Help().Desc)
}

func TestKeyMap_ListHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ListHelp()

	assert.Len(t, help, 4)
	assert.Equal(t, "select", help[2].Help().Desc)
	assert.Equal(t, "back", help[3].Help().Desc)
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	groups := km.FullHelp()

	assert.Len(t, groups, 3)
	for _, g := range groups {
		assert.NotEmpty(t, g)
	}
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"primary key", "ctrl+c", true},
		{"secondary key", "ctrl+d", true},
		{"other key", "q", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.key, km.Quit))
		})
	}
}
