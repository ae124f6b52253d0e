package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"int", 7, 7},
		{"int64 from toml", int64(30), 30},
		{"float truncates", 2.9, 2},
		{"string", "30", 0},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Int(tt.in))
		})
	}
}

func TestFloat(t *testing.T) {
	assert.Equal(t, 2.5, Float(2.5))
	assert.Equal(t, 4.0, Float(int64(4)))
	assert.Equal(t, 3.0, Float(3))
	assert.Equal(t, 0.0, Float("fast"))
}

func TestStringAndBool(t *testing.T) {
	assert.Equal(t, "/bin/sh", String("/bin/sh"))
	assert.Equal(t, "", String(42))
	assert.True(t, Bool(true))
	assert.False(t, Bool("true"))
}

func TestStringSlice(t *testing.T) {
	assert.Equal(t, []string{"ls", "echo"}, StringSlice([]string{"ls", "echo"}))
	assert.Equal(t, []string{"ls", "echo"}, StringSlice([]any{"ls", 3, "echo"}))
	assert.Nil(t, StringSlice("ls"))
}

func TestFlatten(t *testing.T) {
	in := map[string]any{
		"shell": map[string]any{
			"path":    "/bin/bash",
			"timeout": int64(5),
		},
		"limits.rate": 1.5,
	}

	got := Flatten(in)

	assert.Equal(t, map[string]any{
		"shell.path":    "/bin/bash",
		"shell.timeout": int64(5),
		"limits.rate":   1.5,
	}, got)
}
