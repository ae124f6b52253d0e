package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleCmd_Use(t *testing.T) {
	assert.Equal(t, "console", consoleCmd.Use)
}

func TestConsoleCmd_RejectsArguments(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "console", "extra")

	assert.Error(t, err)
}

func TestConsoleCmd_NotConfigured(t *testing.T) {
	SetServices(&Services{})

	_, err := execute(t, "console")

	assert.ErrorIs(t, err, errNotConfigured)
}
