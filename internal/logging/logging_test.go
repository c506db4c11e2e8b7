package logging_test

import (
	"bytes"
	"testing"

	"github.com/on-the-ground/bounded_go/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestNewConsole_DebugOnlyWhenVerbose(t *testing.T) {
	var quiet, loud bytes.Buffer

	logging.NewConsole(&quiet, false).Debug("hidden")
	logging.NewConsole(&loud, true).Debug("shown")

	assert.Empty(t, quiet.String())
	assert.Contains(t, loud.String(), "shown")
}
