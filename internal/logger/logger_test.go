package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, false)

	log.Debug().Msg("debug message")
	log.Info().Msg("info message")
	assert.Empty(t, buf.String(), "stdout-friendly: nothing below warn level")

	log.Warn().Msg("warn message")
	assert.Contains(t, buf.String(), "warn message")
}

func TestNewWithWriter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, true)

	log.Debug().Str("rows", "7").Msg("statement read")
	assert.Contains(t, buf.String(), "statement read")
	assert.Contains(t, buf.String(), "rows")
}
