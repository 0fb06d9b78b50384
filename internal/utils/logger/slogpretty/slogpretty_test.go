package slogpretty

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestPrettyHandler(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	h := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug}}.NewPrettyHandler(&buf)
	log := slog.New(h).With("component", "test")

	log.Debug("hello", "id", 42, "error", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "DEBUG:")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, `"component": "test"`)
	assert.Contains(t, out, `"id": 42`)
	assert.Contains(t, out, `"error": "boom"`)
}

func TestPrettyHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	h := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelInfo}}.NewPrettyHandler(&buf)
	log := slog.New(h)

	log.Debug("hidden")

	assert.Empty(t, buf.String())
}
