package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_QuietHidesProgress(t *testing.T) {
	var b bytes.Buffer
	l := newLogger(&b, true, true)
	l.Info("Created", logPath("index.html"))
	assert.Empty(t, b.String())

	l.Warn("careful")
	assert.Contains(t, b.String(), "careful")
}

func TestNewLogger_Levels(t *testing.T) {
	var b bytes.Buffer
	l := newLogger(&b, false, false)
	l.Debug("hidden")
	l.Info("Created", logPath("index.html"), logCount(2))
	assert.NotContains(t, b.String(), "hidden")
	assert.Contains(t, b.String(), "path=index.html")
	assert.Contains(t, b.String(), "count=2")

	b.Reset()
	newLogger(&b, false, true).Debug("shown")
	assert.Contains(t, b.String(), "shown")
}

func TestLogError(t *testing.T) {
	assert.Equal(t, "boom", logError(errors.New("boom")).Value.String())
	assert.Equal(t, "", logError(nil).Value.String())
}
