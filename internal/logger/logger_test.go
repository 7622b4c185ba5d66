package logger

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Step("--- %s ---", "Checking Prerequisites")
	log.Info("Cloning %d repositories", 2)
	log.Success("done")
	log.Warn("build skipped")
	log.Error("boom: %v", "exit status 1")
	log.Hint("http://localhost:5050/index.html")

	assert.Equal(t,
		"--- Checking Prerequisites ---\n"+
			"Cloning 2 repositories\n"+
			"done\n"+
			"build skipped\n"+
			"boom: exit status 1\n"+
			"http://localhost:5050/index.html\n",
		buf.String())
}

func TestDebugOnlyWhenEnabled(t *testing.T) {
	color.NoColor = true

	var quiet bytes.Buffer
	New(&quiet, false).Debug("hidden %s", "line")
	assert.Empty(t, quiet.String())

	var loud bytes.Buffer
	l := New(&loud, true)
	assert.True(t, l.DebugEnabled())
	l.Debug("shown %s", "line")
	assert.Equal(t, "[DEBUG] shown line\n", loud.String())
}

func TestDiscard(t *testing.T) {
	// Must not panic or write anywhere.
	Discard().Error("ignored")
}
