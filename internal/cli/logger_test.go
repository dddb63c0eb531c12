package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	buf := new(bytes.Buffer)
	quiet := newLogger(buf, false)
	quiet.Debug("hidden")
	quiet.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "component=mealbook")

	buf.Reset()
	newLogger(buf, true).Debug("trace", "count", 3)
	assert.Contains(t, buf.String(), "trace")
	assert.Contains(t, buf.String(), "count=3")
}

func TestLoggerFromContext(t *testing.T) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetContext(withLogger(context.Background(), newLogger(buf, true)))

	loggerFrom(cmd).Debug("attached")

	assert.Contains(t, buf.String(), "attached")
}

func TestLoggerFromWithoutContext(t *testing.T) {
	assert.NotNil(t, loggerFrom(&cobra.Command{}))
	assert.NotNil(t, loggerFrom(nil))
}
