package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer

	logger := New("debug", "text", &buf)
	ctx := WithLogger(context.Background(), logger)

	FromContext(ctx).Debug("loaded", "packages", 2)

	assert.Contains(t, buf.String(), "msg=loaded")
	assert.Contains(t, buf.String(), "packages=2")
}

func TestFromContext_Missing(t *testing.T) {
	logger := FromContext(context.Background())

	assert.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer

	New("info", "json", &buf).Info("done")

	assert.Contains(t, buf.String(), `"msg":"done"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}
