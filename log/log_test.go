package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewLevel(t *testing.T) {
	for _, name := range []string{"trace", "debug", "info", "warn", "error", "fatal"} {
		level, err := NewLevel(name)
		require.NoError(t, err)
		require.Equal(t, name, level.String())
	}
	_, err := NewLevel("loud")
	require.True(t, errors.Is(err, ErrInvalidLevel))
}

func TestLogger_Filtering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	prev := CurrentLevel()
	defer func() {
		SetLevel(prev)
		SetOutput(os.Stderr)
	}()

	SetLevel(LevelWarn)
	lgr := WithModule("test")
	lgr.Info("hidden")
	lgr.Warn("shown", "key", "value")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "module=test")
	require.Contains(t, buf.String(), "key=value")

	require.Panics(t, func() {
		lgr.Warn("odd", "key")
	})
}
