package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisefood/relkit/pkg/log"
)

func TestCreateHandlerWithStrings(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"text", "logfmt", "json"} {
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}

			h, err := log.CreateHandlerWithStrings(buf, "info", format)
			require.NoError(t, err)

			logger := slog.New(h)
			logger.Info("hello", "key", "value")
			logger.Debug("suppressed")

			out := buf.String()
			assert.Contains(t, out, "hello")
			assert.NotContains(t, out, "suppressed")
		})
	}
}

func TestCreateHandlerUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := log.CreateHandlerWithStrings(&bytes.Buffer{}, "info", "xml")
	require.ErrorIs(t, err, log.ErrUnknownFormat)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	lvl, err := log.ParseLevel("warning")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = log.ParseLevel("trace2")
	require.ErrorIs(t, err, log.ErrUnknownLevel)
}
