package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := NewJSON(&buf, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("batch applied", "actions", 2)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "batch applied", line["msg"])
	require.Equal(t, service, line["service"])
	require.EqualValues(t, 2, line["actions"])
}
