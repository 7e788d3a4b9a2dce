package infrastructure

import (
	"bufio"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkrouse1998/walmart-supply-chain-analysis/internal/config"
)

func TestNewLogger_FileOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "test.log")

	logger, err := NewLogger(config.LoggingConfig{
		Level:    "info",
		Output:   "file",
		FilePath: logPath,
	}, nil)
	require.NoError(t, err)

	ctx := WithRunID(context.Background(), "run-123")
	logger.InfoContext(ctx, "hello", "store", 7)
	logger.DebugContext(ctx, "filtered out")

	file, err := os.Open(logPath)
	require.NoError(t, err)
	defer file.Close()

	scanner := bufio.NewScanner(file)
	require.True(t, scanner.Scan(), "expected at least one log line")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "run-123", entry["run_id"])
	assert.Equal(t, float64(7), entry["store"])

	// Debug is below the configured level
	assert.False(t, scanner.Scan())
}

func TestNewLogger_RelativePathUsesLogsDir(t *testing.T) {
	paths := &config.Paths{LogsDir: filepath.Join(t.TempDir(), "logs")}

	logger, err := NewLogger(config.LoggingConfig{
		Level:    "info",
		Output:   "file",
		FilePath: "salesreport.log",
	}, paths)
	require.NoError(t, err)

	logger.Info("routed")

	_, err = os.Stat(paths.LogPath("salesreport.log"))
	assert.NoError(t, err)
}

func TestNewLogger_StderrDefault(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "debug", Output: "stderr"}, nil)
	require.NoError(t, err)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

func TestRunID(t *testing.T) {
	assert.Empty(t, RunID(context.Background()))

	ctx := WithRunID(context.Background(), "abc")
	assert.Equal(t, "abc", RunID(ctx))
}
