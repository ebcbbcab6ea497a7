package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   LogLevel
		want zerolog.Level
	}{
		{LevelDebug, zerolog.DebugLevel},
		{LevelInfo, zerolog.InfoLevel},
		{"WARNING", zerolog.WarnLevel},
		{LevelError, zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestSetupWritesJSONToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := Setup(Config{Level: LevelDebug, Output: &buf})
	defer closer.Close()

	logger.Info().Str("endpoint", "/artworks").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "/artworks", entry["endpoint"])
	assert.Contains(t, entry, "time")
}

func TestSetupFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := Setup(Config{Level: LevelWarn, Output: &buf})
	defer closer.Close()
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestSetupToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arttable.log")
	_, closer := Setup(Config{Level: LevelInfo, FilePath: path, MaxSizeMB: 1})

	NewLogger("fetcher").Info().Msg("file entry")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"fetcher"`)
	assert.Contains(t, string(data), "file entry")

	// restore a harmless global logger for other tests
	log.Logger = zerolog.Nop()
}

func TestValidLevel(t *testing.T) {
	assert.True(t, ValidLevel("debug"))
	assert.True(t, ValidLevel("Error"))
	assert.False(t, ValidLevel("verbose"))
}
