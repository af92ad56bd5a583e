package logging

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLevel, levelFor(tt.verbosity))
		})
	}
}

func TestLogFilePath(t *testing.T) {
	path := LogFilePath()
	assert.Equal(t, "runonsave.log", filepath.Base(path))
	assert.Equal(t, "runonsave", filepath.Base(filepath.Dir(path)))
}

func TestGetLogger_AddsComponent(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		log.Logger = original
		zerolog.SetGlobalLevel(originalLevel)
	}()

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	logger := GetLogger("watcher")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"watcher"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	done := LogOperationStart(logger, "resolve")
	done()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if assert.Len(t, lines, 2) {
		assert.Contains(t, lines[0], "Operation started")
		assert.Contains(t, lines[1], "Operation completed")
		assert.Contains(t, lines[1], `"duration"`)
	}
}
