package logging

import (
	"io"
	"log/slog"
	"os"
)

type LogLevel string

const (
	LogLevelNone  LogLevel = "none"
	LogLevelInfo  LogLevel = "info"
	LogLevelDebug LogLevel = "debug"
)

var (
	logger *slog.Logger
	active LogLevel = LogLevelNone
)

func Setup(optslevel LogLevel) {
	SetupWriter(optslevel, os.Stderr)
}

// SetupWriter is Setup with an explicit sink, used by tests.
func SetupWriter(optslevel LogLevel, w io.Writer) {
	sink := io.Discard
	if optslevel != LogLevelNone {
		sink = w
	}

	level := slog.LevelDebug
	if optslevel == LogLevelInfo {
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(sink, &slog.HandlerOptions{
		Level: level,
	})
	logger = slog.New(handler)
	active = optslevel
}
