// Package logger owns the process-wide structured logger.
//
// The terminal belongs to the TUI, so log lines never go to stdout: they are
// written to a file, or dropped when no file can be opened.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tatianab/slayer/internal/config"
)

// Log is the global logger. It discards everything until Init is called.
var Log = discard()

// Init configures Log from cfg. The returned closer releases the log file.
func Init(cfg *config.Config) (io.Closer, error) {
	Log = logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(cfg.LogFormat) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	if cfg.LogFile == "" {
		Log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		Log.SetOutput(io.Discard)
		return io.NopCloser(nil), fmt.Errorf("open log file %s: %w", cfg.LogFile, err)
	}
	Log.SetOutput(f)
	return f, nil
}

func discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
