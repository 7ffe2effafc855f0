package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/tatianab/slayer/internal/config"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slayer.log")
	closer, err := Init(&config.Config{LogLevel: "debug", LogFormat: "json", LogFile: path})
	if err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}

	Log.WithField("monster", "Zog the Mischievous").Debug("encounter started")
	if err := closer.Close(); err != nil {
		t.Fatalf("Failed to close log file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"monster":"Zog the Mischievous"`) {
		t.Errorf("Expected JSON log line with monster field, got %s", data)
	}
}

func TestInitFallsBackToInfo(t *testing.T) {
	closer, err := Init(&config.Config{LogLevel: "chatty"})
	if err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	defer closer.Close()

	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level, got %s", Log.GetLevel())
	}
}

func TestInitReportsUnwritableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "slayer.log")
	if _, err := Init(&config.Config{LogFile: path}); err == nil {
		t.Fatalf("Expected an error for an unwritable log path")
	}
}
