package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestPaths(t *testing.T) {
	t.Setenv("HOME", filepath.Join(t.TempDir(), "home"))

	dataDir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if !strings.HasSuffix(dataDir, ".tstag") {
		t.Fatalf("unexpected data dir: %s", dataDir)
	}

	configPath, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath: %v", err)
	}
	if !strings.HasSuffix(configPath, filepath.Join(".tstag", "config.toml")) {
		t.Fatalf("unexpected config path: %s", configPath)
	}

	logPath, err := UILogPath()
	if err != nil {
		t.Fatalf("UILogPath: %v", err)
	}
	if !strings.HasSuffix(logPath, filepath.Join(".tstag", "ui.log")) {
		t.Fatalf("unexpected ui log path: %s", logPath)
	}
}
