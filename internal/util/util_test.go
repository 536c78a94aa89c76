package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, c := range cases {
		if got := Clamp(c.value, c.min, c.max); got != c.want {
			t.Fatalf("Clamp(%d,%d,%d) = %d, want %d", c.value, c.min, c.max, got, c.want)
		}
	}
}

func TestDataDirUsesXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	if got := DataDir("hourglass"); got != filepath.Join("/tmp/xdg-data", "hourglass") {
		t.Fatalf("DataDir = %q", got)
	}
}

func TestConfigDirUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	if got := ConfigDir("hourglass"); got != filepath.Join("/tmp/xdg-config", "hourglass") {
		t.Fatalf("ConfigDir = %q", got)
	}
}

func TestDataDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		t.Skip("no home directory in test environment")
	}
	if got := DataDir("hourglass"); !strings.HasPrefix(got, home) {
		t.Fatalf("DataDir = %q, want under %q", got, home)
	}
}

func TestOpenLogFileCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	f, err := OpenLogFile(dir, "app.log")
	if err != nil {
		t.Fatalf("OpenLogFile failed: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	if _, err := os.Stat(filepath.Join(dir, "app.log")); err != nil {
		t.Fatalf("log file missing: %v", err)
	}
}

func TestNewLoggerWrites(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf)
	log.Info().Str("state", "running").Msg("transition")
	if !strings.Contains(buf.String(), "transition") {
		t.Fatalf("expected log output, got %q", buf.String())
	}
}
