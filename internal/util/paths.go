package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir resolves the per-user data directory for the app, preferring
// XDG_DATA_HOME and falling back to ~/.local/share.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ConfigDir resolves the per-user config directory for the app,
// preferring XDG_CONFIG_HOME and falling back to ~/.config.
func ConfigDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".config", app)
}

// ReportsDir is where exported reports land: ~/Documents/<APP> when a
// home directory exists, the working directory otherwise.
func ReportsDir(app string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return strings.ToUpper(app)
	}
	return filepath.Join(home, "Documents", strings.ToUpper(app))
}
