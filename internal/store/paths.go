package store

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// AppID names the per-user data directory.
const AppID = "randogroup"

// DataDir returns (and creates) the per-user data directory for appID:
// $XDG_DATA_HOME when set, otherwise the platform's usual location.
func DataDir(appID string) (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("user home dir: %w", err)
		}
		switch runtime.GOOS {
		case "darwin":
			base = filepath.Join(home, "Library", "Application Support")
		case "windows":
			base = os.Getenv("LOCALAPPDATA")
			if base == "" {
				base = filepath.Join(home, "AppData", "Local")
			}
		default:
			base = filepath.Join(home, ".local", "share")
		}
	}
	dir := filepath.Join(base, appID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir data dir: %w", err)
	}
	return dir, nil
}
