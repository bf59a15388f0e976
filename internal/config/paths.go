package config

import (
	"os"
	"path/filepath"
)

// GetKioskHome returns KIOSK_HOME or the ~/.kiosk default
func GetKioskHome() string {
	kioskHome := os.Getenv("KIOSK_HOME")
	if kioskHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".kiosk"
		}
		return filepath.Join(homeDir, ".kiosk")
	}
	return ExpandPath(kioskHome)
}

// GetDBPath returns $KIOSK_HOME/punches.db
func GetDBPath() string {
	return filepath.Join(GetKioskHome(), "punches.db")
}

// GetSettingsPath returns $KIOSK_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetKioskHome(), "settings.json")
}

// GetSSHDir returns $KIOSK_HOME/ssh, where the host key lives
func GetSSHDir() string {
	return filepath.Join(GetKioskHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
