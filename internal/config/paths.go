package config

import (
	"os"
	"path/filepath"
)

// GetWcampHome returns WCAMP_HOME or ~/.wcamp default
func GetWcampHome() string {
	wcampHome := os.Getenv("WCAMP_HOME")
	if wcampHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".wcamp"
		}
		return filepath.Join(homeDir, ".wcamp")
	}
	return ExpandPath(wcampHome)
}

// GetDBPath returns $WCAMP_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetWcampHome(), "state.db")
}

// GetSettingsPath returns $WCAMP_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetWcampHome(), "settings.json")
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
