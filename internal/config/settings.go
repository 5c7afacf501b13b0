package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings represents the structure of ~/.wcamp/settings.json
type Settings struct {
	CentralURL   string `json:"central_url,omitempty"`
	DBPath       string `json:"db_path,omitempty"`
	Debug        *bool  `json:"debug,omitempty"`
	MaxLogFiles  *int   `json:"max_log_files,omitempty"`
	ReminderLead string `json:"reminder_lead,omitempty"` // Go duration, e.g. "10m"
}

// LoadSettings loads settings from ~/.wcamp/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	// Expand paths that start with ~
	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}

	return &settings, nil
}
