package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/timeclock/kiosk/internal/domain"
)

// Defaults for settings that are not set anywhere else
const (
	DefaultIdentityMode           = "select"
	DefaultMaxLogFiles            = 1000
	DefaultMessageDurationSeconds = 3
	DefaultRequestTimeoutSeconds  = 10
	DefaultRosterFallback         = "retain"
	DefaultTimeZone               = "Europe/Oslo"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds key binding overrides.
// Keys are binding names (e.g. "clock_in", "refresh"), values the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks names against validNames (from ui.GetValidKeyNames)
// and rejects keys bound twice.
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	keyToAction := make(map[string]string)
	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// EndpointsConfig overrides individual directory endpoint URLs
type EndpointsConfig struct {
	ClockIn      string `json:"clock_in,omitempty"`
	ClockOut     string `json:"clock_out,omitempty"`
	EndBreak     string `json:"end_break,omitempty"`
	GetEmployees string `json:"get_employees,omitempty"`
	StartBreak   string `json:"start_break,omitempty"`
}

// SeedEmployee is a roster entry used by the seed fallback and the stub directory
type SeedEmployee struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	PinCode string `json:"pin_code,omitempty"`
}

// Settings represents the structure of $KIOSK_HOME/settings.json
type Settings struct {
	Debug                  *bool             `json:"debug,omitempty"`
	DirectoryBaseURL       string            `json:"directory_base_url,omitempty"`
	DirectoryToken         string            `json:"directory_token,omitempty"`
	Endpoints              *EndpointsConfig  `json:"endpoints,omitempty"`
	IdentityMode           string            `json:"identity_mode,omitempty"`
	Journal                *bool             `json:"journal,omitempty"`
	Keys                   KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles            *int              `json:"max_log_files,omitempty"`
	MessageDurationSeconds *int              `json:"message_duration_seconds,omitempty"`
	RequestTimeoutSeconds  *int              `json:"request_timeout_seconds,omitempty"`
	RosterFallback         string            `json:"roster_fallback,omitempty"`
	SeedEmployees          []SeedEmployee    `json:"seed_employees,omitempty"`
	TimeZone               string            `json:"time_zone,omitempty"`
}

// Seed returns the configured seed employees as off-duty domain records
func (s *Settings) Seed() []domain.Employee {
	if s == nil {
		return nil
	}
	employees := make([]domain.Employee, 0, len(s.SeedEmployees))
	for _, e := range s.SeedEmployees {
		employees = append(employees, domain.Employee{
			ID:      e.ID,
			Name:    e.Name,
			PinCode: e.PinCode,
			Status:  domain.StatusOffDuty,
		})
	}
	return employees
}

// JournalEnabled reports whether the punch journal is on (default true)
func (s *Settings) JournalEnabled() bool {
	return s == nil || s.Journal == nil || *s.Journal
}

// LoadLocation resolves the display time zone
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimeZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", name, err)
	}
	return loc, nil
}

// LoadEnvFiles loads KIOSK_* variables from .env files. Variables already
// set in the environment win. Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// DefaultEnvFiles returns ./.env followed by $KIOSK_HOME/.env
func DefaultEnvFiles() []string {
	return []string{".env", filepath.Join(GetKioskHome(), ".env")}
}

// LoadSettings loads settings from $KIOSK_HOME/settings.json (or ~/.kiosk/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $KIOSK_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	// The file may hold a directory token
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
