package cmd

import (
	"fmt"
	"strings"

	"github.com/timeclock/kiosk/internal/config"
	"github.com/timeclock/kiosk/internal/logging"
	"github.com/timeclock/kiosk/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List SettingsKeysListCmd `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Set  SettingsKeysSetCmd  `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., clock_in, refresh, quit)"`
	Value string `arg:"" help:"Key binding (e.g., i, ctrl+r, or comma-separated for multiple: up,k)"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	defaults := ui.GetDefaultKeyBindings()
	names := ui.GetValidKeyNames()

	// Get custom bindings from settings
	var customKeys config.KeyBindingsConfig
	if cli.settings != nil && cli.settings.Keys != nil {
		customKeys = cli.settings.Keys
	}

	if s.Format == "json" {
		return s.outputJSON(names, defaults, customKeys)
	}

	return s.outputTable(names, defaults, customKeys)
}

func (s *SettingsKeysListCmd) outputJSON(names []string, defaults map[string][]string, customKeys config.KeyBindingsConfig) error {
	result := make(map[string]map[string]any)

	for _, name := range names {
		entry := make(map[string]any)
		entry["default"] = defaults[name]

		if custom, ok := customKeys[name]; ok && len(custom) > 0 {
			entry["custom"] = custom
		}

		result[name] = entry
	}

	return printJSON(result)
}

func (s *SettingsKeysListCmd) outputTable(names []string, defaults map[string][]string, customKeys config.KeyBindingsConfig) error {
	fmt.Printf("Key bindings (settings file: %s)\n\n", config.GetSettingsPath())

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		custom := "-"
		if keys, ok := customKeys[name]; ok && len(keys) > 0 {
			custom = strings.Join(keys, ", ")
		}
		help := ""
		if def := ui.GetKeyDefinition(name); def != nil {
			help = def.Help
		}
		rows = append(rows, []string{name, help, strings.Join(defaults[name], ", "), custom})
	}
	fmt.Println(renderTable([]string{"Name", "Action", "Default", "Custom"}, rows))

	fmt.Println()
	fmt.Println("Use 'kiosk settings keys set <name> <value>' to customize.")
	return nil
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	// Validate key name
	if !ui.IsValidKeyName(s.Key) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Key, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	// Parse value (comma-separated for multiple keys)
	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	// Load existing settings
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// Initialize Keys if needed
	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}

	// Set the new binding
	settings.Keys[s.Key] = values

	// Validate for conflicts
	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}

	// Save settings
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, strings.Join(values, ", "))
	return nil
}

// parseKeyValues parses comma-separated key values
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
