package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	switch fieldName {
	case "keys":
		return map[string]any{
			"clock_in": "i",
			"refresh":  []string{"r", "f5"},
		}
	case "endpoints":
		return map[string]any{
			"clock_in": "https://directory.example.com/api/clock-in",
		}
	case "seed_employees":
		return []map[string]string{
			{"id": "1", "name": "Annabelle Cazals", "pin_code": "1234"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "journal"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return DefaultMaxLogFiles
			case "message_duration_seconds":
				return DefaultMessageDurationSeconds
			case "request_timeout_seconds":
				return DefaultRequestTimeoutSeconds
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "directory_base_url":
			return "https://directory.example.com/api"
		case "directory_token":
			return "<bearer token>"
		case "identity_mode":
			return "select | pin"
		case "roster_fallback":
			return "retain | seed"
		case "time_zone":
			return DefaultTimeZone
		default:
			return "example"
		}
	}

	return nil
}
