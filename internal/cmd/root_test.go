package cmd

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeclock/kiosk/internal/adapters/directory"
	"github.com/timeclock/kiosk/internal/config"
	"github.com/timeclock/kiosk/internal/domain"
	"github.com/timeclock/kiosk/internal/services"
	"github.com/timeclock/kiosk/internal/ui"
)

// unsetEnv removes variables for the duration of the test
func unsetEnv(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func defaultCLI() *CLI {
	return &CLI{
		IdentityMode:   config.DefaultIdentityMode,
		Journal:        true,
		MaxLogFiles:    config.DefaultMaxLogFiles,
		RequestTimeout: config.DefaultRequestTimeoutSeconds,
		RosterFallback: config.DefaultRosterFallback,
	}
}

func TestCLI_ApplySettings(t *testing.T) {
	settings := &config.Settings{
		DirectoryBaseURL:      "http://from-settings",
		DirectoryToken:        "secret",
		IdentityMode:          "pin",
		Journal:               boolPtr(false),
		RequestTimeoutSeconds: intPtr(3),
		RosterFallback:        "seed",
	}

	t.Run("settings fill flags left at their default", func(t *testing.T) {
		unsetEnv(t, "KIOSK_DIRECTORY_URL", "KIOSK_DIRECTORY_TOKEN", "KIOSK_IDENTITY_MODE",
			"KIOSK_JOURNAL", "KIOSK_REQUEST_TIMEOUT", "KIOSK_ROSTER_FALLBACK")

		cli := defaultCLI()
		cli.SetSettings(settings)
		cli.applySettings()

		assert.Equal(t, "http://from-settings", cli.DirectoryURL)
		assert.Equal(t, "secret", cli.DirectoryToken)
		assert.Equal(t, "pin", cli.IdentityMode)
		assert.False(t, cli.Journal)
		assert.Equal(t, 3, cli.RequestTimeout)
		assert.Equal(t, "seed", cli.RosterFallback)
	})

	t.Run("flags win over settings", func(t *testing.T) {
		unsetEnv(t, "KIOSK_DIRECTORY_URL", "KIOSK_IDENTITY_MODE")

		cli := defaultCLI()
		cli.DirectoryURL = "http://from-flag"
		cli.SetSettings(settings)
		cli.applySettings()

		assert.Equal(t, "http://from-flag", cli.DirectoryURL)
		assert.Equal(t, "pin", cli.IdentityMode)
	})

	t.Run("environment wins over settings", func(t *testing.T) {
		// kong already applied the variable; it happens to equal the default
		t.Setenv("KIOSK_IDENTITY_MODE", "select")

		cli := defaultCLI()
		cli.SetSettings(settings)
		cli.applySettings()

		assert.Equal(t, "select", cli.IdentityMode)
	})

	t.Run("nil settings", func(t *testing.T) {
		cli := defaultCLI()
		cli.applySettings()
		assert.Equal(t, *defaultCLI(), *cli)
	})
}

func TestKioskFlags_Resolve(t *testing.T) {
	unsetEnv(t, "KIOSK_MESSAGE_DURATION", "KIOSK_TIME_ZONE")

	cli := defaultCLI()
	cli.SetSettings(&config.Settings{
		Keys:                   config.KeyBindingsConfig{"clock_in": {"c"}},
		MessageDurationSeconds: intPtr(5),
		TimeZone:               "America/New_York",
	})
	flags := KioskFlags{
		MessageDuration: config.DefaultMessageDurationSeconds,
		TimeZone:        config.DefaultTimeZone,
	}

	modelConfig, err := flags.resolve(cli)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, modelConfig.MessageDuration)
	assert.Equal(t, "America/New_York", modelConfig.Location.String())
	assert.Equal(t, config.KeyBindingsConfig{"clock_in": {"c"}}, modelConfig.KeysConfig)

	t.Run("unknown key binding", func(t *testing.T) {
		cli.SetSettings(&config.Settings{Keys: config.KeyBindingsConfig{"teleport": {"t"}}})
		_, err := (&KioskFlags{TimeZone: config.DefaultTimeZone}).resolve(cli)
		assert.ErrorContains(t, err, "unknown key binding 'teleport'")
	})

	t.Run("unknown time zone", func(t *testing.T) {
		cli.SetSettings(nil)
		_, err := (&KioskFlags{TimeZone: "Mars/Olympus"}).resolve(cli)
		assert.ErrorContains(t, err, "invalid time zone")
	})
}

func TestResolveEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		baseURL    string
		settings   *config.Settings
		want       directory.Endpoints
		configured bool
	}{
		{
			name:       "derived from base",
			baseURL:    "http://dir/api/",
			want:       directory.EndpointsFromBase("http://dir/api"),
			configured: true,
		},
		{
			name:    "override one endpoint",
			baseURL: "http://dir",
			settings: &config.Settings{Endpoints: &config.EndpointsConfig{
				ClockIn: "http://other/punch-in",
			}},
			want: directory.Endpoints{
				ClockIn:      "http://other/punch-in",
				ClockOut:     "http://dir/clock-out",
				EndBreak:     "http://dir/end-break",
				GetEmployees: "http://dir/get-employees",
				StartBreak:   "http://dir/start-break",
			},
			configured: true,
		},
		{
			name:     "nothing configured",
			settings: &config.Settings{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, configured := resolveEndpoints(tt.baseURL, tt.settings)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.configured, configured)
		})
	}
}

func TestNewContainer(t *testing.T) {
	t.Run("without directory or journal", func(t *testing.T) {
		c, err := NewContainer(ContainerOptions{IdentityMode: "pin", RosterFallback: "seed"})
		require.NoError(t, err)
		defer c.Close()

		assert.Nil(t, c.Directory)
		assert.Nil(t, c.Journal)
		assert.Nil(t, c.journalWriter(), "disabled journal must be an untyped nil")
		assert.Equal(t, domain.IdentityModePin, c.IdentityMode)
		assert.Equal(t, services.FallbackSeed, c.RosterFallback)

		_, err = c.NewKioskModel(context.Background(), ui.ModelConfig{})
		assert.ErrorIs(t, err, errDirectoryNotConfigured)
	})

	t.Run("with directory and journal", func(t *testing.T) {
		t.Setenv("KIOSK_HOME", t.TempDir())

		c, err := NewContainer(ContainerOptions{
			DirectoryURL:   "http://localhost:8080",
			Journal:        true,
			RequestTimeout: time.Second,
			Settings: &config.Settings{
				SeedEmployees: []config.SeedEmployee{{ID: "7", Name: "Gia"}},
			},
		})
		require.NoError(t, err)
		defer c.Close()

		assert.NotNil(t, c.Directory)
		assert.NotNil(t, c.Journal)
		assert.FileExists(t, config.GetDBPath())
		require.Len(t, c.Seed, 1)
		assert.Equal(t, "Gia", c.Seed[0].Name)

		model, err := c.NewKioskModel(context.Background(), ui.ModelConfig{})
		require.NoError(t, err)
		assert.NotNil(t, model)
	})

	t.Run("invalid identity mode", func(t *testing.T) {
		_, err := NewContainer(ContainerOptions{IdentityMode: "badge"})
		assert.ErrorContains(t, err, "unknown identity mode")
	})
}

func TestParseKeyValues(t *testing.T) {
	assert.Equal(t, []string{"up", "k"}, parseKeyValues(" up, k ,"))
	assert.Empty(t, parseKeyValues(" , "))
}
