package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/timeclock/kiosk/internal/config"
	"github.com/timeclock/kiosk/internal/logging"
	"github.com/timeclock/kiosk/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d" env:"KIOSK_DEBUG"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)" env:"KIOSK_DEBUG_FILE"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000" env:"KIOSK_MAX_LOG_FILES"`

	DirectoryToken string `help:"Bearer token sent to the directory service" env:"KIOSK_DIRECTORY_TOKEN"`
	DirectoryURL   string `help:"Base URL of the directory service" env:"KIOSK_DIRECTORY_URL"`
	IdentityMode   string `help:"How employees identify: select or pin" default:"select" enum:"select,pin" env:"KIOSK_IDENTITY_MODE"`
	Journal        bool   `help:"Record every punch in the local journal" default:"true" negatable:"" env:"KIOSK_JOURNAL"`
	RequestTimeout int    `help:"Seconds before a directory request times out" default:"10" env:"KIOSK_REQUEST_TIMEOUT"`
	RosterFallback string `help:"Roster used when the first load fails: retain (empty) or seed" default:"retain" enum:"retain,seed" env:"KIOSK_ROSTER_FALLBACK"`

	Run           RunCmd           `cmd:"" help:"Start the kiosk TUI (default)" default:"1"`
	Serve         ServeCmd         `cmd:"serve" help:"Serve kiosk terminals over SSH"`
	Roster        RosterCmd        `cmd:"roster" help:"Show the employee roster from the directory"`
	Punch         PunchCmd         `cmd:"punch" help:"Clock an employee in or out without the TUI"`
	Punches       PunchesCmd       `cmd:"punches" help:"List punches recorded in the local journal"`
	StubDirectory StubDirectoryCmd `cmd:"stub-directory" help:"Run an in-memory directory service for demos and tests"`
	Setup         SetupCmd         `cmd:"setup" help:"Configure the kiosk interactively"`
	Settings      SettingsCmd      `cmd:"settings" help:"Manage settings (meta, keys)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// fromSettings reports whether a settings.json value may replace a flag:
// the flag is still at its default and its environment variable is unset.
func fromSettings(atDefault bool, envVar string) bool {
	if !atDefault {
		return false
	}
	_, hasEnv := os.LookupEnv(envVar)
	return !hasEnv
}

// applySettings fills flags from settings.json with precedence
// CLI flags > env vars > settings.json > defaults
func (c *CLI) applySettings() {
	s := c.settings
	if s == nil {
		return
	}

	if s.MaxLogFiles != nil && fromSettings(c.MaxLogFiles == config.DefaultMaxLogFiles, "KIOSK_MAX_LOG_FILES") {
		c.MaxLogFiles = *s.MaxLogFiles
	}
	if s.Debug != nil && *s.Debug && fromSettings(!c.Debug, "KIOSK_DEBUG") {
		c.Debug = true
	}
	if s.DirectoryBaseURL != "" && fromSettings(c.DirectoryURL == "", "KIOSK_DIRECTORY_URL") {
		c.DirectoryURL = s.DirectoryBaseURL
	}
	if s.DirectoryToken != "" && fromSettings(c.DirectoryToken == "", "KIOSK_DIRECTORY_TOKEN") {
		c.DirectoryToken = s.DirectoryToken
	}
	if s.IdentityMode != "" && fromSettings(c.IdentityMode == config.DefaultIdentityMode, "KIOSK_IDENTITY_MODE") {
		c.IdentityMode = s.IdentityMode
	}
	if s.Journal != nil && fromSettings(c.Journal, "KIOSK_JOURNAL") {
		c.Journal = *s.Journal
	}
	if s.RequestTimeoutSeconds != nil && fromSettings(c.RequestTimeout == config.DefaultRequestTimeoutSeconds, "KIOSK_REQUEST_TIMEOUT") {
		c.RequestTimeout = *s.RequestTimeoutSeconds
	}
	if s.RosterFallback != "" && fromSettings(c.RosterFallback == config.DefaultRosterFallback, "KIOSK_ROSTER_FALLBACK") {
		c.RosterFallback = s.RosterFallback
	}
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	c.applySettings()

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	logging.Export(logFilePath, c.MaxLogFiles)

	// Create container AFTER logging is initialized; gorm's logger writes
	// through logging.Logger
	container, err := NewContainer(c.containerOptions())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

func (c *CLI) containerOptions() ContainerOptions {
	return ContainerOptions{
		DirectoryToken: c.DirectoryToken,
		DirectoryURL:   c.DirectoryURL,
		IdentityMode:   c.IdentityMode,
		Journal:        c.Journal,
		RequestTimeout: time.Duration(c.RequestTimeout) * time.Second,
		RosterFallback: c.RosterFallback,
		Settings:       c.settings,
	}
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// KioskFlags are the presentation flags shared by run and serve
type KioskFlags struct {
	Dev             bool   `help:"Enable development mode (shows version info in the header)"`
	MessageDuration int    `help:"Seconds before messages auto-dismiss (0 = keep)" default:"3" env:"KIOSK_MESSAGE_DURATION"`
	TimeZone        string `help:"IANA time zone of the header clock" default:"Europe/Oslo" env:"KIOSK_TIME_ZONE"`
}

// resolve applies settings.json and returns the model configuration
// shared by every kiosk
func (k *KioskFlags) resolve(cli *CLI) (ui.ModelConfig, error) {
	if s := cli.settings; s != nil {
		if s.MessageDurationSeconds != nil && fromSettings(k.MessageDuration == config.DefaultMessageDurationSeconds, "KIOSK_MESSAGE_DURATION") {
			k.MessageDuration = *s.MessageDurationSeconds
		}
		if s.TimeZone != "" && fromSettings(k.TimeZone == config.DefaultTimeZone, "KIOSK_TIME_ZONE") {
			k.TimeZone = s.TimeZone
		}
	}

	location, err := config.LoadLocation(k.TimeZone)
	if err != nil {
		return ui.ModelConfig{}, err
	}

	var keysConfig config.KeyBindingsConfig
	if cli.settings != nil && cli.settings.Keys != nil {
		if err := cli.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return ui.ModelConfig{}, fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = cli.settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	return ui.ModelConfig{
		DevMode:         k.Dev,
		KeysConfig:      keysConfig,
		Location:        location,
		MessageDuration: time.Duration(k.MessageDuration) * time.Second,
	}, nil
}

// RunCmd starts the kiosk TUI on this terminal
type RunCmd struct {
	KioskFlags `embed:""`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	modelConfig, err := r.resolve(cli)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model, err := cli.Container.NewKioskModel(ctx, modelConfig)
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting kiosk TUI",
		"identity_mode", cli.IdentityMode,
		"roster_fallback", cli.RosterFallback)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
