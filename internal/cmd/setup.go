package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/timeclock/kiosk/internal/config"
	"github.com/timeclock/kiosk/internal/logging"
)

// SetupCmd configures the kiosk interactively and writes settings.json
type SetupCmd struct{}

// setupAnswers holds the form values
type setupAnswers struct {
	DirectoryURL   string
	DirectoryToken string
	IdentityMode   string
	Journal        bool
	RequestTimeout string
	RosterFallback string
	TimeZone       string
}

// Run executes the setup command
func (s *SetupCmd) Run(cli *CLI) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	answers := answersFromSettings(settings)
	if err := newSetupForm(&answers).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("Setup cancelled, nothing was written.")
			return nil
		}
		return fmt.Errorf("setup form failed: %w", err)
	}

	if err := answers.apply(settings); err != nil {
		return err
	}
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	logging.Logger.Info("Settings written by setup",
		"identity_mode", settings.IdentityMode,
		"roster_fallback", settings.RosterFallback)

	fmt.Printf("\n✓ Settings written to %s\n", config.GetSettingsPath())
	fmt.Println("Start the kiosk with: kiosk")
	return nil
}

func answersFromSettings(s *config.Settings) setupAnswers {
	a := setupAnswers{
		DirectoryURL:   s.DirectoryBaseURL,
		DirectoryToken: s.DirectoryToken,
		IdentityMode:   s.IdentityMode,
		Journal:        s.JournalEnabled(),
		RequestTimeout: strconv.Itoa(config.DefaultRequestTimeoutSeconds),
		RosterFallback: s.RosterFallback,
		TimeZone:       s.TimeZone,
	}
	if a.IdentityMode == "" {
		a.IdentityMode = config.DefaultIdentityMode
	}
	if a.RosterFallback == "" {
		a.RosterFallback = config.DefaultRosterFallback
	}
	if a.TimeZone == "" {
		a.TimeZone = config.DefaultTimeZone
	}
	if s.RequestTimeoutSeconds != nil {
		a.RequestTimeout = strconv.Itoa(*s.RequestTimeoutSeconds)
	}
	return a
}

// apply copies the answers onto settings, keeping fields setup does not ask about
func (a setupAnswers) apply(s *config.Settings) error {
	timeout, err := strconv.Atoi(strings.TrimSpace(a.RequestTimeout))
	if err != nil || timeout <= 0 {
		return fmt.Errorf("invalid request timeout %q", a.RequestTimeout)
	}

	s.DirectoryBaseURL = strings.TrimSpace(a.DirectoryURL)
	s.DirectoryToken = strings.TrimSpace(a.DirectoryToken)
	s.IdentityMode = a.IdentityMode
	s.Journal = &a.Journal
	s.RequestTimeoutSeconds = &timeout
	s.RosterFallback = a.RosterFallback
	s.TimeZone = strings.TrimSpace(a.TimeZone)
	return nil
}

func newSetupForm(a *setupAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Directory base URL").
				Description("Endpoints default to <base>/get-employees, /clock-in, ...").
				Placeholder("https://directory.example.com/api").
				Value(&a.DirectoryURL).
				Validate(validateDirectoryURL),
			huh.NewInput().
				Title("Bearer token").
				Description("Leave empty if the directory needs no token").
				EchoMode(huh.EchoModePassword).
				Value(&a.DirectoryToken),
			huh.NewInput().
				Title("Request timeout (seconds)").
				Value(&a.RequestTimeout).
				Validate(func(s string) error {
					if n, err := strconv.Atoi(strings.TrimSpace(s)); err != nil || n <= 0 {
						return errors.New("enter a positive number of seconds")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How do employees identify?").
				Options(
					huh.NewOption("Pick their name from a list", "select"),
					huh.NewOption("Type a PIN code", "pin"),
				).
				Value(&a.IdentityMode),
			huh.NewSelect[string]().
				Title("When the first roster load fails").
				Options(
					huh.NewOption("Show an empty list (fail closed)", "retain"),
					huh.NewOption("Use the seed employees (fail open)", "seed"),
				).
				Value(&a.RosterFallback),
			huh.NewConfirm().
				Title("Record punches in the local journal?").
				Value(&a.Journal),
			huh.NewInput().
				Title("Clock time zone").
				Placeholder(config.DefaultTimeZone).
				Value(&a.TimeZone).
				Validate(func(s string) error {
					_, err := config.LoadLocation(strings.TrimSpace(s))
					return err
				}),
		),
	)
}

func validateDirectoryURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("directory URL required")
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("enter an http:// or https:// URL")
	}
	return nil
}
