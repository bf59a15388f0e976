package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/timeclock/kiosk/internal/adapters/directory"
	adapterstorage "github.com/timeclock/kiosk/internal/adapters/storage"
	"github.com/timeclock/kiosk/internal/config"
	"github.com/timeclock/kiosk/internal/domain"
	"github.com/timeclock/kiosk/internal/logging"
	"github.com/timeclock/kiosk/internal/ports"
	"github.com/timeclock/kiosk/internal/services"
	"github.com/timeclock/kiosk/internal/ui"
)

// errDirectoryNotConfigured is returned by commands that need the directory
var errDirectoryNotConfigured = errors.New("directory not configured: set --directory-url, KIOSK_DIRECTORY_URL or directory_base_url in settings.json")

// ContainerOptions are the resolved settings the container is built from
type ContainerOptions struct {
	DirectoryToken string
	DirectoryURL   string
	IdentityMode   string
	Journal        bool
	RequestTimeout time.Duration
	RosterFallback string
	Settings       *config.Settings
}

// Container holds all dependencies for the application
type Container struct {
	Directory      ports.DirectoryClient // nil when no endpoints are configured
	IdentityMode   domain.IdentityMode
	Journal        ports.PunchJournal // nil when the journal is disabled
	RosterFallback services.RosterFallback
	Seed           []domain.Employee

	// Internal - for cleanup only
	journalRepo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	mode, err := services.ParseIdentityMode(opts.IdentityMode)
	if err != nil {
		return nil, err
	}
	fallback, err := services.ParseRosterFallback(opts.RosterFallback)
	if err != nil {
		return nil, err
	}

	c := &Container{
		IdentityMode:   mode,
		RosterFallback: fallback,
		Seed:           opts.Settings.Seed(),
	}

	endpoints, configured := resolveEndpoints(opts.DirectoryURL, opts.Settings)
	if configured {
		client, err := directory.NewClient(directory.Options{
			Endpoints: endpoints,
			Timeout:   opts.RequestTimeout,
			Token:     opts.DirectoryToken,
		})
		if err != nil {
			return nil, err
		}
		c.Directory = client
	}

	if opts.Journal {
		repo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
		if err != nil {
			return nil, err
		}
		c.journalRepo = repo
		c.Journal = repo
	}

	logging.Logger.Debug("Container initialized",
		"directory_configured", configured,
		"identity_mode", mode,
		"journal", opts.Journal,
		"roster_fallback", fallback)

	return c, nil
}

// resolveEndpoints derives endpoints from the base URL and applies
// per-operation overrides from settings.json
func resolveEndpoints(baseURL string, settings *config.Settings) (directory.Endpoints, bool) {
	var endpoints directory.Endpoints
	if baseURL != "" {
		endpoints = directory.EndpointsFromBase(baseURL)
	}

	if settings != nil && settings.Endpoints != nil {
		overrides := settings.Endpoints
		for _, o := range []struct {
			dst *string
			src string
		}{
			{&endpoints.ClockIn, overrides.ClockIn},
			{&endpoints.ClockOut, overrides.ClockOut},
			{&endpoints.EndBreak, overrides.EndBreak},
			{&endpoints.GetEmployees, overrides.GetEmployees},
			{&endpoints.StartBreak, overrides.StartBreak},
		} {
			if o.src != "" {
				*o.dst = o.src
			}
		}
	}

	return endpoints, endpoints != (directory.Endpoints{})
}

// journalWriter returns the journal as a PunchWriter, or an untyped nil
func (c *Container) journalWriter() ports.PunchWriter {
	if c.Journal == nil {
		return nil
	}
	return c.Journal
}

// NewController builds an independent kiosk: its own roster store and
// session, sharing the directory client and the journal
func (c *Container) NewController(mode domain.IdentityMode) (*services.AttendanceController, error) {
	if c.Directory == nil {
		return nil, errDirectoryNotConfigured
	}

	store := services.NewRosterStore(c.Directory, c.RosterFallback, c.Seed)
	resolver := services.NewIdentityResolver(mode, store)
	return services.NewAttendanceController(store, resolver, c.Directory, c.journalWriter(), nil), nil
}

// NewKioskModel builds the TUI model of one kiosk. ctx bounds the
// directory calls the kiosk makes.
func (c *Container) NewKioskModel(ctx context.Context, modelConfig ui.ModelConfig) (*ui.Model, error) {
	controller, err := c.NewController(c.IdentityMode)
	if err != nil {
		return nil, fmt.Errorf("failed to create kiosk: %w", err)
	}
	modelConfig.Context = ctx
	modelConfig.Controller = controller
	return ui.NewModel(modelConfig), nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.journalRepo != nil {
		return c.journalRepo.Close()
	}
	return nil
}
