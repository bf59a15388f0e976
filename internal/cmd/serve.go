package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/timeclock/kiosk/internal/config"
	"github.com/timeclock/kiosk/internal/logging"
	"github.com/timeclock/kiosk/internal/server"
	"github.com/timeclock/kiosk/internal/ui"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	KioskFlags `embed:""`

	AuthorizedKeys string `help:"authorized_keys file (default ~/.ssh/authorized_keys)" type:"path" env:"KIOSK_AUTHORIZED_KEYS"`
	Host           string `help:"Host to bind to" default:"localhost" env:"KIOSK_SSH_HOST"`
	Port           string `help:"Port to listen on" default:"23234" env:"KIOSK_SSH_PORT"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	modelConfig, err := s.resolve(cli)
	if err != nil {
		return err
	}

	// Fail before listening when no directory is configured
	if cli.Container.Directory == nil {
		return errDirectoryNotConfigured
	}

	newModel := func(ctx context.Context) (*ui.Model, error) {
		return cli.Container.NewKioskModel(ctx, modelConfig)
	}

	srv, err := server.NewServer(server.Options{
		AuthorizedKeysPath: s.AuthorizedKeys,
		Host:               s.Host,
		HostKeyPath:        filepath.Join(config.GetSSHDir(), "id_ed25519"),
		Port:               s.Port,
	}, newModel)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Starting kiosk SSH server",
		"address", srv.Addr(),
		"identity_mode", cli.IdentityMode)
	fmt.Printf("Serving kiosk on ssh://%s (Ctrl+C to stop)\n", srv.Addr())

	// Blocks until shutdown
	return srv.Serve(ctx)
}
