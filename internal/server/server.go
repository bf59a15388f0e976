package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"
	"golang.org/x/sync/errgroup"

	"github.com/timeclock/kiosk/internal/logging"
	"github.com/timeclock/kiosk/internal/ui"
)

const shutdownTimeout = 30 * time.Second

// ModelFactory builds an independent kiosk (own roster, own session) for
// one SSH connection. ctx is cancelled when the connection closes.
type ModelFactory func(ctx context.Context) (*ui.Model, error)

// Options configures the SSH server
type Options struct {
	AuthorizedKeysPath string // Defaults to ~/.ssh/authorized_keys
	Host               string
	HostKeyPath        string
	Port               string
}

// Server serves kiosk terminals over SSH
type Server struct {
	addr               string
	authorizedKeysPath string
	newModel           ModelFactory
	wishServer         *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(opts Options, newModel ModelFactory) (*Server, error) {
	if err := os.MkdirAll(filepath.Dir(opts.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	authorizedKeysPath := opts.AuthorizedKeysPath
	if authorizedKeysPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		authorizedKeysPath = filepath.Join(homeDir, ".ssh", "authorized_keys")
	}

	s := &Server{
		addr:               net.JoinHostPort(opts.Host, opts.Port),
		authorizedKeysPath: authorizedKeysPath,
		newModel:           newModel,
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.addr),
		wish.WithHostKeyPath(opts.HostKeyPath),
		wish.WithPublicKeyAuth(s.authenticate),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.addr
}

// Serve runs the server until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context) error {
	logging.Logger.Info("Starting SSH server", "address", s.addr)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logging.Logger.Info("Shutting down SSH server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown SSH server: %w", err)
		}
		return nil
	})

	err := g.Wait()
	logging.Logger.Info("SSH server stopped")
	return err
}
