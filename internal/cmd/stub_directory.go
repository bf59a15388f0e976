package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/timeclock/kiosk/internal/adapters/stubdirectory"
	"github.com/timeclock/kiosk/internal/logging"
	"github.com/timeclock/kiosk/internal/services"
)

// StubDirectoryCmd runs an in-memory directory service
type StubDirectoryCmd struct {
	Addr  string `help:"Address to listen on" default:":8080" env:"KIOSK_STUB_ADDR"`
	Quiet bool   `help:"Do not log requests to stderr"`
}

// Run executes the stub-directory command
func (s *StubDirectoryCmd) Run(cli *CLI) error {
	seed := cli.Container.Seed
	if len(seed) == 0 {
		seed = services.DefaultSeedEmployees
	}

	var requestLogger *slog.Logger
	if !s.Quiet {
		requestLogger = stubdirectory.NewLogger(os.Stderr)
	}

	dir := stubdirectory.New(seed)
	router := stubdirectory.NewRouter(dir, requestLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Stub directory seeded", "employees", len(seed))
	fmt.Printf("Stub directory on %s with %d employees (Ctrl+C to stop)\n", s.Addr, len(seed))
	if strings.HasPrefix(s.Addr, ":") {
		fmt.Printf("Point kiosks at it with --directory-url http://localhost%s\n", s.Addr)
	}

	return stubdirectory.Serve(ctx, s.Addr, router)
}
