package cmd

import (
	"context"
	"fmt"

	"github.com/timeclock/kiosk/internal/domain"
	"github.com/timeclock/kiosk/internal/services"
)

// RosterCmd prints the roster as the kiosk would load it.
// PIN codes are never printed.
type RosterCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type rosterEntry struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Status      domain.Status `json:"status"`
	TimesheetID string        `json:"timesheet_id,omitempty"`
}

// Run executes the roster command
func (r *RosterCmd) Run(cli *CLI) error {
	if cli.Container.Directory == nil {
		return errDirectoryNotConfigured
	}

	store := services.NewRosterStore(cli.Container.Directory, cli.Container.RosterFallback, cli.Container.Seed)
	result := store.Load(context.Background())
	if result.Outcome != services.OutcomeLoaded {
		return fmt.Errorf("failed to load roster (fallback %s): %w", result.Outcome, result.Err)
	}

	entries := make([]rosterEntry, 0, store.Len())
	for _, e := range store.Employees() {
		entries = append(entries, rosterEntry{
			ID:          e.ID,
			Name:        e.Name,
			Status:      e.Status,
			TimesheetID: e.ActiveTimesheetID,
		})
	}

	if r.Format == "json" {
		return printJSON(entries)
	}

	if len(entries) == 0 {
		fmt.Println("The directory returned no employees.")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		timesheet := e.TimesheetID
		if timesheet == "" {
			timesheet = "-"
		}
		rows = append(rows, []string{e.ID, e.Name, e.Status.Symbol() + " " + e.Status.Label(), timesheet})
	}
	fmt.Println(renderTable([]string{"ID", "Name", "Status", "Timesheet"}, rows))
	fmt.Printf("%d employees\n", len(entries))
	return nil
}
