package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/timeclock/kiosk/internal/config"
	"github.com/timeclock/kiosk/internal/domain"
)

// PunchesCmd lists the local punch journal, newest first
type PunchesCmd struct {
	Employee string `help:"Only show punches of this employee id"`
	Format   string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit    int    `help:"Maximum number of punches to show (0 = all)" default:"50"`
}

// Run executes the punches command
func (p *PunchesCmd) Run(cli *CLI) error {
	if cli.Container.Journal == nil {
		return errors.New("the punch journal is disabled (--no-journal or \"journal\": false)")
	}

	punches, err := cli.Container.Journal.List(context.Background(), domain.PunchFilter{
		EmployeeID: p.Employee,
		Limit:      p.Limit,
	})
	if err != nil {
		return fmt.Errorf("failed to list punches: %w", err)
	}

	if p.Format == "json" {
		return printJSON(punches)
	}

	if len(punches) == 0 {
		fmt.Printf("No punches recorded in %s\n", config.GetDBPath())
		return nil
	}

	rows := make([][]string, 0, len(punches))
	for _, punch := range punches {
		timesheet := punch.TimesheetID
		if timesheet == "" {
			timesheet = "-"
		}
		outcome := string(punch.Outcome)
		if punch.Reason != "" {
			outcome += ": " + punch.Reason
		}
		rows = append(rows, []string{
			punch.SubmittedAt.Local().Format(time.DateTime),
			punch.EmployeeID,
			punch.EmployeeName,
			string(punch.Action),
			timesheet,
			outcome,
		})
	}
	fmt.Println(renderTable([]string{"Submitted", "ID", "Employee", "Action", "Timesheet", "Outcome"}, rows))
	return nil
}
