package cmd

import (
	"context"
	"fmt"

	"github.com/timeclock/kiosk/internal/domain"
	"github.com/timeclock/kiosk/internal/logging"
	"github.com/timeclock/kiosk/internal/services"
)

// PunchCmd performs one attendance action for an employee without the TUI.
// It goes through the same controller as the kiosk, so the transition table,
// the directory call and the journal entry are identical.
type PunchCmd struct {
	Employee string `arg:"" help:"Employee id (see 'kiosk roster')"`
	Action   string `arg:"" help:"Action to perform" enum:"clock_in,clock_out,start_break,end_break"`
}

// Run executes the punch command
func (p *PunchCmd) Run(cli *CLI) error {
	controller, err := cli.Container.NewController(domain.IdentityModeSelect)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if result := controller.Roster().Load(ctx); result.Outcome != services.OutcomeLoaded {
		return fmt.Errorf("failed to load roster (fallback %s): %w", result.Outcome, result.Err)
	}

	if err := controller.Select(p.Employee); err != nil {
		return fmt.Errorf("cannot select employee %s: %w", p.Employee, err)
	}
	employee, _ := controller.Identified()

	kind := domain.ActionKind(p.Action)
	logging.Logger.Info("Punch from CLI", "employee_id", employee.ID, "action", kind)

	message, err := controller.Perform(ctx, kind)
	if err != nil {
		return fmt.Errorf("%s for %s: %w", domain.GetActionByKind(kind).Description, employee.Name, err)
	}

	fmt.Printf("%s: %s\n", employee.Name, message.Text)
	if after, ok := controller.Roster().Get(employee.ID); ok {
		fmt.Printf("Status: %s %s\n", after.Status.Symbol(), after.Status.Label())
	}
	return nil
}
