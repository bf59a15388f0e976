package cmd

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeclock/kiosk/internal/adapters/stubdirectory"
	"github.com/timeclock/kiosk/internal/domain"
)

func newStubCLI(t *testing.T) (*CLI, *stubdirectory.Directory) {
	t.Helper()
	t.Setenv("KIOSK_HOME", t.TempDir())

	dir := stubdirectory.New([]domain.Employee{{ID: "1", Name: "Ana"}, {ID: "2", Name: "Bo"}})
	srv := httptest.NewServer(stubdirectory.NewRouter(dir, nil))
	t.Cleanup(srv.Close)

	container, err := NewContainer(ContainerOptions{DirectoryURL: srv.URL, Journal: true})
	require.NoError(t, err)
	t.Cleanup(func() { container.Close() })

	return &CLI{Container: container}, dir
}

func TestPunchCmd_AgainstStubDirectory(t *testing.T) {
	cli, dir := newStubCLI(t)

	require.NoError(t, (&PunchCmd{Employee: "2", Action: "clock_in"}).Run(cli))
	require.NoError(t, (&PunchCmd{Employee: "2", Action: "start_break"}).Run(cli))

	employees := dir.Employees()
	assert.Equal(t, domain.StatusOnBreak, employees[1].Status)
	assert.Equal(t, "T1", employees[1].ActiveTimesheetID)

	err := (&PunchCmd{Employee: "2", Action: "clock_out"}).Run(cli)
	assert.ErrorIs(t, err, domain.ErrActionRejected, "clock out from break is refused before the directory is called")

	err = (&PunchCmd{Employee: "9", Action: "clock_in"}).Run(cli)
	assert.Error(t, err)

	punches, err := cli.Container.Journal.List(context.Background(), domain.PunchFilter{EmployeeID: "2"})
	require.NoError(t, err)
	require.Len(t, punches, 2)
	assert.Equal(t, domain.ActionStartBreak, punches[0].Action)
	assert.Equal(t, domain.PunchSucceeded, punches[0].Outcome)
	assert.Equal(t, "T1", punches[0].TimesheetID)
}

func TestRosterAndPunchesCmd(t *testing.T) {
	cli, _ := newStubCLI(t)

	assert.NoError(t, (&RosterCmd{Format: "table"}).Run(cli))
	assert.NoError(t, (&RosterCmd{Format: "json"}).Run(cli))
	assert.NoError(t, (&PunchesCmd{Format: "table", Limit: 10}).Run(cli))

	cli.Container.Journal = nil
	assert.ErrorContains(t, (&PunchesCmd{}).Run(cli), "journal is disabled")
}
