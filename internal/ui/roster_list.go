package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/timeclock/kiosk/internal/domain"
	"github.com/timeclock/kiosk/internal/theme"
)

// EmployeeItem implements list.Item
type EmployeeItem struct {
	ID     string
	Name   string
	Status domain.Status
}

// FilterValue implements list.Item
func (i EmployeeItem) FilterValue() string {
	return i.Name
}

// EmployeeDelegate renders one employee per line with a status icon
type EmployeeDelegate struct{}

// Height implements list.ItemDelegate
func (d EmployeeDelegate) Height() int {
	return 1
}

// Spacing implements list.ItemDelegate
func (d EmployeeDelegate) Spacing() int {
	return 0
}

// Update implements list.ItemDelegate
func (d EmployeeDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d EmployeeDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(EmployeeItem)
	if !ok {
		return
	}

	cursor := " "
	nameStyle := theme.NormalStyle
	if index == m.Index() {
		cursor = ">"
		nameStyle = theme.SelectedStyle
	}

	icon := theme.StatusIconStyle(item.Status).Render(item.Status.Symbol())
	line := fmt.Sprintf("%s %s %s  %s",
		cursor,
		icon,
		nameStyle.Render(item.Name),
		theme.MutedStyle.Render(item.Status.Label()))
	fmt.Fprint(w, line)
}

// RosterList is the employee picker used in select mode
type RosterList struct {
	list       list.Model
	refreshKey string
}

// NewRosterList creates an empty roster list
func NewRosterList(keys KeyMap) *RosterList {
	l := list.New(nil, EmployeeDelegate{}, 40, 10)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.KeyMap.CursorUp = keys.Navigation.Up
	l.KeyMap.CursorDown = keys.Navigation.Down
	return &RosterList{list: l, refreshKey: keys.Application.Refresh.Help().Key}
}

// SetEmployees replaces the list items, keeping the cursor on the same
// employee when it is still present
func (r *RosterList) SetEmployees(employees []domain.Employee) {
	selectedID := r.SelectedID()

	items := make([]list.Item, len(employees))
	cursor := 0
	for i, e := range employees {
		items[i] = EmployeeItem{ID: e.ID, Name: e.Name, Status: e.Status}
		if e.ID == selectedID {
			cursor = i
		}
	}
	r.list.SetItems(items)
	r.list.Select(cursor)
}

// SelectedID returns the id of the highlighted employee, or "" when the
// list is empty
func (r *RosterList) SelectedID() string {
	item, ok := r.list.SelectedItem().(EmployeeItem)
	if !ok {
		return ""
	}
	return item.ID
}

// Len returns the number of listed employees
func (r *RosterList) Len() int {
	return len(r.list.Items())
}

// SetSize resizes the list viewport
func (r *RosterList) SetSize(width, height int) {
	if height < 1 {
		height = 1
	}
	r.list.SetSize(width, height)
}

// Update forwards navigation messages to the list
func (r *RosterList) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	r.list, cmd = r.list.Update(msg)
	return cmd
}

// View renders the list
func (r *RosterList) View() string {
	if r.Len() == 0 {
		return theme.MutedStyle.Render("No employees available. Press " + r.refreshKey + " to try again.")
	}
	return r.list.View()
}
