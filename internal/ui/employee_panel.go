package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/timeclock/kiosk/internal/domain"
	"github.com/timeclock/kiosk/internal/theme"
)

// renderEmployeePanel renders the identified employee with the actions
// they may take. While an action is in flight only the spinner is shown.
func renderEmployeePanel(
	employee domain.Employee,
	actions []domain.Action,
	pending domain.ActionKind,
	spin spinner.Model,
	keys KeyMap,
) string {
	var b strings.Builder

	icon := theme.StatusIconStyle(employee.Status).Render(employee.Status.Symbol())
	b.WriteString(icon + " " + theme.EmployeeNameStyle.Render(employee.Name))
	b.WriteString("\n")
	b.WriteString(theme.LabelStyle.Render(employee.Status.Label()))
	b.WriteString("\n\n")

	if pending != "" {
		description := string(pending)
		if action := domain.GetActionByKind(pending); action != nil {
			description = action.Description
		}
		b.WriteString(spin.View() + " " + theme.NormalStyle.Render(description+"..."))
		return theme.PanelStyle.Render(b.String())
	}

	if len(actions) == 0 {
		b.WriteString(theme.MutedStyle.Render("No actions available"))
		b.WriteString("\n")
	}
	for _, action := range actions {
		b.WriteString(renderActionLine(keys, action.Kind, action.Description))
	}
	if cancel := domain.GetActionByKind(domain.ActionCancel); cancel != nil {
		b.WriteString(renderActionLine(keys, cancel.Kind, cancel.Description))
	}

	return theme.PanelStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}

func renderActionLine(keys KeyMap, kind domain.ActionKind, description string) string {
	binding, ok := keys.ActionBinding(kind)
	if !ok {
		return ""
	}
	return theme.ActionKeyStyle.Render("["+binding.Help().Key+"]") + " " + theme.NormalStyle.Render(description) + "\n"
}
