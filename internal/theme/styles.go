package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/timeclock/kiosk/internal/domain"
)

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Status icon styles
var (
	OffDutyIconStyle = lipgloss.NewStyle().
				Foreground(ColorOffDuty)

	OnBreakIconStyle = lipgloss.NewStyle().
				Foreground(ColorOnBreak)

	OnDutyIconStyle = lipgloss.NewStyle().
			Foreground(ColorOnDuty)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	DateStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Employee panel styles
var (
	ActionKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	EmployeeNameStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPanel).
			Padding(1, 2)
)

// PIN pad styles
var (
	PinDigitStyle = lipgloss.NewStyle().
			Foreground(ColorPinDigit).
			Bold(true)

	PinSlotStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Transient message styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

// StatusIconStyle returns the icon style for an attendance status
func StatusIconStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusOnDuty:
		return OnDutyIconStyle
	case domain.StatusOnBreak:
		return OnBreakIconStyle
	default:
		return OffDutyIconStyle
	}
}

// MessageStyle returns the style for a transient message kind
func MessageStyle(kind domain.MessageKind) lipgloss.Style {
	if kind == domain.MessageError {
		return ErrorStyle
	}
	return SuccessStyle
}
