package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/timeclock/kiosk/internal/domain"
	"github.com/timeclock/kiosk/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string         // Pre-built help content
	height      int            // Terminal height
	initialized bool           // Track if viewport has been sized
	keys        *KeyMap        // Key bindings to display
	viewport    viewport.Model // Scrollable viewport
	width       int            // Terminal width
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// buildHelpContent builds the complete help text content for the identity mode
func buildHelpContent(keys *KeyMap, mode domain.IdentityMode) string {
	var content string

	if mode == domain.IdentityModePin {
		content += theme.HelpGroupStyle.Render("PIN Entry") + "\n"
		content += renderShortcut("0-9", "enter PIN digit")
		content += renderBinding(keys.Pin.Submit)
		content += renderBinding(keys.Pin.Backspace)
		content += renderBinding(keys.Pin.Clear)
	} else {
		content += theme.HelpGroupStyle.Render("Employee List") + "\n"
		content += renderBinding(keys.Navigation.Up)
		content += renderBinding(keys.Navigation.Down)
		content += renderBinding(keys.Navigation.Select)
	}

	content += "\n" + theme.HelpGroupStyle.Render("Attendance") + "\n"
	content += renderBinding(keys.Attendance.ClockIn)
	content += renderBinding(keys.Attendance.StartBreak)
	content += renderBinding(keys.Attendance.EndBreak)
	content += renderBinding(keys.Attendance.ClockOut)
	content += renderBinding(keys.Attendance.Cancel)

	content += "\n" + theme.HelpGroupStyle.Render("Application") + "\n"
	content += renderBinding(keys.Application.Refresh)
	content += renderBinding(keys.Application.Help)
	content += renderBinding(keys.Application.Quit)
	content += renderBinding(keys.Application.ForceQuit)

	content += "\n" + theme.HelpGroupStyle.Render("Status Indicators") + "\n"
	content += renderShortcut(theme.OnDutyIconStyle.Render(domain.SymbolOnDuty), domain.StatusOnDuty.Label())
	content += renderShortcut(theme.OnBreakIconStyle.Render(domain.SymbolOnBreak), domain.StatusOnBreak.Label())
	content += renderShortcut(theme.OffDutyIconStyle.Render(domain.SymbolOffDuty), domain.StatusOffDuty.Label())

	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap, mode domain.IdentityMode) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys, mode),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height

		// Dialog header: 4 lines, Footer: 2 lines
		viewportHeight := msg.Height - 6
		if viewportHeight < 5 {
			viewportHeight = 5
		}

		h.viewport.Width = msg.Width
		h.viewport.Height = viewportHeight
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit, h.keys.Application.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc or " + h.keys.Application.Help.Help().Key + " to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}
