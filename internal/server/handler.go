package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"

	"github.com/timeclock/kiosk/internal/logging"
	"github.com/timeclock/kiosk/internal/ui"
)

// kioskModel wraps ui.Model to log the lifetime of a remote kiosk
type kioskModel struct {
	*ui.Model
	kioskID   string
	startTime time.Time
}

func (k *kioskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		logging.Logger.Info("SSH kiosk ended",
			"kiosk_id", k.kioskID,
			"duration", time.Since(k.startTime).String())
	}

	updatedModel, cmd := k.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		k.Model = m
	}
	return k, cmd
}

// teaHandler creates an independent kiosk for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	kioskID := uuid.New().String()

	logging.Logger.Info("New SSH kiosk",
		"kiosk_id", kioskID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model, err := s.newModel(sess.Context())
	if err != nil {
		logging.Logger.Error("Failed to create kiosk for SSH session",
			"error", err,
			"kiosk_id", kioskID)
		return errorModel{err}, nil
	}

	return &kioskModel{
		Model:     model,
		kioskID:   kioskID,
		startTime: time.Now(),
	}, []tea.ProgramOption{tea.WithAltScreen()}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
