package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/timeclock/kiosk/internal/domain"
	"github.com/timeclock/kiosk/internal/theme"
)

const (
	maxMessageLines = 2
	minLineWidth    = 10
	truncationMark  = "..."
)

// dismissAfter schedules the expiry of the message with the given token.
// A zero duration keeps messages until they are replaced.
func dismissAfter(message domain.Message, delay time.Duration) tea.Cmd {
	if message.IsZero() || delay <= 0 {
		return nil
	}
	token := message.Token
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return dismissMessageMsg{token: token}
	})
}

// renderMessage renders the transient message in a fixed two line slot so
// the layout does not jump when messages appear and expire.
func renderMessage(message domain.Message, width int) string {
	if message.IsZero() {
		return " \n "
	}
	text := formatMessageForDisplay(message.Text, width)
	if !strings.Contains(text, "\n") {
		text += "\n "
	}
	return theme.MessageStyle(message.Kind).Render(text)
}

// formatMessageForDisplay word-wraps a message to maxMessageLines lines of
// maxWidth runes and truncates with "..." when it does not fit.
func formatMessageForDisplay(message string, maxWidth int) string {
	if maxWidth < minLineWidth {
		maxWidth = minLineWidth
	}

	words := strings.Fields(message)
	if len(words) == 0 {
		return message
	}

	var lines []string
	var currentLine strings.Builder
	truncated := false

	for i, word := range words {
		wordLen := utf8.RuneCountInString(word)
		currentLen := utf8.RuneCountInString(currentLine.String())

		if currentLen > 0 && currentLen+1+wordLen > maxWidth {
			lines = append(lines, currentLine.String())
			currentLine.Reset()

			if len(lines) >= maxMessageLines {
				truncated = i < len(words)
				break
			}
		}

		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	if currentLine.Len() > 0 && len(lines) < maxMessageLines {
		lines = append(lines, currentLine.String())
	}

	if truncated {
		lastLine := []rune(lines[maxMessageLines-1])
		keep := maxWidth - utf8.RuneCountInString(truncationMark)
		if len(lastLine) > keep {
			lastLine = lastLine[:keep]
		}
		lines[maxMessageLines-1] = string(lastLine) + truncationMark
	}

	return strings.Join(lines, "\n")
}
