package ui

import (
	"fmt"
	"strings"

	"github.com/timeclock/kiosk/internal/domain"
	"github.com/timeclock/kiosk/internal/theme"
)

const (
	pinDot  = "●"
	pinSlot = "_"
)

// renderPinPad renders the masked PIN entry. Digits are never echoed.
func renderPinPad(entered int, keys KeyMap) string {
	var slots []string
	for i := 0; i < domain.MaxPinLen; i++ {
		if i < entered {
			slots = append(slots, theme.PinDigitStyle.Render(pinDot))
			continue
		}
		slots = append(slots, theme.PinSlotStyle.Render(pinSlot))
	}

	var b strings.Builder
	b.WriteString(theme.SubtitleStyle.Render("Enter your PIN"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(slots, " "))
	b.WriteString("\n\n")

	hint := fmt.Sprintf("Type %d-%d digits and press %s", domain.MinPinLen, domain.MaxPinLen, keys.Pin.Submit.Help().Key)
	b.WriteString(theme.MutedStyle.Render(hint))
	return theme.PanelStyle.Render(b.String())
}
