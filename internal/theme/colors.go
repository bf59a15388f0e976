package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles, clock
)

// Attendance status colors
const (
	ColorOffDuty Color = "8" // Gray - not clocked in
	ColorOnBreak Color = "3" // Yellow - on break
	ColorOnDuty  Color = "2" // Green - clocked in
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSuccess   Color = "42"  // Green - confirmations
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorPanel     Color = "63"  // Blue - employee panel border
	ColorPinDigit  Color = "226" // Yellow - entered PIN digits
	ColorSpinner   Color = "205" // Pink
)
