package domain

// PIN length bounds for PIN identification mode
const (
	MaxPinLen = 6
	MinPinLen = 4
)

// PinEntry holds the digits typed on the PIN pad.
// Only digits are accepted and the value never exceeds MaxPinLen.
type PinEntry struct {
	digits []byte
}

// Press appends a digit. Non-digits and input past MaxPinLen are ignored.
// Returns true if the entry changed.
func (p *PinEntry) Press(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	if len(p.digits) >= MaxPinLen {
		return false
	}
	p.digits = append(p.digits, byte(r))
	return true
}

// Backspace removes the last digit
func (p *PinEntry) Backspace() {
	if len(p.digits) > 0 {
		p.digits = p.digits[:len(p.digits)-1]
	}
}

// Clear resets the entry to empty
func (p *PinEntry) Clear() {
	p.digits = p.digits[:0]
}

// Len returns the number of digits entered
func (p *PinEntry) Len() int {
	return len(p.digits)
}

// Ready reports whether the entry is long enough to be submitted
func (p *PinEntry) Ready() bool {
	return len(p.digits) >= MinPinLen
}

// Value returns the entered digits
func (p *PinEntry) Value() string {
	return string(p.digits)
}
