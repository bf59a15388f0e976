package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPinEntry_AcceptsDigitsOnly(t *testing.T) {
	var p PinEntry
	for _, r := range "1a2 3-4" {
		p.Press(r)
	}
	assert.Equal(t, "1234", p.Value())
}

func TestPinEntry_TruncatesAtMax(t *testing.T) {
	var p PinEntry
	for _, r := range "123456789" {
		p.Press(r)
	}
	assert.Equal(t, "123456", p.Value())
	assert.False(t, p.Press('0'))
}

func TestPinEntry_BackspaceAndClear(t *testing.T) {
	var p PinEntry
	p.Backspace()
	assert.Equal(t, "", p.Value())

	for _, r := range "0123" {
		p.Press(r)
	}
	p.Backspace()
	assert.Equal(t, "012", p.Value())

	p.Clear()
	assert.Equal(t, 0, p.Len())
}

func TestPinEntry_Ready(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"12", false},
		{"123", false},
		{"1234", true},
		{"123456", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var p PinEntry
			for _, r := range tt.input {
				p.Press(r)
			}
			assert.Equal(t, tt.expected, p.Ready())
		})
	}
}
