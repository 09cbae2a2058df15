package trafficlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseTable(t *testing.T) {
	tests := []struct {
		phase    Phase
		duration int
		next     Phase
		color    Color
		name     string
	}{
		{Green, 9, Yellow, ColorGreen, "green"},
		{Yellow, 3, Red, ColorYellow, "yellow"},
		{Red, 6, Green, ColorRed, "red"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.duration, tt.phase.Duration())
			assert.Equal(t, tt.next, tt.phase.Next())
			assert.Equal(t, tt.color, tt.phase.Color())
			assert.Equal(t, tt.name, tt.phase.String())
		})
	}
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "day", Day.String())
	assert.Equal(t, "night", Night.String())
	assert.Equal(t, "unknown", Mode(7).String())
	assert.Equal(t, "unknown", Phase(7).String())
	assert.Equal(t, "off", ColorOff.String())
	assert.Equal(t, "yellow", ColorAmber.String())
	assert.Equal(t, "unknown", Color(9).String())
}
