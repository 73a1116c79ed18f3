package avatar

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Juan Dela Cruz", "JC"},
		{"Cher", "CH"},
		{"", "??"},
		{"   ", "??"},
		{"X", "X"},
		{"ana reyes", "AR"},
		{"  Maria   Cruz  ", "MC"},
		{"Ñino", "ÑI"},
		{"émile zola", "ÉZ"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Initials(test.name))
		})
	}
}

func TestInitials_Length(t *testing.T) {
	for _, name := range []string{"A", "Ab", "A B", "Juan Dela Cruz", "x y z w"} {
		n := len([]rune(Initials(name)))
		assert.True(t, n >= 1 && n <= 2, "Initials(%q) has %d runes", name, n)
	}
}

func TestColorFromName_Clamped(t *testing.T) {
	for i := 0; i < 2000; i++ {
		c := ColorFromName(fmt.Sprintf("Candidate %d", i))
		assert.LessOrEqual(t, c.R, uint8(MaxChannel))
		assert.LessOrEqual(t, c.G, uint8(MaxChannel))
		assert.LessOrEqual(t, c.B, uint8(MaxChannel))
		assert.Equal(t, uint8(255), c.A)
	}
}

func TestColorFromName_Stable(t *testing.T) {
	first := ColorFromName("Juan Dela Cruz")
	second := ColorFromName("Juan Dela Cruz")
	assert.Equal(t, first, second)
}

func TestColorFromName_FNV1a(t *testing.T) {
	// FNV-1a 32 of "a" is 0xe40c292c: R=0x2c, G=0x29, B=0x0c
	c := ColorFromName("a")
	assert.Equal(t, uint8(0x2c), c.R)
	assert.Equal(t, uint8(0x29), c.G)
	assert.Equal(t, uint8(0x0c), c.B)
}

func TestColorFromName_Empty(t *testing.T) {
	assert.Equal(t, DefaultColor, ColorFromName(""))
}
