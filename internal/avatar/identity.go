package avatar

import (
	"hash/fnv"
	"image/color"
	"strings"
	"unicode/utf8"
)

// Synthetic avatar constants
const (
	PlaceholderInitials = "??"
	MaxChannel          = 180 // keeps white initials legible
)

// DefaultColor is used when there is no name to derive a colour from.
var DefaultColor = color.RGBA{R: 120, G: 120, B: 120, A: 255}

// Initials returns one or two upper-case letters for name: the first letter
// of the first and last words, or the first two letters of a single word.
func Initials(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return PlaceholderInitials
	}

	first := tokens[0]
	r, size := utf8.DecodeRuneInString(first)
	out := []rune{r}

	if len(tokens) > 1 {
		last, _ := utf8.DecodeRuneInString(tokens[len(tokens)-1])
		out = append(out, last)
	} else if len(first) > size {
		second, _ := utf8.DecodeRuneInString(first[size:])
		out = append(out, second)
	}

	return strings.ToUpper(string(out))
}

// ColorFromName derives a stable colour from the 32-bit FNV-1a hash of name.
// Each channel is capped at MaxChannel.
func ColorFromName(name string) color.RGBA {
	if name == "" {
		return DefaultColor
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	sum := h.Sum32()

	return color.RGBA{
		R: clampChannel(sum % 256),
		G: clampChannel((sum / 256) % 256),
		B: clampChannel((sum / 65536) % 256),
		A: 255,
	}
}

func clampChannel(v uint32) uint8 {
	if v > MaxChannel {
		return MaxChannel
	}
	return uint8(v)
}
