package ui

import (
	"image/color"
	"time"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconReload   = "⟳"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	CountLabelFormat   = "%d"
)

// Card sizing at scale 1.0
const (
	CardWidth        float32 = 180
	CardHeight       float32 = 210
	CardCornerRadius float32 = 12
	CardGap          float32 = 14
	CardBorderWidth  float32 = 1.5

	AvatarDiameter     float32 = 96
	AvatarBorderWidth  float32 = 2
	InitialsTextSize   float32 = 32
	NameTextSize       float32 = 14
	PartyTextSize      float32 = 12
	SectionHeadingSize float32 = 20
)

// Navigation sidebar
const (
	NavWidth      float32 = 220
	NavItemHeight float32 = 40
)

// Content padding
const (
	ContentPadding float32 = 24
)

// Window scaling: the layout is designed for DesignWidth and scaled
// proportionally within [MinScale, MaxScale].
const (
	DesignWidth float32 = 1280
	MinScale    float32 = 0.75
	MaxScale    float32 = 1.5
)

// Status bar
const (
	StatusAutoHide = 4 * time.Second
)

// Debounce durations
const (
	ResizeDebounce = 150 * time.Millisecond
)

// Palette
var (
	ColorCardBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	ColorCardHover      = color.NRGBA{R: 232, G: 240, B: 254, A: 255}
	ColorCardSelected   = color.NRGBA{R: 210, G: 227, B: 252, A: 255}
	ColorCardBorder     = color.NRGBA{R: 218, G: 220, B: 224, A: 255}
	ColorAccent         = color.NRGBA{R: 25, G: 118, B: 210, A: 255}
	ColorAvatarBorder   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	ColorInitials       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	ColorPartyText      = color.NRGBA{R: 95, G: 99, B: 104, A: 255}
	ColorNavBackground  = color.NRGBA{R: 33, G: 41, B: 54, A: 255}
	ColorNavText        = color.NRGBA{R: 220, G: 224, B: 230, A: 255}
	ColorNavSelected    = color.NRGBA{R: 25, G: 118, B: 210, A: 255}
	ColorNavHover       = color.NRGBA{R: 48, G: 58, B: 74, A: 255}
	Transparent         = color.NRGBA{}
)
