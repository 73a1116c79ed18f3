package ui

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"go.uber.org/zap"
)

// Supported font file extensions
var fontExtensions = []string{".ttf", ".otf"}

// BoldFontSuffixes are tried next to a regular font file to find its bold face.
var BoldFontSuffixes = []string{"-Bold", "_Bold", "Bold", "-SemiBold"}

// OverviewTheme is the application theme: the overview palette, an optional
// custom font with fallbacks, and text sizes scaled with the window.
type OverviewTheme struct {
	regular fyne.Resource
	bold    fyne.Resource
	scale   float32
}

// NewOverviewTheme creates the theme. fontPath may be empty; when the font
// cannot be loaded the bundled theme font is used instead.
func NewOverviewTheme(fontPath string, logger *zap.Logger) *OverviewTheme {
	if logger == nil {
		logger = zap.NewNop()
	}

	t := &OverviewTheme{scale: 1}
	if fontPath == "" {
		return t
	}

	regular, err := LoadFont(fontPath)
	if err != nil {
		logger.Warn("Falling back to bundled font", zap.String("font", fontPath), zap.Error(err))
		return t
	}
	t.regular = regular
	t.bold = regular

	for _, candidate := range boldFontCandidates(fontPath) {
		if bold, err := LoadFont(candidate); err == nil {
			t.bold = bold
			break
		}
	}
	logger.Debug("Loaded custom font",
		zap.String("regular", t.regular.Name()),
		zap.String("bold", t.bold.Name()))
	return t
}

// LoadFont reads a TrueType or OpenType font file.
func LoadFont(path string) (fyne.Resource, error) {
	ext := strings.ToLower(filepath.Ext(path))
	supported := false
	for _, e := range fontExtensions {
		if ext == e {
			supported = true
			break
		}
	}
	if !supported {
		return nil, fmt.Errorf("unsupported font type %q", ext)
	}

	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	if len(res.Content()) == 0 {
		return nil, fmt.Errorf("font file is empty: %s", path)
	}
	return res, nil
}

// boldFontCandidates lists sibling files that may hold the bold face of path.
func boldFontCandidates(path string) []string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	base = strings.TrimSuffix(base, "-Regular")

	out := make([]string, 0, len(BoldFontSuffixes))
	for _, suffix := range BoldFontSuffixes {
		out = append(out, base+suffix+ext)
	}
	return out
}

// SetScale sets the factor applied to text and padding sizes
func (t *OverviewTheme) SetScale(scale float32) {
	if scale <= 0 {
		scale = 1
	}
	t.scale = scale
}

// Scale returns the current size factor
func (t *OverviewTheme) Scale() float32 {
	return t.scale
}

// HasCustomFont returns true if a custom font file was loaded
func (t *OverviewTheme) HasCustomFont() bool {
	return t.regular != nil
}

// Color returns theme colors
func (t *OverviewTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return ColorAccent
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 24, G: 26, B: 31, A: 255}
		}
		return color.NRGBA{R: 244, G: 246, B: 249, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 235, G: 237, B: 240, A: 255}
		}
		return color.NRGBA{R: 32, G: 33, B: 36, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns the custom font when loaded, the bundled one otherwise
func (t *OverviewTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.regular == nil || style.Monospace || style.Symbol {
		return theme.DefaultTheme().Font(style)
	}
	if style.Bold {
		return t.bold
	}
	return t.regular
}

// Icon returns theme icons
func (t *OverviewTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes multiplied by the current scale
func (t *OverviewTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameHeadingText:
		return SectionHeadingSize * t.scale
	case theme.SizeNameSeparatorThickness, theme.SizeNameInputBorder:
		// Hairlines stay crisp at any scale
		return theme.DefaultTheme().Size(name)
	}

	return theme.DefaultTheme().Size(name) * t.scale
}
