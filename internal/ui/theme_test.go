package ui

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestLoadFont(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFont(filepath.Join(dir, "font.woff"))
	assert.ErrorContains(t, err, "unsupported font type")

	_, err = LoadFont(filepath.Join(dir, "missing.ttf"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.ttf")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = LoadFont(empty)
	assert.ErrorContains(t, err, "empty")

	font := filepath.Join(dir, "Inter.TTF")
	require.NoError(t, os.WriteFile(font, []byte("fake font bytes"), 0o644))
	res, err := LoadFont(font)
	require.NoError(t, err)
	assert.Equal(t, "Inter.TTF", res.Name())
}

func TestBoldFontCandidates(t *testing.T) {
	got := boldFontCandidates("/fonts/Inter-Regular.ttf")
	assert.Contains(t, got, "/fonts/Inter-Bold.ttf")
	assert.Len(t, got, len(BoldFontSuffixes))
}

func TestOverviewTheme_FontFallback(t *testing.T) {
	th := NewOverviewTheme(filepath.Join(t.TempDir(), "missing.ttf"), zaptest.NewLogger(t))

	assert.False(t, th.HasCustomFont())
	assert.Equal(t, theme.DefaultTheme().Font(fyne.TextStyle{}), th.Font(fyne.TextStyle{}))
}

func TestOverviewTheme_CustomFont(t *testing.T) {
	dir := t.TempDir()
	regular := filepath.Join(dir, "Inter-Regular.ttf")
	bold := filepath.Join(dir, "Inter-Bold.ttf")
	require.NoError(t, os.WriteFile(regular, []byte("regular"), 0o644))
	require.NoError(t, os.WriteFile(bold, []byte("bold"), 0o644))

	th := NewOverviewTheme(regular, nil)
	require.True(t, th.HasCustomFont())
	assert.Equal(t, "Inter-Regular.ttf", th.Font(fyne.TextStyle{}).Name())
	assert.Equal(t, "Inter-Bold.ttf", th.Font(fyne.TextStyle{Bold: true}).Name())

	// Monospace always comes from the bundled theme
	assert.Equal(t, theme.DefaultTheme().Font(fyne.TextStyle{Monospace: true}), th.Font(fyne.TextStyle{Monospace: true}))
}

func TestOverviewTheme_BoldFallsBackToRegular(t *testing.T) {
	regular := filepath.Join(t.TempDir(), "Solo.ttf")
	require.NoError(t, os.WriteFile(regular, []byte("regular"), 0o644))

	th := NewOverviewTheme(regular, nil)
	assert.Equal(t, "Solo.ttf", th.Font(fyne.TextStyle{Bold: true}).Name())
}

func TestOverviewTheme_Size(t *testing.T) {
	th := NewOverviewTheme("", nil)
	base := theme.DefaultTheme().Size(theme.SizeNameText)

	assert.Equal(t, base, th.Size(theme.SizeNameText))

	th.SetScale(2)
	assert.Equal(t, base*2, th.Size(theme.SizeNameText))
	assert.Equal(t, SectionHeadingSize*2, th.Size(theme.SizeNameHeadingText))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameSeparatorThickness), th.Size(theme.SizeNameSeparatorThickness))

	th.SetScale(0)
	assert.Equal(t, float32(1), th.Scale())
}
