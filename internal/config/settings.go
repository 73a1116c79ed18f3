package config

import (
	"fyne.io/fyne/v2"

	"github.com/halalan-ph/candidate-overview/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDataPath     = "data_path"
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
	KeyUIScale      = "ui_scale"
	KeyFontPath     = "font_path"
	KeyLanguage     = "app_language"
	KeyWatchData    = "watch_data_file"
)

// Default values
const (
	DefaultWindowWidth  = 1100
	DefaultWindowHeight = 720
	DefaultUIScale      = 1.0
	DefaultLanguage     = "system"
	DefaultWatchData    = true
)

// Bounds enforced by the setters
const (
	MinWindowWidth  = 480
	MinWindowHeight = 360
	MaxWindowSide   = 8192
	MinUIScale      = 0.5
	MaxUIScale      = 3.0
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDataPath returns the configured candidate data file
func (s *Settings) GetDataPath() string {
	path := s.app.Preferences().String(KeyDataPath)
	if path == "" {
		defaultPath, err := platform.GetDefaultDataFile()
		if err != nil {
			defaultPath = platform.DefaultDataFileName
		}
		s.SetDataPath(defaultPath)
		return defaultPath
	}
	return path
}

// SetDataPath sets the candidate data file
func (s *Settings) SetDataPath(path string) {
	s.app.Preferences().SetString(KeyDataPath, path)
}

// GetWindowSize returns the last stored window size
func (s *Settings) GetWindowSize() fyne.Size {
	w := s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	h := s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	return fyne.NewSize(float32(clampInt(w, MinWindowWidth, MaxWindowSide)), float32(clampInt(h, MinWindowHeight, MaxWindowSide)))
}

// SetWindowSize stores the window size, clamped to sane bounds
func (s *Settings) SetWindowSize(size fyne.Size) {
	s.app.Preferences().SetInt(KeyWindowWidth, clampInt(int(size.Width), MinWindowWidth, MaxWindowSide))
	s.app.Preferences().SetInt(KeyWindowHeight, clampInt(int(size.Height), MinWindowHeight, MaxWindowSide))
}

// GetUIScale returns the user scale factor applied on top of window scaling
func (s *Settings) GetUIScale() float64 {
	value := s.app.Preferences().Float(KeyUIScale)
	if value <= 0 {
		s.SetUIScale(DefaultUIScale)
		return DefaultUIScale
	}
	return value
}

// SetUIScale sets the user scale factor
func (s *Settings) SetUIScale(scale float64) {
	if scale < MinUIScale {
		scale = MinUIScale
	}
	if scale > MaxUIScale {
		scale = MaxUIScale
	}
	s.app.Preferences().SetFloat(KeyUIScale, scale)
}

// GetFontPath returns the custom font file, empty for the bundled font
func (s *Settings) GetFontPath() string {
	return s.app.Preferences().String(KeyFontPath)
}

// SetFontPath sets the custom font file
func (s *Settings) SetFontPath(path string) {
	s.app.Preferences().SetString(KeyFontPath, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetWatchData returns whether the data file is watched for changes
func (s *Settings) GetWatchData() bool {
	return s.app.Preferences().BoolWithFallback(KeyWatchData, DefaultWatchData)
}

// SetWatchData sets whether the data file is watched for changes
func (s *Settings) SetWatchData(watch bool) {
	s.app.Preferences().SetBool(KeyWatchData, watch)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"fil":    "Filipino",
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
