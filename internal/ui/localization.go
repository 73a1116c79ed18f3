package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyPositions        = "positions"
	KeyAllCandidates    = "all_candidates"
	KeyCandidateCount   = "candidate_count"
	KeyNoCandidates     = "no_candidates"
	KeyReload           = "reload"
	KeyReloaded         = "reloaded"
	KeyLoadFailed       = "load_failed"
	KeySettings         = "settings"
	KeySettingsSaved    = "settings_saved"
	KeyFile             = "file"
	KeyView             = "view"
	KeyLanguage         = "language"
	KeyDataFile         = "data_file"
	KeyShowDataFile     = "show_data_file"
	KeyFontFile         = "font_file"
	KeyUIScale          = "ui_scale"
	KeyWatchData        = "watch_data"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeyErrorOpeningFile = "error_opening_file"
	KeyRestartRequired  = "restart_required"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// System locale detection is not wired yet; use English
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en":  "English",
		"fil": "Filipino",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Candidate Overview",
		KeyPositions:        "Positions",
		KeyAllCandidates:    "All candidates",
		KeyCandidateCount:   "%d candidates",
		KeyNoCandidates:     "No candidates to show",
		KeyReload:           "Reload",
		KeyReloaded:         "Candidate list reloaded",
		KeyLoadFailed:       "Could not load candidates",
		KeySettings:         "Settings",
		KeySettingsSaved:    "Settings saved",
		KeyFile:             "File",
		KeyView:             "View",
		KeyLanguage:         "Language",
		KeyDataFile:         "Candidate data file",
		KeyShowDataFile:     "Show data file",
		KeyFontFile:         "Font file",
		KeyUIScale:          "Interface scale",
		KeyWatchData:        "Reload when the data file changes",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeyErrorOpeningFile: "Error opening file",
		KeyRestartRequired:  "Font changes apply after restart",
	}

	l.texts["fil"] = map[string]string{
		KeyAppTitle:         "Mga Kandidato",
		KeyPositions:        "Mga Posisyon",
		KeyAllCandidates:    "Lahat ng kandidato",
		KeyCandidateCount:   "%d kandidato",
		KeyNoCandidates:     "Walang kandidatong maipapakita",
		KeyReload:           "I-reload",
		KeyReloaded:         "Na-reload ang listahan ng kandidato",
		KeyLoadFailed:       "Hindi ma-load ang mga kandidato",
		KeySettings:         "Mga Setting",
		KeySettingsSaved:    "Na-save ang mga setting",
		KeyFile:             "File",
		KeyView:             "Tingnan",
		KeyLanguage:         "Wika",
		KeyDataFile:         "File ng datos ng kandidato",
		KeyShowDataFile:     "Ipakita ang file ng datos",
		KeyFontFile:         "File ng font",
		KeyUIScale:          "Laki ng interface",
		KeyWatchData:        "Mag-reload kapag nagbago ang file",
		KeySave:             "I-save",
		KeyCancel:           "Kanselahin",
		KeyBrowse:           "Maghanap",
		KeyErrorOpeningFile: "May error sa pagbukas ng file",
		KeyRestartRequired:  "Magkakabisa ang font pagkatapos mag-restart",
	}
}
