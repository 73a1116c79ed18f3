package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/halalan-ph/candidate-overview/internal/config"
)

// Settings dialog size
const (
	SettingsDialogWidth  = 520
	SettingsDialogHeight = 380
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	dataPathEntry  *widget.Entry
	fontPathEntry  *widget.Entry
	scaleEntry     *widget.Entry
	languageSelect *widget.Select
	watchCheck     *widget.Check

	languageCodes map[string]string // display label -> code
}

// ShowSettingsDialog creates the settings dialog and shows it. onSaved runs
// after the values were written back to settings.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.dataPathEntry = widget.NewEntry()
	sd.dataPathEntry.SetPlaceHolder("candidates.yaml")
	browseDataBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDataFile)
	dataPathRow := container.NewBorder(nil, nil, nil, browseDataBtn, sd.dataPathEntry)

	sd.fontPathEntry = widget.NewEntry()
	sd.fontPathEntry.SetPlaceHolder(".ttf / .otf")
	browseFontBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseFontFile)
	fontPathRow := container.NewBorder(nil, nil, nil, browseFontBtn, sd.fontPathEntry)

	sd.scaleEntry = widget.NewEntry()
	sd.scaleEntry.SetPlaceHolder(strconv.FormatFloat(config.MinUIScale, 'f', 1, 64) + " - " +
		strconv.FormatFloat(config.MaxUIScale, 'f', 1, 64))
	sd.scaleEntry.Validator = validateScale

	// Language options are shown by name, stored by code
	sd.languageCodes = make(map[string]string)
	labels := make([]string, 0)
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		labels = append(labels, label)
	}
	sort.Strings(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	sd.watchCheck = widget.NewCheck(text(KeyWatchData), nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyDataFile)+":"),
		dataPathRow,
		sd.watchCheck,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyFontFile)+":"),
		fontPathRow,
		widget.NewLabel(text(KeyUIScale)+":"),
		sd.scaleEntry,
		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.dataPathEntry.SetText(sd.settings.GetDataPath())
	sd.fontPathEntry.SetText(sd.settings.GetFontPath())
	sd.scaleEntry.SetText(strconv.FormatFloat(sd.settings.GetUIScale(), 'f', 2, 64))
	sd.watchCheck.SetChecked(sd.settings.GetWatchData())

	current := sd.settings.GetLanguage()
	for label, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(label)
			break
		}
	}
}

// onBrowseDataFile picks the candidate data file
func (sd *SettingsDialog) onBrowseDataFile() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.dataPathEntry.SetText(reader.URI().Path())
	}, sd.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".yaml", ".yml", ".json", ".sqlite", ".sqlite3", ".db"}))
	fd.Show()
}

// onBrowseFontFile picks a font file
func (sd *SettingsDialog) onBrowseFontFile() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.fontPathEntry.SetText(reader.URI().Path())
	}, sd.window)
	fd.SetFilter(storage.NewExtensionFileFilter(fontExtensions))
	fd.Show()
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the form values back to settings
func (sd *SettingsDialog) apply() {
	if dataPath := strings.TrimSpace(sd.dataPathEntry.Text); dataPath != "" {
		sd.settings.SetDataPath(dataPath)
	}

	fontPath := strings.TrimSpace(sd.fontPathEntry.Text)
	if fontPath != sd.settings.GetFontPath() {
		sd.settings.SetFontPath(fontPath)
		dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeyRestartRequired), sd.window)
	}

	if scale, err := strconv.ParseFloat(strings.TrimSpace(sd.scaleEntry.Text), 64); err == nil {
		sd.settings.SetUIScale(scale)
	}

	sd.settings.SetWatchData(sd.watchCheck.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}

// validateScale accepts empty input or a number
func validateScale(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	_, err := strconv.ParseFloat(input, 64)
	return err
}
