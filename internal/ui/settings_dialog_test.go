package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/halalan-ph/candidate-overview/internal/config"
)

func TestSettingsDialog_Apply(t *testing.T) {
	a := test.NewApp()
	w := a.NewWindow("")
	defer w.Close()

	settings := config.NewSettings(a)
	settings.SetDataPath("/tmp/old.yaml")

	sd := NewSettingsDialog(settings, NewLocalization(), w)
	sd.loadCurrentSettings()
	assert.Equal(t, "/tmp/old.yaml", sd.dataPathEntry.Text)

	sd.dataPathEntry.SetText("  /tmp/new.json ")
	sd.scaleEntry.SetText("1.5")
	sd.watchCheck.SetChecked(false)
	sd.languageSelect.SetSelected("Filipino")
	sd.apply()

	assert.Equal(t, "/tmp/new.json", settings.GetDataPath())
	assert.Equal(t, 1.5, settings.GetUIScale())
	assert.False(t, settings.GetWatchData())
	assert.Equal(t, "fil", settings.GetLanguage())
}

func TestSettingsDialog_InvalidScaleIgnored(t *testing.T) {
	a := test.NewApp()
	w := a.NewWindow("")
	defer w.Close()

	settings := config.NewSettings(a)
	settings.SetUIScale(1.25)

	sd := NewSettingsDialog(settings, NewLocalization(), w)
	sd.loadCurrentSettings()
	sd.scaleEntry.SetText("big")
	sd.apply()

	assert.Equal(t, 1.25, settings.GetUIScale())
}

func TestValidateScale(t *testing.T) {
	assert.NoError(t, validateScale(""))
	assert.NoError(t, validateScale("1.2"))
	assert.Error(t, validateScale("x"))
}
