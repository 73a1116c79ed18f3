package ui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/halalan-ph/candidate-overview/internal/avatar"
	"github.com/halalan-ph/candidate-overview/internal/config"
	"github.com/halalan-ph/candidate-overview/internal/model"
	"github.com/halalan-ph/candidate-overview/internal/platform"
	"github.com/halalan-ph/candidate-overview/internal/source"
	"github.com/halalan-ph/candidate-overview/internal/viewmodel"
)

// Load timeout for a single reload of the candidate source
const (
	RootLoadTimeout = 10 * time.Second
)

// OverviewUI is the main window content: navigation on the left, the
// scrollable position sections in the centre and a status line below.
type OverviewUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	theme        *OverviewTheme
	logger       *zap.Logger

	src      source.Source
	vm       *viewmodel.ViewModel
	resolver *avatar.Resolver

	// View state, owned here and pushed down to the widgets
	state    model.ViewState
	scale    float32
	overview viewmodel.Overview

	nav         *NavBar
	sections    []*PositionSection
	sectionBox  *fyne.Container
	scroll      *container.Scroll
	summary     *widget.Label
	empty       *widget.Label
	statusLabel *widget.Label
	statusTimer *time.Timer

	dataPath string
	srcGen   int // bumped when the source is replaced
	watchCtx context.Context
	watcher  *source.Watcher
	resizeMu sync.Mutex
	resizeAt *time.Timer
}

// NewOverviewUI creates and initializes the overview window content.
// theme and logger may be nil.
func NewOverviewUI(
	window fyne.Window,
	settings *config.Settings,
	src source.Source,
	vm *viewmodel.ViewModel,
	resolver *avatar.Resolver,
	th *OverviewTheme,
	logger *zap.Logger,
) *OverviewUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &OverviewUI{
		window:       window,
		settings:     settings,
		localization: localization,
		theme:        th,
		logger:       logger,
		src:          src,
		vm:           vm,
		resolver:     resolver,
		scale:        ScaleForWindow(settings.GetWindowSize().Width, settings.GetUIScale()),
		overview:     vm.Current(),
		dataPath:     settings.GetDataPath(),
		watchCtx:     context.Background(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *OverviewUI) setupUI() {
	ui.createMenu()

	ui.nav = NewNavBar(ui.localization.GetText(KeyPositions))
	ui.nav.SetOnSelect(ui.onPositionSelected)

	ui.summary = widget.NewLabel("")
	ui.summary.TextStyle = fyne.TextStyle{Bold: true}

	ui.empty = widget.NewLabel(ui.localization.GetText(KeyNoCandidates))
	ui.empty.Alignment = fyne.TextAlignCenter
	ui.empty.Hide()

	ui.sectionBox = container.NewVBox()
	ui.scroll = container.NewVScroll(container.NewPadded(ui.sectionBox))

	reloadBtn := widget.NewButton(IconReload, func() { ui.reloadInBackground() })
	reloadBtn.Importance = widget.LowImportance
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	header := container.NewBorder(nil, nil, nil, container.NewHBox(reloadBtn, settingsBtn), ui.summary)

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	center := container.NewBorder(header, nil, nil, nil, container.NewStack(ui.scroll, container.NewCenter(ui.empty)))
	content := container.NewBorder(nil, ui.statusLabel, ui.nav.Container(), nil, center)

	ui.window.SetContent(container.New(&resizeLayout{onResize: ui.onResize}, content))
	ui.render(ui.overview)
}

// createMenu creates the application menu
func (ui *OverviewUI) createMenu() {
	reloadItem := fyne.NewMenuItem(ui.localization.GetText(KeyReload), func() { ui.reloadInBackground() })
	showDataItem := fyne.NewMenuItem(ui.localization.GetText(KeyShowDataFile), ui.onShowDataFile)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), reloadItem, showDataItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	))
}

// Reload reads the source again and re-renders. Must be called on the UI
// goroutine; use the watcher or reloadInBackground from elsewhere.
func (ui *OverviewUI) Reload(ctx context.Context) error {
	candidates, err := ui.load(ctx, ui.src)
	if err != nil {
		ui.showStatus(fmt.Sprintf("%s: %v", ui.localization.GetText(KeyLoadFailed), err))
		return err
	}
	ui.apply(candidates)
	ui.showStatus(ui.localization.GetText(KeyReloaded))
	return nil
}

// reloadInBackground loads off the UI goroutine and applies the result on it
func (ui *OverviewUI) reloadInBackground() {
	src, gen := ui.src, ui.srcGen
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), RootLoadTimeout)
		defer cancel()

		candidates, err := ui.load(ctx, src)
		fyne.Do(func() {
			if gen != ui.srcGen {
				return
			}
			if err != nil {
				ui.showStatus(fmt.Sprintf("%s: %v", ui.localization.GetText(KeyLoadFailed), err))
				return
			}
			ui.apply(candidates)
			ui.showStatus(ui.localization.GetText(KeyReloaded))
		})
	}()
}

func (ui *OverviewUI) load(ctx context.Context, src source.Source) ([]model.Candidate, error) {
	candidates, err := src.Load(ctx)
	if err != nil {
		ui.logger.Error("Failed to load candidates", zap.String("source", src.Path()), zap.Error(err))
		return nil, err
	}
	ui.logger.Info("Loaded candidates", zap.String("source", src.Path()), zap.Int("count", len(candidates)))
	return candidates, nil
}

// apply swaps in a new snapshot; cached avatars are dropped since photos
// may have changed on disk together with the data.
func (ui *OverviewUI) apply(candidates []model.Candidate) {
	overview := ui.vm.Reload(candidates)
	ui.resolver.Invalidate()
	ui.render(overview)
}

// render rebuilds sections and navigation from one snapshot so both always
// list the same positions in the same order.
func (ui *OverviewUI) render(overview viewmodel.Overview) {
	ui.overview = overview

	if _, ok := overview.Group(ui.state.SelectedPosition); !ok {
		ui.state = ui.state.WithPosition("")
	}
	ui.state = ui.state.WithHovered("")

	ui.sections = make([]*PositionSection, 0, len(overview.Groups))
	objects := make([]fyne.CanvasObject, 0, len(overview.Groups))
	for _, group := range overview.Groups {
		section := NewPositionSection(group, ui.resolver, ui.scale)
		section.SetCallbacks(ui.onCardHover, ui.onCardTap)
		section.SetState(ui.state)
		ui.sections = append(ui.sections, section)
		objects = append(objects, section.Container())
	}
	ui.sectionBox.Objects = objects
	ui.sectionBox.Refresh()

	ui.nav.SetPositions(overview.Positions)
	if ui.state.SelectedPosition != "" {
		ui.nav.SetSelected(ui.state.SelectedPosition)
	}

	ui.summary.SetText(fmt.Sprintf(ui.localization.GetText(KeyCandidateCount), overview.Total))
	if overview.IsEmpty() {
		ui.empty.Show()
	} else {
		ui.empty.Hide()
	}
}

// ScrollToPosition scrolls the content so the section for position is at
// the top. An unknown position leaves the view untouched and returns false.
func (ui *OverviewUI) ScrollToPosition(position string) bool {
	section := ui.section(position)
	if section == nil {
		return false
	}

	// Relative to the padded box, so the padding stays above the heading
	y := section.Container().Position().Y
	maxY := ui.scroll.Content.MinSize().Height - ui.scroll.Size().Height
	if y > maxY {
		y = maxY
	}
	if y < 0 {
		y = 0
	}
	ui.scroll.Offset = fyne.NewPos(0, y)
	ui.scroll.Refresh()
	return true
}

// Sections returns the rendered sections in display order
func (ui *OverviewUI) Sections() []*PositionSection {
	return ui.sections
}

// Nav returns the navigation bar
func (ui *OverviewUI) Nav() *NavBar {
	return ui.nav
}

// State returns the current view state
func (ui *OverviewUI) State() model.ViewState {
	return ui.state
}

// Overview returns the snapshot currently on screen
func (ui *OverviewUI) Overview() viewmodel.Overview {
	return ui.overview
}

func (ui *OverviewUI) section(position string) *PositionSection {
	for _, s := range ui.sections {
		if s.Position() == position {
			return s
		}
	}
	return nil
}

func (ui *OverviewUI) onPositionSelected(position string) {
	ui.setState(ui.state.WithPosition(position))
	if !ui.ScrollToPosition(position) {
		ui.logger.Debug("Ignoring navigation to unknown position", zap.String("position", position))
	}
}

func (ui *OverviewUI) onCardHover(id string, inside bool) {
	switch {
	case inside:
		ui.setState(ui.state.WithHovered(id))
	case ui.state.HoveredID == id:
		ui.setState(ui.state.WithHovered(""))
	}
}

func (ui *OverviewUI) onCardTap(id string, candidate model.Candidate) {
	ui.setState(ui.state.WithSelected(id))
	ui.showStatus(candidate.DisplayName() + MiddleDotSeparator + candidate.DisplayParty())
}

func (ui *OverviewUI) setState(state model.ViewState) {
	if state == ui.state {
		return
	}
	ui.state = state
	for _, s := range ui.sections {
		s.SetState(state)
	}
}

// onResize rescales the sections after the window width settles
func (ui *OverviewUI) onResize(size fyne.Size) {
	ui.resizeMu.Lock()
	defer ui.resizeMu.Unlock()

	if ui.resizeAt != nil {
		ui.resizeAt.Stop()
	}
	ui.resizeAt = time.AfterFunc(ResizeDebounce, func() {
		fyne.Do(func() { ui.SetScale(ScaleForWindow(size.Width, ui.settings.GetUIScale())) })
	})
}

// SetScale applies a new size factor to every section
func (ui *OverviewUI) SetScale(scale float32) {
	if scale == ui.scale {
		return
	}
	ui.scale = scale
	for _, s := range ui.sections {
		s.SetScale(scale)
	}
	ui.sectionBox.Refresh()
}

// Scale returns the current size factor of the sections
func (ui *OverviewUI) Scale() float32 {
	return ui.scale
}

// StartWatching reloads automatically when the data file changes. It is a
// no-op when disabled in settings or when the source has no backing file.
func (ui *OverviewUI) StartWatching(ctx context.Context) error {
	ui.watchCtx = ctx
	if !ui.settings.GetWatchData() || ui.src.Path() == "" || ui.watcher != nil {
		return nil
	}

	w, err := source.NewWatcher(ui.src.Path(), func() { fyne.Do(ui.reloadInBackground) }, ui.logger)
	if err != nil {
		return fmt.Errorf("failed to watch data file: %w", err)
	}
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("failed to watch data file: %w", err)
	}
	ui.watcher = w
	return nil
}

func (ui *OverviewUI) stopWatching() {
	if ui.watcher != nil {
		ui.watcher.Stop()
		ui.watcher = nil
	}
}

// applyDataSettings switches to the data file and watch flag currently in
// settings. It reports whether the source was replaced and needs a reload.
func (ui *OverviewUI) applyDataSettings() (bool, error) {
	path := ui.settings.GetDataPath()
	changed := path != ui.dataPath
	if changed {
		src, err := source.Open(path)
		if err != nil {
			return false, err
		}
		ui.logger.Info("Switching candidate source", zap.String("from", ui.dataPath), zap.String("to", path))
		ui.src = src
		ui.srcGen++
		ui.dataPath = path
		ui.stopWatching()
	}

	if !ui.settings.GetWatchData() {
		ui.stopWatching()
		return changed, nil
	}
	return changed, ui.StartWatching(ui.watchCtx)
}

// Close stops background work and remembers the window size
func (ui *OverviewUI) Close() {
	ui.stopWatching()
	ui.resizeMu.Lock()
	if ui.resizeAt != nil {
		ui.resizeAt.Stop()
	}
	ui.resizeMu.Unlock()
	if ui.statusTimer != nil {
		ui.statusTimer.Stop()
	}
	if c := ui.window.Canvas(); c != nil {
		ui.settings.SetWindowSize(c.Size())
	}
}

// showStatus displays a message in the status line and hides it later
func (ui *OverviewUI) showStatus(message string) {
	ui.statusLabel.SetText(message)
	if ui.statusTimer != nil {
		ui.statusTimer.Stop()
	}
	ui.statusTimer = time.AfterFunc(StatusAutoHide, func() {
		fyne.Do(func() {
			if ui.statusLabel.Text == message {
				ui.statusLabel.SetText("")
			}
		})
	})
}

// StatusText returns the message in the status line
func (ui *OverviewUI) StatusText() string {
	return ui.statusLabel.Text
}

func (ui *OverviewUI) onShowDataFile() {
	path := ui.src.Path()
	if path == "" {
		return
	}
	if err := platform.RevealInFileManager(path); err != nil {
		ui.logger.Warn("Failed to reveal data file", zap.String("path", path), zap.Error(err))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *OverviewUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.onSettingsSaved()
	})
}

func (ui *OverviewUI) onSettingsSaved() {
	if ui.theme != nil {
		ui.theme.SetScale(float32(ui.settings.GetUIScale()))
		fyne.CurrentApp().Settings().SetTheme(ui.theme)
	}
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.SetScale(ScaleForWindow(ui.window.Canvas().Size().Width, ui.settings.GetUIScale()))
	ui.showStatus(ui.localization.GetText(KeySettingsSaved))

	changed, err := ui.applyDataSettings()
	if err != nil {
		ui.logger.Warn("Failed to apply data settings", zap.Error(err))
		ui.showStatus(fmt.Sprintf("%s: %v", ui.localization.GetText(KeyLoadFailed), err))
		return
	}
	if changed {
		ui.reloadInBackground()
	}
}

// onLanguageChange handles language change
func (ui *OverviewUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts updates all UI texts with current language
func (ui *OverviewUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.nav.SetTitle(ui.localization.GetText(KeyPositions))
	ui.empty.SetText(ui.localization.GetText(KeyNoCandidates))
	ui.summary.SetText(fmt.Sprintf(ui.localization.GetText(KeyCandidateCount), ui.overview.Total))
	ui.createMenu()
}

// resizeLayout stacks its objects and reports size changes
type resizeLayout struct {
	last     fyne.Size
	onResize func(fyne.Size)
}

func (l *resizeLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Resize(size)
		o.Move(fyne.NewPos(0, 0))
	}
	if size != l.last {
		l.last = size
		if l.onResize != nil {
			l.onResize(size)
		}
	}
}

func (l *resizeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, 0)
	for _, o := range objects {
		minSize = minSize.Max(o.MinSize())
	}
	return minSize
}
