package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/bep/debounce"

	"github.com/ytget/ytgrab/internal/config"
	"github.com/ytget/ytgrab/internal/download"
	"github.com/ytget/ytgrab/internal/logging"
	"github.com/ytget/ytgrab/internal/model"
	"github.com/ytget/ytgrab/internal/platform"
)

// Options tunes RootUI timing and side effects
type Options struct {
	Logger        *slog.Logger
	ProbeDebounce time.Duration
	CancelGrace   time.Duration

	// Reveal shows a downloaded file in the system file manager
	Reveal func(path string) error
}

// RootUI represents the main window: URL entry, quality selector, progress and actions.
// All methods except Listen must run on the Fyne main thread.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	worker       download.Worker
	settings     *config.Settings
	localization *Localization
	log          *slog.Logger
	opts         Options

	urlEntry      *widget.Entry
	qualityLabel  *widget.Label
	qualitySelect *widget.Select
	downloadBtn   *widget.Button
	cancelBtn     *widget.Button
	progressBar   *widget.ProgressBar
	statusLabel   *widget.Label
	loading       dialog.Dialog
	loadingLabel  *widget.Label

	debounced func(func())

	probeJob    string
	downloadJob string
	quality     string // quality of the running download
	cancelling  bool

	// cancelledJob still gets its "cancelled" notice after the grace period reset the form
	cancelledJob string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, worker download.Worker, settings *config.Settings, opts Options) *RootUI {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.ProbeDebounce <= 0 {
		opts.ProbeDebounce = DefaultProbeDebounce
	}
	if opts.CancelGrace <= 0 {
		opts.CancelGrace = DefaultCancelGrace
	}
	if opts.Reveal == nil {
		opts.Reveal = platform.OpenFileInManager
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		worker:       worker,
		settings:     settings,
		localization: localization,
		log:          opts.Logger.With(slog.String("component", "ui")),
		opts:         opts,
		debounced:    debounce.New(opts.ProbeDebounce),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// Listen forwards worker events to the main thread until ctx is done
func (ui *RootUI) Listen(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-ui.worker.Events():
			fyne.Do(func() {
				ui.handleEvent(ev)
			})
		}
	}
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.OnChanged = ui.onURLChanged

	ui.qualityLabel = widget.NewLabel(ui.localization.GetText(KeyQuality))
	ui.qualitySelect = widget.NewSelect(nil, ui.onQualityChanged)
	ui.qualitySelect.PlaceHolder = ui.localization.GetText(KeySelectQuality)
	ui.qualitySelect.Disable()

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.downloadBtn.Disable()

	ui.cancelBtn = widget.NewButton(ui.localization.GetText(KeyCancel), ui.onCancelClick)
	ui.cancelBtn.Importance = widget.DangerImportance
	ui.cancelBtn.Hide()

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Hide()

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	ui.statusLabel.Hide()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	left := container.NewHBox(settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		img := canvas.NewImageFromResource(logo)
		img.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		img.FillMode = canvas.ImageFillContain
		left = container.NewHBox(img, settingsBtn)
	}

	urlRow := container.NewBorder(nil, nil, left, nil, ui.urlEntry)
	qualityRow := container.NewBorder(nil, nil, ui.qualityLabel,
		container.NewHBox(ui.downloadBtn, ui.cancelBtn),
		container.NewGridWrap(fyne.NewSize(QualitySelectWidth, ui.qualitySelect.MinSize().Height), ui.qualitySelect),
	)

	content := container.NewVBox(
		urlRow,
		qualityRow,
		ui.progressBar,
		ui.statusLabel,
	)
	ui.window.SetContent(container.NewPadded(content))

	ui.loadingLabel = widget.NewLabel(ui.localization.GetText(KeyFetchingFormats))
	ui.loadingLabel.Alignment = fyne.TextAlignCenter
	ui.loading = dialog.NewCustomWithoutButtons(
		ui.localization.GetText(KeyAppTitle),
		container.NewVBox(ui.loadingLabel, widget.NewProgressBarInfinite()),
		ui.window,
	)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	names := ui.localization.GetAvailableLanguages()
	for _, code := range ui.localization.languageCodes() {
		langCode := code
		item := fyne.NewMenuItem(names[code], func() {
			ui.onLanguageChange(langCode)
		})
		item.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.qualityLabel.SetText(ui.localization.GetText(KeyQuality))
	ui.qualitySelect.PlaceHolder = ui.localization.GetText(KeySelectQuality)
	ui.qualitySelect.Refresh()
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.cancelBtn.SetText(ui.localization.GetText(KeyCancel))
	ui.loadingLabel.SetText(ui.localization.GetText(KeyFetchingFormats))
}

// onURLChanged restarts the probe debounce, or clears the form for an empty URL
func (ui *RootUI) onURLChanged(text string) {
	if strings.TrimSpace(text) == "" {
		ui.debounced(func() {})
		ui.probeJob = ""
		ui.setQualities(nil)
		return
	}

	ui.debounced(func() {
		defer logging.Recover(ui.log)
		fyne.Do(func() {
			ui.startProbe(text)
		})
	})
}

// startProbe asks the worker for the qualities of url. Stale URLs are ignored.
func (ui *RootUI) startProbe(url string) {
	if ui.downloadJob != "" {
		return
	}
	url = strings.TrimSpace(url)
	if url == "" || url != strings.TrimSpace(ui.urlEntry.Text) {
		return
	}

	ui.setQualities(nil)

	id, err := ui.worker.Probe(url)
	if err != nil {
		ui.log.Debug("probe rejected", slog.String("url", url), slog.Any("error", err))
		ui.showStatus(ErrorMessage(ui.localization, err))
		return
	}

	ui.probeJob = id
	ui.hideStatus()
	ui.loading.Show()
}

func (ui *RootUI) onQualityChanged(selected string) {
	if selected != "" && ui.downloadJob == "" {
		ui.downloadBtn.Enable()
		return
	}
	ui.downloadBtn.Disable()
}

// setQualities replaces the selector options. The first option is preselected.
func (ui *RootUI) setQualities(qualities []string) {
	ui.qualitySelect.Options = qualities
	ui.qualitySelect.ClearSelected()

	if len(qualities) == 0 {
		ui.qualitySelect.Disable()
		ui.downloadBtn.Disable()
		ui.qualitySelect.Refresh()
		return
	}

	ui.qualitySelect.Enable()
	ui.qualitySelect.SetSelected(qualities[0])
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	url := strings.TrimSpace(ui.urlEntry.Text)
	quality := ui.qualitySelect.Selected
	if url == "" || quality == "" {
		ui.showError(errors.New(ui.localization.GetText(KeyMissingInput)))
		return
	}

	dir := ui.settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		ui.log.Error("cannot create download directory", slog.String("dir", dir), slog.Any("error", err))
		ui.showError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorCreatingDir), err))
		return
	}

	id, err := ui.worker.Download(model.NewRequest(url, dir, quality))
	if err != nil {
		ui.showError(errors.New(ErrorMessage(ui.localization, err)))
		return
	}

	ui.log.Info("download requested", slog.String("job", id), slog.String("quality", quality))
	ui.downloadJob = id
	ui.quality = quality
	ui.probeJob = ""
	ui.cancelling = false

	ui.urlEntry.Disable()
	ui.qualitySelect.Disable()
	ui.downloadBtn.Hide()
	ui.cancelBtn.Enable()
	ui.cancelBtn.Show()
	ui.progressBar.SetValue(0)
	ui.progressBar.Show()
	ui.showStatus(ui.localization.GetText(KeyPreparingDownload))
}

// onCancelClick asks the worker to stop and restores the form after a grace period
func (ui *RootUI) onCancelClick() {
	if ui.downloadJob == "" || ui.cancelling {
		return
	}

	ui.cancelling = true
	ui.cancelBtn.Disable()
	ui.showStatus(ui.localization.GetText(KeyCancelling))
	ui.worker.Cancel()

	job := ui.downloadJob
	ui.cancelledJob = job
	time.AfterFunc(ui.opts.CancelGrace, func() {
		defer logging.Recover(ui.log)
		fyne.Do(func() {
			if ui.downloadJob == job {
				ui.resetInterface()
			}
		})
	})
}

// resetInterface brings the form back to its idle layout
func (ui *RootUI) resetInterface() {
	ui.downloadJob = ""
	ui.quality = ""
	ui.cancelling = false

	ui.cancelBtn.Hide()
	ui.cancelBtn.Enable()
	ui.downloadBtn.Show()
	ui.progressBar.Hide()
	ui.hideStatus()
	ui.urlEntry.Enable()

	if len(ui.qualitySelect.Options) > 0 {
		ui.qualitySelect.Enable()
	}
	if strings.TrimSpace(ui.urlEntry.Text) != "" && ui.qualitySelect.Selected != "" {
		ui.downloadBtn.Enable()
	} else {
		ui.downloadBtn.Disable()
	}
}

// handleEvent applies one worker event to the widgets
func (ui *RootUI) handleEvent(ev model.Event) {
	switch ev.Type {
	case model.EventFormats:
		ui.onFormats(ev)
	case model.EventProgress:
		ui.onProgress(ev)
	case model.EventFinished:
		ui.onFinished(ev)
	case model.EventError:
		ui.onDownloadError(ev)
	}
}

func (ui *RootUI) onFormats(ev model.Event) {
	if ev.JobID != ui.probeJob {
		return
	}
	ui.probeJob = ""
	ui.loading.Hide()
	ui.setQualities(ev.Formats)

	if ev.Err != nil && !model.IsCancelled(ev.Err) {
		ui.showError(errors.New(ErrorMessage(ui.localization, ev.Err)))
	}
}

func (ui *RootUI) onProgress(ev model.Event) {
	if ev.JobID != ui.downloadJob || ui.cancelling {
		return
	}

	p := ev.Progress
	ui.progressBar.SetValue(p.Percent / 100)
	if p.Status == "starting" {
		ui.showStatus(fmt.Sprintf(ui.localization.GetText(KeyStartingDownload), ui.quality))
		return
	}
	ui.showStatus(ProgressStatus(ui.localization, p))
}

func (ui *RootUI) onFinished(ev model.Event) {
	if ev.JobID != ui.downloadJob {
		return
	}

	dir := ui.settings.GetDownloadDirectory()
	ui.progressBar.SetValue(1)
	ui.resetInterface()
	ui.urlEntry.SetText("")
	ui.probeJob = ""
	ui.setQualities(nil)

	ui.app.SendNotification(fyne.NewNotification(ui.localization.GetText(KeyDownloadCompleted), ev.Title))
	dialog.ShowInformation(ui.localization.GetText(KeySuccessTitle), CompletionMessage(ui.localization, ev.Title, dir), ui.window)

	if ui.settings.GetAutoRevealOnComplete() && ev.Filename != "" {
		ui.onRevealFile(ev.Filename)
	}
}

func (ui *RootUI) onDownloadError(ev model.Event) {
	switch ev.JobID {
	case ui.downloadJob:
		ui.resetInterface()
	case ui.cancelledJob:
	default:
		return
	}
	if ev.JobID == ui.cancelledJob {
		ui.cancelledJob = ""
	}

	if model.IsCancelled(ev.Err) {
		dialog.ShowInformation(ui.localization.GetText(KeyCancelTitle), ui.localization.GetText(KeyDownloadCancelled), ui.window)
		return
	}
	ui.showError(errors.New(ErrorMessage(ui.localization, ev.Err)))
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := ui.opts.Reveal(filePath); err != nil {
		ui.log.Warn("cannot reveal file", slog.String("path", filePath), slog.Any("error", err))
		ui.showError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err))
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	}).Show()
}

func (ui *RootUI) showStatus(text string) {
	ui.statusLabel.SetText(text)
	ui.statusLabel.Show()
}

func (ui *RootUI) hideStatus() {
	ui.statusLabel.SetText("")
	ui.statusLabel.Hide()
}

func (ui *RootUI) showError(err error) {
	dialog.ShowError(err, ui.window)
}
