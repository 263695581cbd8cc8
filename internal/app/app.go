// Package app wires configuration, logging, the yt-dlp extractor, the download
// worker and the window together.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/ytget/ytgrab/internal/config"
	"github.com/ytget/ytgrab/internal/download"
	"github.com/ytget/ytgrab/internal/logging"
	"github.com/ytget/ytgrab/internal/platform"
	"github.com/ytget/ytgrab/internal/ui"
)

const (
	AppID   = "com.ytget.ytgrab"
	AppName = "ytgrab"
)

// Main runs the application and returns the process exit code
func Main(version string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.LoadEnv()
	if err != nil {
		slog.Error("config load", slog.Any("error", err))
		return 1
	}

	log, closer := newLogger(cfg)
	defer closer.Close()
	defer logging.Recover(log)

	if err := Run(ctx, version, log, cfg); err != nil {
		log.Error("ytgrab failed", slog.Any("error", err))
		return 1
	}
	return 0
}

// Run opens the main window and blocks until it is closed or ctx is done
func Run(ctx context.Context, version string, log *slog.Logger, cfg *config.Env) error {
	log.InfoContext(ctx, "ytgrab starting", slog.String("version", version))

	a := fyneapp.NewWithID(AppID)
	w, svc, root, err := setup(a, log, cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logging.Go(log, func() { root.Listen(ctx) })
	logging.Go(log, func() {
		<-ctx.Done()
		fyne.Do(a.Quit)
	})

	w.ShowAndRun()
	log.Info("ytgrab stopped")
	return nil
}

// setup builds everything behind the window without showing it
func setup(a fyne.App, log *slog.Logger, cfg *config.Env) (fyne.Window, *download.Service, *ui.RootUI, error) {
	a.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		a.SetIcon(icon)
	}

	settings := config.NewSettings(a)
	if cfg.DownloadDir != "" {
		settings.SetDownloadDirectory(cfg.DownloadDir)
	}
	dir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return nil, nil, nil, fmt.Errorf("prepare download directory %s: %w", dir, err)
	}
	log.Info("download directory", slog.String("dir", dir))

	extractor := platform.NewYTDLP(platform.YTDLPOptions{
		Executable:    cfg.YTDLPPath,
		AutoInstall:   cfg.AutoInstall,
		SocketTimeout: cfg.SocketTimeout,
		Logger:        log,
	})
	svc := download.NewService(extractor, download.Options{Logger: log})

	w := a.NewWindow(AppName)
	w.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	root := ui.NewRootUI(w, a, svc, settings, ui.Options{
		Logger:        log,
		ProbeDebounce: cfg.ProbeDebounce,
		CancelGrace:   cfg.CancelGrace,
	})

	return w, svc, root, nil
}

// newLogger builds the application logger. When the log directory is unusable
// it falls back to stdout only.
func newLogger(cfg *config.Env) (*slog.Logger, io.Closer) {
	opts := &logging.Options{
		Level:      cfg.LogLevel,
		Dir:        cfg.LogDir,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		AddSource:  true,
	}

	log, closer, err := logging.New(opts)
	if log == nil {
		slog.Warn("log file unavailable, logging to stdout only", slog.Any("error", err))
		opts.Dir = ""
		log, closer, err = logging.New(opts)
	}
	if err != nil {
		log.Warn("logger level invalid; defaulting to info", slog.Any("error", err))
	}
	return log, closer
}
