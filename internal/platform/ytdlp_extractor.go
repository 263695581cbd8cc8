package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/ytgrab/internal/model"
)

// yt-dlp invocation constants
const (
	DefaultSocketTimeout    = 15 * time.Second
	DefaultProgressInterval = 250 * time.Millisecond

	// MergeContainer is the single container every download ends up in
	MergeContainer = "mp4"

	// PrintAfterMove makes yt-dlp print the final path once post-processing is done.
	// parseFetchOutput relies on it.
	PrintAfterMove = "after_move:filepath"
)

// YTDLPOptions configures the extractor
type YTDLPOptions struct {
	Executable       string // explicit yt-dlp path; empty resolves one
	AutoInstall      bool   // download yt-dlp when no usable binary is found
	SocketTimeout    time.Duration
	ProgressInterval time.Duration
	Logger           *slog.Logger
}

// YTDLP drives the yt-dlp binary through go-ytdlp
type YTDLP struct {
	opts YTDLPOptions
	log  *slog.Logger

	installMu sync.Mutex
	installed bool
}

// NewYTDLP creates a new extractor
func NewYTDLP(opts YTDLPOptions) *YTDLP {
	if opts.SocketTimeout <= 0 {
		opts.SocketTimeout = DefaultSocketTimeout
	}
	if opts.ProgressInterval <= 0 {
		opts.ProgressInterval = DefaultProgressInterval
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	return &YTDLP{
		opts: opts,
		log:  log.With(slog.String("component", "ytdlp")),
	}
}

// Probe fetches metadata only and returns the available streams
func (y *YTDLP) Probe(ctx context.Context, url string) (*model.MediaInfo, error) {
	if err := y.ensureInstalled(ctx); err != nil {
		return nil, err
	}

	res, err := y.command().DumpJSON().Run(ctx, url)
	if err != nil {
		return nil, runError(res, err)
	}

	info, err := parseDumpJSON(res.Stdout)
	if err != nil {
		return nil, err
	}

	y.log.DebugContext(ctx, "probe parsed",
		slog.String("id", info.ID),
		slog.String("title", info.Title),
		slog.Int("formats", len(info.Formats)),
	)
	return info, nil
}

// Fetch downloads spec.URL, calling onProgress for every progress line yt-dlp emits.
// Cancelling ctx kills the yt-dlp process.
func (y *YTDLP) Fetch(ctx context.Context, spec model.FetchSpec, onProgress func(model.TransferUpdate)) (*model.FetchResult, error) {
	if err := y.ensureInstalled(ctx); err != nil {
		return nil, err
	}

	cmd := y.command().
		Format(spec.Format).
		Output(spec.OutputTemplate).
		MergeOutputFormat(MergeContainer).
		RecodeVideo(MergeContainer).
		PrintJSON().
		Print(PrintAfterMove).
		ProgressFunc(y.opts.ProgressInterval, func(update ytdlp.ProgressUpdate) {
			if onProgress == nil {
				return
			}
			onProgress(toTransferUpdate(&update))
		})

	res, err := cmd.Run(ctx, spec.URL)
	if err != nil {
		return nil, runError(res, err)
	}

	result := parseFetchOutput(res.Stdout)
	if result.Filename == "" {
		y.log.WarnContext(ctx, "yt-dlp did not report a final path", slog.String("url", spec.URL))
	}
	return result, nil
}

// command returns a builder with options shared by probes and downloads
func (y *YTDLP) command() *ytdlp.Command {
	cmd := ytdlp.New().
		NoPlaylist().
		NoWarnings().
		SocketTimeout(y.opts.SocketTimeout.Seconds())

	if y.opts.Executable != "" {
		cmd = cmd.SetExecutable(y.opts.Executable)
	}
	return cmd
}

// ensureInstalled resolves (and if allowed downloads) the yt-dlp binary once
func (y *YTDLP) ensureInstalled(ctx context.Context) error {
	if y.opts.Executable != "" || !y.opts.AutoInstall {
		return nil
	}

	y.installMu.Lock()
	defer y.installMu.Unlock()

	if y.installed {
		return nil
	}

	resolved, err := ytdlp.Install(ctx, nil)
	if err != nil {
		return fmt.Errorf("install yt-dlp: %w", err)
	}

	y.log.InfoContext(ctx, "yt-dlp resolved", slog.String("executable", resolved.Executable))
	y.installed = true
	return nil
}

func toTransferUpdate(u *ytdlp.ProgressUpdate) model.TransferUpdate {
	update := model.TransferUpdate{
		Status:     string(u.Status),
		Downloaded: int64(u.DownloadedBytes),
		Total:      int64(u.TotalBytes),
		Started:    u.Started,
		Filename:   u.Filename,
	}
	if u.Info != nil && u.Info.Title != nil {
		update.Title = *u.Info.Title
	}
	return update
}

// runError keeps yt-dlp's own ERROR line in the message so the UI can recognise
// private, unavailable or age-restricted videos.
func runError(res *ytdlp.Result, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if res == nil {
		return err
	}
	if line := lastErrorLine(res.Stderr); line != "" {
		return fmt.Errorf("%s: %w", line, err)
	}
	return err
}

// lastErrorLine returns the last "ERROR:" line of yt-dlp's stderr without the prefix
func lastErrorLine(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if rest, ok := strings.CutPrefix(line, "ERROR:"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}
