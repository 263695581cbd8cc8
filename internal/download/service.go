package download

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/ytget/ytgrab/internal/model"
	"github.com/ytget/ytgrab/internal/platform"
)

// DefaultEventBuffer is the capacity of the events channel
const DefaultEventBuffer = 64

// ErrClosed is returned when a job is submitted after Close
var ErrClosed = errors.New("download service is closed")

// Options configures a Service
type Options struct {
	Logger      *slog.Logger
	EventBuffer int
	Now         func() time.Time

	// FindFile resolves the file yt-dlp reported to the one left on disk
	FindFile func(name string) (string, error)
}

// Service handles probe and download operations, one job at a time
type Service struct {
	extractor Extractor
	log       *slog.Logger
	now       func() time.Time
	findFile  func(name string) (string, error)

	events    chan model.Event
	quit      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	mu      sync.Mutex
	current *job
	state   model.State
	closed  bool
}

// job is one probe or download. cancelled is checked by the progress hook,
// cancel stops the extractor.
type job struct {
	id        string
	ctx       context.Context
	cancel    context.CancelFunc
	cancelled atomic.Bool
	done      chan struct{}
}

func (j *job) abort() {
	j.cancelled.Store(true)
	j.cancel()
}

// NewService creates a new download service
func NewService(extractor Extractor, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	buffer := opts.EventBuffer
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	findFile := opts.FindFile
	if findFile == nil {
		findFile = platform.FindDownloadedFile
	}

	return &Service{
		extractor: extractor,
		log:       log.With(slog.String("component", "download")),
		now:       now,
		findFile:  findFile,
		events:    make(chan model.Event, buffer),
		quit:      make(chan struct{}),
		state:     model.StateIdle,
	}
}

// Events returns the channel the service posts to. It is never closed.
func (s *Service) Events() <-chan model.Event {
	return s.events
}

// State returns the current state of the service
func (s *Service) State() model.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Probe starts a metadata-only query for rawURL and returns the job ID.
// The result arrives as an EventFormats event.
func (s *Service) Probe(rawURL string) (string, error) {
	url := platform.CleanURL(rawURL)
	if err := platform.ValidateURL(url); err != nil {
		return "", err
	}

	return s.start(uuid.NewString(), model.StateProbing, func(j *job) model.Event {
		return s.probe(j, url)
	})
}

// Download starts fetching req.URL at req.Quality into req.Destination and
// returns the job ID, which is req.ID when set.
func (s *Service) Download(req model.Request) (string, error) {
	url := platform.CleanURL(req.URL)
	if err := platform.ValidateURL(url); err != nil {
		return "", err
	}
	if strings.TrimSpace(req.Destination) == "" {
		return "", fmt.Errorf("%w: destination directory is empty", model.ErrValidation)
	}
	selector, err := FormatSelectorFor(req.Quality)
	if err != nil {
		return "", err
	}

	spec := model.FetchSpec{
		URL:            url,
		Format:         selector,
		OutputTemplate: OutputTemplate(req.Destination),
	}
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	if !req.CreatedAt.IsZero() {
		s.log.Debug("download requested", slog.String("job", id), slog.Duration("queued", s.now().Sub(req.CreatedAt)))
	}
	return s.start(id, model.StateDownloading, func(j *job) model.Event {
		return s.download(j, spec)
	})
}

// Cancel aborts the current job. It returns false when nothing is running.
func (s *Service) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return false
	}
	s.log.Info("cancel requested", slog.String("job", s.current.id))
	s.current.abort()
	return true
}

// Close aborts the current job and waits for all job goroutines to exit.
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)

		s.mu.Lock()
		s.closed = true
		if s.current != nil {
			s.current.abort()
		}
		s.mu.Unlock()
	})
	s.wg.Wait()
}

// start supersedes the current job with a new one running fn
func (s *Service) start(id string, state model.State, fn func(j *job) model.Event) (string, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return "", ErrClosed
	}

	prev := s.current
	if prev != nil {
		s.log.Debug("superseding job", slog.String("job", prev.id))
		prev.abort()
	}

	ctx, cancel := context.WithCancel(context.Background())
	j := &job{
		id:     id,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.current = j
	s.state = state
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer close(j.done)
		defer cancel()

		// the extractor handles one job at a time
		if prev != nil {
			<-prev.done
		}

		ev := s.runSafely(j, state, fn)
		s.emit(j, ev)
	}()

	return j.id, nil
}

// runSafely turns a panic inside the extractor into an error event
func (s *Service) runSafely(j *job, state model.State, fn func(j *job) model.Event) (ev model.Event) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s.log.Error("job panicked", slog.String("job", j.id), slog.Any("panic", r))

		if state == model.StateProbing {
			ev = probeFailed(j, fmt.Errorf("%w: panic: %v", model.ErrProbe, r))
			return
		}
		ev = model.Event{
			JobID: j.id,
			Type:  model.EventError,
			State: model.StateDownloadError,
			Err:   fmt.Errorf("%w: panic: %v", model.ErrDownload, r),
		}
	}()
	return fn(j)
}

func (s *Service) probe(j *job, url string) model.Event {
	log := s.log.With(slog.String("job", j.id))
	log.Info("probing", slog.String("url", url))

	info, err := s.extractor.Probe(j.ctx, url)
	if j.cancelled.Load() {
		log.Info("probe cancelled")
		return probeFailed(j, fmt.Errorf("%w: %w", model.ErrProbe, model.ErrCancelled))
	}
	if err != nil {
		log.Warn("probe failed", slog.Any("error", err))
		return probeFailed(j, fmt.Errorf("%w: %w", model.ErrProbe, err))
	}

	if info == nil {
		info = &model.MediaInfo{}
	}
	opts := SelectQualities(info.Formats)
	labels := QualityLabels(opts)
	log.Info("probe finished",
		slog.String("title", info.Title),
		slog.Int("formats", len(info.Formats)),
		slog.Any("qualities", labels),
	)

	return model.Event{
		JobID:   j.id,
		Type:    model.EventFormats,
		State:   model.StateFormatsReady,
		Formats: labels,
		Title:   info.Title,
	}
}

func probeFailed(j *job, err error) model.Event {
	return model.Event{
		JobID:   j.id,
		Type:    model.EventFormats,
		State:   model.StateProbeError,
		Formats: []string{model.FallbackQuality},
		Err:     err,
	}
}

func (s *Service) download(j *job, spec model.FetchSpec) model.Event {
	log := s.log.With(slog.String("job", j.id))
	log.Info("download started",
		slog.String("url", spec.URL),
		slog.String("format", spec.Format),
		slog.String("output", spec.OutputTemplate),
	)

	s.emit(j, model.Event{
		JobID:    j.id,
		Type:     model.EventProgress,
		State:    model.StateDownloading,
		Progress: model.Progress{Status: "starting"},
	})

	tracker := newProgressTracker(s.now)
	var lastFile atomic.Value

	hook := func(u model.TransferUpdate) {
		if j.cancelled.Load() {
			j.cancel()
			return
		}
		p := tracker.Update(u)
		if p.Filename != "" {
			lastFile.Store(p.Filename)
		}
		s.emit(j, model.Event{
			JobID:    j.id,
			Type:     model.EventProgress,
			State:    model.StateDownloading,
			Progress: p,
		})
	}

	res, err := s.extractor.Fetch(j.ctx, spec, hook)

	if j.cancelled.Load() {
		log.Info("download cancelled")
		return cancelledEvent(j)
	}
	if err != nil {
		log.Warn("download failed", slog.Any("error", err))
		return model.Event{
			JobID: j.id,
			Type:  model.EventError,
			State: model.StateDownloadError,
			Err:   fmt.Errorf("%w: %w", model.ErrDownload, err),
		}
	}

	var title, filename string
	if res != nil {
		title, filename = res.Title, res.Filename
	}
	if filename == "" {
		filename, _ = lastFile.Load().(string)
	}
	if filename != "" {
		if found, ferr := s.findFile(filename); ferr == nil {
			filename = found
		}
	}
	if title == "" && filename != "" {
		title = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	log.Info("download finished", slog.String("title", title), slog.String("file", filename))
	return model.Event{
		JobID:    j.id,
		Type:     model.EventFinished,
		State:    model.StateFinished,
		Title:    title,
		Filename: filename,
	}
}

func cancelledEvent(j *job) model.Event {
	return model.Event{
		JobID: j.id,
		Type:  model.EventError,
		State: model.StateCancelled,
		Err:   model.ErrCancelled,
	}
}

// emit posts ev if j is still the current job. Progress is dropped when the
// buffer is full; terminal events wait for room unless the service is closed.
// A job cancelled after its transfer ended still reports cancelled.
func (s *Service) emit(j *job, ev model.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != j || s.closed {
		return
	}

	if ev.Type == model.EventFinished && j.cancelled.Load() {
		s.log.Info("download cancelled after transfer", slog.String("job", j.id))
		ev = cancelledEvent(j)
	}

	if !ev.IsTerminal() {
		select {
		case s.events <- ev:
		default:
			s.log.Debug("progress event dropped", slog.String("job", j.id))
		}
		return
	}

	s.current = nil
	s.state = model.StateIdle
	select {
	case s.events <- ev:
	case <-s.quit:
	}
}
