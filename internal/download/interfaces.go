package download

import (
	"context"

	"github.com/ytget/ytgrab/internal/model"
)

// Extractor resolves metadata and downloads media for a URL.
type Extractor interface {
	// Probe returns metadata without downloading anything.
	Probe(ctx context.Context, url string) (*model.MediaInfo, error)

	// Fetch downloads according to spec. onProgress may be called from another goroutine.
	Fetch(ctx context.Context, spec model.FetchSpec, onProgress func(model.TransferUpdate)) (*model.FetchResult, error)
}

// Worker is the part of Service the UI talks to.
type Worker interface {
	Probe(url string) (string, error)
	Download(req model.Request) (string, error)
	Cancel() bool
	State() model.State
	Events() <-chan model.Event
	Close()
}

var _ Worker = (*Service)(nil)
