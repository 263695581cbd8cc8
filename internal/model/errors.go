package model

import "errors"

// Error taxonomy for the worker. Causes are wrapped with fmt.Errorf("%w: %w", ...)
// so errors.Is matches the kind while the extractor's message stays readable.
var (
	// ErrValidation indicates a malformed URL, destination or quality.
	ErrValidation = errors.New("validation failed")
	// ErrProbe indicates that fetching metadata failed.
	ErrProbe = errors.New("probe failed")
	// ErrDownload indicates that the transfer or remux failed.
	ErrDownload = errors.New("download failed")
	// ErrCancelled indicates a user-initiated abort.
	ErrCancelled = errors.New("download cancelled by user")
)

// IsCancelled reports whether err is a user-initiated abort
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
