package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Request describes a single download submitted by the UI.
// ID becomes the job ID of the download.
type Request struct {
	ID          string
	URL         string
	Destination string // download directory
	Quality     string // quality label such as "720p"
	CreatedAt   time.Time
}

// NewRequest creates a request with a fresh ID
func NewRequest(url, destination, quality string) Request {
	return Request{
		ID:          uuid.NewString(),
		URL:         strings.TrimSpace(url),
		Destination: destination,
		Quality:     strings.TrimSpace(quality),
		CreatedAt:   time.Now(),
	}
}

// Progress is a snapshot of an in-flight transfer
type Progress struct {
	Percent    float64       // 0 to 100, 0 while Total is unknown
	Downloaded int64         // bytes, never decreases within one download
	Total      int64         // bytes, 0 if unknown
	Speed      float64       // bytes per second, 0 if unknown
	ETA        time.Duration // 0 if unknown
	Filename   string        // file currently being written
	Status     string        // free-form status line
}

// HasTotal reports whether the total size is known
func (p Progress) HasTotal() bool {
	return p.Total > 0
}

// ETAString returns ETA formatted as hh:mm:ss or mm:ss, or "—" if unknown
func (p Progress) ETAString() string {
	secs := int(p.ETA.Seconds())
	if secs <= 0 {
		return "—"
	}

	hours := secs / 3600
	minutes := (secs % 3600) / 60
	seconds := secs % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
