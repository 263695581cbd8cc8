package model

import (
	"fmt"
	"strconv"
	"strings"
)

// QualitySuffix terminates every quality label ("720p")
const QualitySuffix = "p"

// FallbackQuality is offered when a probe yields nothing usable
const FallbackQuality = "720p"

// StandardHeights lists the vertical resolutions offered to the user
var StandardHeights = []int{144, 240, 360, 480, 720, 1080, 1440, 2160, 4320}

// IsStandardHeight reports whether height is in StandardHeights
func IsStandardHeight(height int) bool {
	for _, h := range StandardHeights {
		if h == height {
			return true
		}
	}
	return false
}

// StreamFormat is one stream descriptor returned by the extractor
type StreamFormat struct {
	ID     string
	Height int // 0 if unknown or audio-only
	Ext    string
	VCodec string // "none" for audio-only streams
	ACodec string // "none" for video-only streams
}

// HasVideo reports whether the stream carries a video track
func (f StreamFormat) HasVideo() bool {
	return f.VCodec != "" && f.VCodec != "none"
}

// MediaInfo is the metadata-only view of a URL
type MediaInfo struct {
	ID      string
	Title   string
	Formats []StreamFormat
}

// FormatOption is one selectable quality tier
type FormatOption struct {
	Height int
	Ext    string // container of the first stream seen at this height
}

// Label returns the user-facing label, e.g. "1080p"
func (o FormatOption) Label() string {
	return strconv.Itoa(o.Height) + QualitySuffix
}

// ParseQuality extracts the height from a label such as "720p"
func ParseQuality(label string) (int, error) {
	label = strings.TrimSpace(label)
	if !strings.HasSuffix(label, QualitySuffix) {
		return 0, fmt.Errorf("%w: quality %q must end with %q", ErrValidation, label, QualitySuffix)
	}

	height, err := strconv.Atoi(strings.TrimSuffix(label, QualitySuffix))
	if err != nil || height <= 0 {
		return 0, fmt.Errorf("%w: quality %q has no valid height", ErrValidation, label)
	}
	return height, nil
}
