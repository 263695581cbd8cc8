package platform

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/ytget/ytgrab/internal/model"
)

var (
	maxJSONSize = 16 * 1024 * 1024 // --dump-json output for long videos runs to megabytes
	bufSize     = 4096

	// non-JSON stdout line that looks like a file path
	reFilepath = regexp.MustCompile(`(?i)^[^\{\[\n].*\.[a-z0-9]{1,6}$`)
)

// ErrNoMetadata is returned when yt-dlp printed no JSON document
var ErrNoMetadata = errors.New("yt-dlp returned no metadata")

// dumpFormat mirrors the subset of a yt-dlp format entry the app needs
type dumpFormat struct {
	FormatID string   `json:"format_id"`
	Ext      string   `json:"ext"`
	VCodec   string   `json:"vcodec"`
	ACodec   string   `json:"acodec"`
	Height   *float64 `json:"height"`
}

// dumpInfo mirrors the subset of yt-dlp's info dict the app needs
type dumpInfo struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Formats []dumpFormat `json:"formats"`

	// single-format extractors only fill the top level
	dumpFormat
}

// parseDumpJSON converts --dump-json output into MediaInfo
func parseDumpJSON(stdout string) (*model.MediaInfo, error) {
	for _, line := range scanLines(stdout) {
		if !strings.HasPrefix(line, "{") {
			continue
		}

		var d dumpInfo
		if err := json.Unmarshal([]byte(line), &d); err != nil {
			return nil, fmt.Errorf("decode yt-dlp metadata: %w", err)
		}

		formats := d.Formats
		if len(formats) == 0 {
			formats = []dumpFormat{d.dumpFormat}
		}

		info := &model.MediaInfo{
			ID:      d.ID,
			Title:   d.Title,
			Formats: make([]model.StreamFormat, 0, len(formats)),
		}
		for _, f := range formats {
			info.Formats = append(info.Formats, model.StreamFormat{
				ID:     f.FormatID,
				Height: roundHeight(f.Height),
				Ext:    f.Ext,
				VCodec: f.VCodec,
				ACodec: f.ACodec,
			})
		}
		return info, nil
	}

	return nil, ErrNoMetadata
}

// parseFetchOutput reads the title from the JSON line and the final path from the
// after_move print that follows it
func parseFetchOutput(stdout string) *model.FetchResult {
	result := &model.FetchResult{}

	for _, line := range scanLines(stdout) {
		if strings.HasPrefix(line, "{") {
			var d struct {
				Title string `json:"title"`
			}
			if err := json.Unmarshal([]byte(line), &d); err == nil && d.Title != "" {
				result.Title = d.Title
			}
			continue
		}

		if reFilepath.MatchString(line) {
			result.Filename = line
		}
	}

	return result
}

func scanLines(s string) []string {
	scanner := bufio.NewScanner(strings.NewReader(s))
	scanner.Buffer(make([]byte, bufSize), maxJSONSize)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func roundHeight(h *float64) int {
	if h == nil || *h <= 0 {
		return 0
	}
	return int(math.Round(*h))
}
