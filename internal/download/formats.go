package download

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/ytget/ytgrab/internal/model"
)

// OutputPattern names downloaded files after the video title
const OutputPattern = "%(title)s.%(ext)s"

// SelectQualities keeps video streams with a standard height, one per height,
// highest first.
func SelectQualities(formats []model.StreamFormat) []model.FormatOption {
	seen := make(map[int]bool)
	var opts []model.FormatOption

	for _, f := range formats {
		if !f.HasVideo() || !model.IsStandardHeight(f.Height) || seen[f.Height] {
			continue
		}
		seen[f.Height] = true
		opts = append(opts, model.FormatOption{Height: f.Height, Ext: f.Ext})
	}

	sort.Slice(opts, func(i, j int) bool {
		return opts[i].Height > opts[j].Height
	})
	return opts
}

// QualityLabels turns options into labels, falling back to FallbackQuality
// when there is nothing to offer.
func QualityLabels(opts []model.FormatOption) []string {
	if len(opts) == 0 {
		return []string{model.FallbackQuality}
	}

	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Label()
	}
	return labels
}

// BuildFormatSelector returns the yt-dlp format expression for a maximum height:
// best mp4 video with m4a audio, or the best single file under the cap.
func BuildFormatSelector(height int) string {
	return fmt.Sprintf("bestvideo[height<=%d][ext=mp4]+bestaudio[ext=m4a]/best[height<=%d]", height, height)
}

// FormatSelectorFor validates a quality label and builds its format expression
func FormatSelectorFor(quality string) (string, error) {
	height, err := model.ParseQuality(quality)
	if err != nil {
		return "", err
	}
	return BuildFormatSelector(height), nil
}

// OutputTemplate returns the yt-dlp output template for a destination directory
func OutputTemplate(destination string) string {
	return filepath.Join(destination, OutputPattern)
}
