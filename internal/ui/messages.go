package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ytget/ytgrab/internal/model"
)

// errorNotices maps fragments of yt-dlp error text to friendlier messages.
// Order matters: the first match wins.
var errorNotices = []struct {
	fragments []string
	key       string
}{
	{[]string{"Private video"}, KeyPrivateVideo},
	{[]string{"not available", "unavailable"}, KeyVideoUnavailable},
	{[]string{"age-restricted", "confirm your age"}, KeyAgeRestricted},
}

// ErrorMessage returns the text shown to the user for a failed probe or download
func ErrorMessage(loc *Localization, err error) string {
	if err == nil {
		return ""
	}
	if model.IsCancelled(err) {
		return loc.GetText(KeyDownloadCancelled)
	}

	text := err.Error()
	for _, n := range errorNotices {
		for _, f := range n.fragments {
			if strings.Contains(text, f) {
				return loc.GetText(n.key)
			}
		}
	}

	if errors.Is(err, model.ErrValidation) {
		return loc.GetText(KeyInvalidURL) + ": " + text
	}
	return loc.GetText(KeyDownloadErrorLabel) + ": " + text
}

// ProgressStatus returns the status line under the progress bar
func ProgressStatus(loc *Localization, p model.Progress) string {
	if p.Speed <= 0 {
		return loc.GetText(KeyDownloading)
	}
	status := fmt.Sprintf(loc.GetText(KeySpeed), humanize.Bytes(uint64(p.Speed)))
	if p.ETA > 0 {
		status += MiddleDotSeparator + p.ETAString()
	}
	return status
}

// CompletionMessage returns the success dialog text
func CompletionMessage(loc *Localization, title, dir string) string {
	if title == "" {
		title = DashPlaceholder
	}
	return fmt.Sprintf(loc.GetText(KeyDownloadSavedTo), title, dir)
}
