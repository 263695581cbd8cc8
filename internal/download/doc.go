// Package download runs probes and downloads in the background on top of an
// Extractor (yt-dlp in production). Every job gets its own goroutine and posts
// typed events on a channel; starting a new job supersedes the previous one.
package download
