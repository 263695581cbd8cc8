package model

import "time"

// FetchSpec tells the extractor what to download and where
type FetchSpec struct {
	URL            string
	Format         string // format-selection expression
	OutputTemplate string // e.g. /home/u/Downloads/%(title)s.%(ext)s
}

// TransferUpdate is a raw progress notification from the extractor
type TransferUpdate struct {
	Status     string // "downloading", "finished", ...
	Downloaded int64
	Total      int64 // 0 if unknown
	Started    time.Time
	Filename   string
	Title      string
}

// FetchResult describes the file produced by a finished download
type FetchResult struct {
	Title    string
	Filename string
}
