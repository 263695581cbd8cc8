// Package platform contains OS and external tooling glue: the yt-dlp extractor used by
// the download worker, URL validation, and filesystem helpers for the downloads folder
// and revealing finished files.
package platform
