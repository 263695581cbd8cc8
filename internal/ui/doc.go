// Package ui contains the Fyne-based window of the application: a URL entry,
// a quality selector fed by background probes, download progress and dialogs.
// Worker events are applied on the Fyne main thread. All UI strings are
// localized via Localization.
package ui
