// Package model defines the domain data shared by the worker and the UI: download
// requests, quality options, progress snapshots, worker states and events. Values are
// plain structs so they can cross the worker/UI boundary by copy.
package model
