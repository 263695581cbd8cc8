package model

// State represents the current phase of the probe/download worker
type State string

const (
	// StateIdle means no probe or download is running
	StateIdle State = "Idle"

	// StateProbing means a metadata-only query is in flight
	StateProbing State = "Probing"

	// StateFormatsReady means a probe finished with a list of qualities
	StateFormatsReady State = "FormatsReady"

	// StateProbeError means a probe failed and a fallback list was reported
	StateProbeError State = "ProbeError"

	// StateDownloading means a transfer is in flight
	StateDownloading State = "Downloading"

	// StateFinished means the download completed successfully
	StateFinished State = "Finished"

	// StateCancelled means the download was aborted by the user
	StateCancelled State = "Cancelled"

	// StateDownloadError means the transfer or remux failed
	StateDownloadError State = "DownloadError"
)

// String returns the string representation of State
func (s State) String() string {
	return string(s)
}

// IsActive returns true while a probe or download is running
func (s State) IsActive() bool {
	return s == StateProbing || s == StateDownloading
}

// IsFinished returns true for terminal states that return the worker to idle
func (s State) IsFinished() bool {
	switch s {
	case StateFormatsReady, StateProbeError, StateFinished, StateCancelled, StateDownloadError:
		return true
	}
	return false
}
