package model

// EventType classifies messages posted by the worker
type EventType string

const (
	EventFormats  EventType = "formats"
	EventProgress EventType = "progress"
	EventFinished EventType = "finished"
	EventError    EventType = "error"
)

// Event is a message from the worker to the UI. Only the fields relevant to Type are set.
type Event struct {
	JobID    string
	Type     EventType
	State    State
	Formats  []string // EventFormats, never empty
	Progress Progress // EventProgress
	Title    string   // EventFinished, EventFormats
	Filename string   // EventFinished
	Err      error    // EventError, and EventFormats when the probe failed
}

// IsTerminal reports whether the event ends its job
func (e Event) IsTerminal() bool {
	return e.Type != EventProgress
}
