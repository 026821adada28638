package calendar

import "time"

// Event is one busy period sourced from an external calendar. It is a
// read-only snapshot owned by the call that fetched it; nothing caches events
// across scheduling computations.
type Event struct {
	ID          string
	Title       string
	Start       time.Time
	End         time.Time
	Location    string
	Attendees   []string
	Description string
	// AllDay events arrive from providers as plain dates and are mapped to
	// midnight-to-midnight in the configured timezone. They do not block
	// timed meeting slots.
	AllDay bool
}

// EventDraft carries the fields needed to create a new event with a provider.
type EventDraft struct {
	Title       string
	Start       time.Time
	End         time.Time
	Attendees   []string
	Location    string
	Description string
}
