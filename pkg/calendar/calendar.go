package calendar

import (
	"context"
	"errors"
	"time"
)

// ErrNotAuthenticated is returned when no valid provider session exists.
// It is fatal to the current call; token refresh is the auth layer's job.
var ErrNotAuthenticated = errors.New("user is unauthenticated, authentication is required")

// Calendar is the provider boundary the scheduling engine talks to.
type Calendar interface {
	// ListEvents returns events between from and to, ordered by start time.
	// Individual events that cannot be parsed are skipped, not fatal.
	ListEvents(ctx context.Context, from time.Time, to time.Time) ([]Event, error)
	// InsertEvent creates an event and returns the provider-assigned ID.
	InsertEvent(ctx context.Context, draft EventDraft, notifyAttendees bool) (string, error)
}
