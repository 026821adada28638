package scheduler

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval is returned when a slot would have a zero or negative
// duration. This indicates a programming error in the caller, not bad user
// input; bounds are never silently swapped.
var ErrInvalidInterval = errors.New("invalid time slot: end must be after start")

// TimeSlot is a half-open time range [Start, End). Two slots sharing only a
// boundary instant do not overlap. Immutable value type.
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// NewTimeSlot validates start < end and returns the slot.
func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, fmt.Errorf("%w (start=%s, end=%s)", ErrInvalidInterval,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeSlot{Start: start, End: end}, nil
}

// DurationMinutes returns the slot length in minutes, rounded to the nearest
// minute.
func (s TimeSlot) DurationMinutes() int {
	return int(s.End.Sub(s.Start).Round(time.Minute) / time.Minute)
}

// Overlaps reports whether the two half-open ranges intersect. Adjacent slots
// (one's end equals the other's start) do not overlap.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.Start.Before(other.End) && other.Start.Before(s.End)
}

func (s TimeSlot) String() string {
	return fmt.Sprintf("%s - %s", s.Start.Format("2006-01-02 15:04"), s.End.Format("15:04"))
}
