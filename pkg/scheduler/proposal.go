package scheduler

import (
	"fmt"
	"strings"
)

// MeetingProposal is a scored free slot offered to the user. Proposals are
// ephemeral; nothing persists them between calls.
type MeetingProposal struct {
	Slot      TimeSlot
	Attendees []string
	Title     string
	// Score is the desirability of the slot, between 0.0 and 1.0.
	Score float64
	// Conflicts is reserved for future multi-calendar checks.
	Conflicts []string
}

func (p MeetingProposal) String() string {
	return fmt.Sprintf("%s: %s (attendees: %s)", p.Title, p.Slot, strings.Join(p.Attendees, ", "))
}
