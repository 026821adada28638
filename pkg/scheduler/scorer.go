package scheduler

import (
	"sort"
	"time"
)

// scoreSlot rates a slot by its start hour using a fixed preference table:
// mid-morning and early-afternoon slots score highest, the edges of the
// working day lowest. Pure function; identical input yields identical output.
func scoreSlot(start time.Time) float64 {
	hour := start.Hour()
	switch {
	case (hour >= 10 && hour <= 11) || (hour >= 14 && hour <= 15):
		return 1.0
	case (hour >= 9 && hour <= 12) || (hour >= 13 && hour <= 16):
		return 0.8
	default:
		return 0.6
	}
}

// rankProposals builds one proposal per free slot, sorts by score descending
// and truncates to maxProposals. The sort is stable: equally scored slots
// keep their chronological order.
func rankProposals(freeSlots []TimeSlot, title string, attendees []string, maxProposals int) []MeetingProposal {
	proposals := make([]MeetingProposal, 0, len(freeSlots))
	for _, slot := range freeSlots {
		proposals = append(proposals, MeetingProposal{
			Slot:      slot,
			Attendees: attendees,
			Title:     title,
			Score:     scoreSlot(slot.Start),
		})
	}

	sort.SliceStable(proposals, func(i, j int) bool {
		return proposals[i].Score > proposals[j].Score
	})

	if len(proposals) > maxProposals {
		proposals = proposals[:maxProposals]
	}
	return proposals
}
