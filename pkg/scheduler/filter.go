package scheduler

import (
	"iter"

	"github.com/slotsmith/slotsmith/pkg/calendar"
)

// filterFreeSlots drops every candidate that overlaps a timed busy event.
// All-day events never block timed slots. Chronological order is preserved.
func filterFreeSlots(candidates iter.Seq[TimeSlot], events []calendar.Event) []TimeSlot {
	freeSlots := make([]TimeSlot, 0)
	for slot := range candidates {
		if isFree(slot, events) {
			freeSlots = append(freeSlots, slot)
		}
	}
	return freeSlots
}

func isFree(slot TimeSlot, events []calendar.Event) bool {
	for _, event := range events {
		if event.AllDay {
			continue
		}
		if slot.Overlaps(TimeSlot{Start: event.Start, End: event.End}) {
			return false
		}
	}
	return true
}
