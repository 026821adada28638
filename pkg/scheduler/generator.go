package scheduler

import (
	"iter"
	"time"
)

// SlotStepMinutes is the fixed granularity at which candidate slots are
// stepped. Changing it would change the shape of every proposal list, so it
// is a constant rather than configuration.
const SlotStepMinutes = 30

// candidateSlots returns a lazy sequence of potential slots of exactly
// durationMinutes length between windowStart and windowEnd, constrained to
// the business days and hours in rules and never starting before now. The
// sequence can be ranged over multiple times.
func candidateSlots(windowStart, windowEnd time.Time, durationMinutes int, rules BusinessRules, now time.Time) iter.Seq[TimeSlot] {
	return func(yield func(TimeSlot) bool) {
		start := windowStart.In(rules.Location)
		end := windowEnd.In(rules.Location)
		duration := time.Duration(durationMinutes) * time.Minute

		// Cursor starts at the window start with minutes zeroed, clamped
		// forward so that no slot is ever proposed in the past.
		cursor := time.Date(start.Year(), start.Month(), start.Day(), start.Hour(), 0, 0, 0, rules.Location)
		if nowRounded := roundUpToStep(now.In(rules.Location)); cursor.Before(nowRounded) {
			cursor = nowRounded
		}

		for cursor.Before(end) {
			if rules.isWorkingDay(cursor.Weekday()) &&
				cursor.Hour() >= rules.WorkingHoursStart && cursor.Hour() < rules.WorkingHoursEnd {
				slotEnd := cursor.Add(duration)
				// A slot must fit entirely inside business hours.
				// Partial fits are rejected, never truncated.
				if !slotEnd.After(workingDayEnd(cursor, rules)) {
					if !yield(TimeSlot{Start: cursor, End: slotEnd}) {
						return
					}
				}
			}

			cursor = cursor.Add(SlotStepMinutes * time.Minute)

			// Once past closing time, jump straight to the next day's
			// opening hour instead of stepping through the dead zone.
			if cursor.Hour() >= rules.WorkingHoursEnd {
				next := cursor.AddDate(0, 0, 1)
				cursor = time.Date(next.Year(), next.Month(), next.Day(), rules.WorkingHoursStart, 0, 0, 0, rules.Location)
			}
		}
	}
}

// roundUpToStep rounds t up to the next slot boundary on the wall clock.
// Instants already on a boundary are returned unchanged.
func roundUpToStep(t time.Time) time.Time {
	minute := (t.Minute() / SlotStepMinutes) * SlotStepMinutes
	rounded := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minute, 0, 0, t.Location())
	if rounded.Before(t) {
		rounded = rounded.Add(SlotStepMinutes * time.Minute)
	}
	return rounded
}

func workingDayEnd(day time.Time, rules BusinessRules) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), rules.WorkingHoursEnd, 0, 0, 0, rules.Location)
}
