package scheduler

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2024-01-01 is a Monday.
var monday = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// longAgo keeps the "not before now" clamp out of the way.
var longAgo = time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)

func TestCandidateSlotsWithinBusinessHours(t *testing.T) {
	rules := DefaultBusinessRules(time.UTC)

	slots := slices.Collect(candidateSlots(monday, monday.AddDate(0, 0, 1), 30, rules, longAgo))

	// 9:00 through 17:30 starts, 30 minutes apart
	assert.Len(t, slots, 18)
	assert.Equal(t, monday.Add(9*time.Hour), slots[0].Start)
	assert.Equal(t, monday.Add(17*time.Hour+30*time.Minute), slots[len(slots)-1].Start)

	for _, slot := range slots {
		assert.GreaterOrEqual(t, slot.Start.Hour(), rules.WorkingHoursStart)
		assert.False(t, slot.End.After(monday.Add(time.Duration(rules.WorkingHoursEnd)*time.Hour)))
		assert.Equal(t, time.Monday, slot.Start.Weekday())
		assert.Equal(t, 30, slot.DurationMinutes())
	}
}

func TestCandidateSlotsSkipNonWorkingDays(t *testing.T) {
	rules := DefaultBusinessRules(time.UTC)
	saturday := time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)

	weekend := slices.Collect(candidateSlots(saturday, saturday.AddDate(0, 0, 2), 30, rules, longAgo))
	assert.Empty(t, weekend)

	// spanning the weekend resumes on Monday
	acrossWeekend := slices.Collect(candidateSlots(saturday, saturday.AddDate(0, 0, 3), 30, rules, longAgo))
	assert.NotEmpty(t, acrossWeekend)
	for _, slot := range acrossWeekend {
		assert.Equal(t, time.Monday, slot.Start.Weekday())
	}
}

func TestCandidateSlotsNeverStartInThePast(t *testing.T) {
	rules := DefaultBusinessRules(time.UTC)
	now := monday.Add(10*time.Hour + 13*time.Minute)

	slots := slices.Collect(candidateSlots(monday, monday.AddDate(0, 0, 1), 30, rules, now))

	assert.NotEmpty(t, slots)
	// 10:13 rounds up to the next 30-minute boundary
	assert.Equal(t, monday.Add(10*time.Hour+30*time.Minute), slots[0].Start)
	for _, slot := range slots {
		assert.False(t, slot.Start.Before(now))
	}
}

func TestCandidateSlotsRejectPartialFits(t *testing.T) {
	rules := DefaultBusinessRules(time.UTC)

	slots := slices.Collect(candidateSlots(monday, monday.AddDate(0, 0, 1), 60, rules, longAgo))

	assert.NotEmpty(t, slots)
	last := slots[len(slots)-1]
	// a 60-minute slot can start at 17:00 at the latest
	assert.Equal(t, monday.Add(17*time.Hour), last.Start)
	assert.Equal(t, monday.Add(18*time.Hour), last.End)
}

func TestCandidateSlotsDurationExceedingBusinessDay(t *testing.T) {
	rules := DefaultBusinessRules(time.UTC)

	// 600 minutes cannot fit in a 9-hour business day; empty, not an error
	slots := slices.Collect(candidateSlots(monday, monday.AddDate(0, 0, 7), 600, rules, longAgo))
	assert.Empty(t, slots)
}

func TestCandidateSlotsSequenceIsRestartable(t *testing.T) {
	rules := DefaultBusinessRules(time.UTC)
	seq := candidateSlots(monday, monday.AddDate(0, 0, 2), 45, rules, longAgo)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
}

func TestCandidateSlotsHonorConfiguredTimezone(t *testing.T) {
	location, err := time.LoadLocation("Europe/Warsaw")
	assert.NoError(t, err)
	rules := DefaultBusinessRules(location)

	windowStart := time.Date(2024, time.January, 1, 0, 0, 0, 0, location)
	slots := slices.Collect(candidateSlots(windowStart, windowStart.AddDate(0, 0, 1), 30, rules, longAgo))

	assert.NotEmpty(t, slots)
	assert.Equal(t, 9, slots[0].Start.In(location).Hour())
}
