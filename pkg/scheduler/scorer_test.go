package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScoreSlot(t *testing.T) {
	testCases := []struct {
		hour int
		want float64
	}{
		{8, 0.6},
		{9, 0.8},
		{10, 1.0},
		{11, 1.0},
		{12, 0.8},
		{13, 0.8},
		{14, 1.0},
		{15, 1.0},
		{16, 0.8},
		{17, 0.6},
	}

	for _, tc := range testCases {
		start := monday.Add(time.Duration(tc.hour) * time.Hour)
		assert.Equal(t, tc.want, scoreSlot(start), "hour %d", tc.hour)
		// pure function of the start hour
		assert.Equal(t, scoreSlot(start), scoreSlot(start))
	}
}

func TestRankProposalsOrdersByScoreDescending(t *testing.T) {
	nineOClock := TimeSlot{Start: monday.Add(9 * time.Hour), End: monday.Add(9*time.Hour + 30*time.Minute)}
	tenOClock := TimeSlot{Start: monday.Add(10 * time.Hour), End: monday.Add(10*time.Hour + 30*time.Minute)}

	proposals := rankProposals([]TimeSlot{nineOClock, tenOClock}, "Sync", []string{"a@example.com"}, 5)

	assert.Len(t, proposals, 2)
	assert.Equal(t, tenOClock, proposals[0].Slot)
	assert.Equal(t, 1.0, proposals[0].Score)
	assert.Equal(t, nineOClock, proposals[1].Slot)
	assert.Equal(t, 0.8, proposals[1].Score)
}

func TestRankProposalsIsStableOnTies(t *testing.T) {
	slotAtHour := func(hour int) TimeSlot {
		return TimeSlot{Start: monday.Add(time.Duration(hour) * time.Hour), End: monday.Add(time.Duration(hour)*time.Hour + 30*time.Minute)}
	}

	// 10 and 11 tie at 1.0; 9 and 12 tie at 0.8. Chronological order must
	// survive within each score band.
	proposals := rankProposals([]TimeSlot{slotAtHour(9), slotAtHour(10), slotAtHour(11), slotAtHour(12)}, "Sync", nil, 10)

	assert.Len(t, proposals, 4)
	assert.Equal(t, 10, proposals[0].Slot.Start.Hour())
	assert.Equal(t, 11, proposals[1].Slot.Start.Hour())
	assert.Equal(t, 9, proposals[2].Slot.Start.Hour())
	assert.Equal(t, 12, proposals[3].Slot.Start.Hour())
}

func TestRankProposalsTruncatesToMax(t *testing.T) {
	var freeSlots []TimeSlot
	for hour := 9; hour < 18; hour++ {
		freeSlots = append(freeSlots, TimeSlot{
			Start: monday.Add(time.Duration(hour) * time.Hour),
			End:   monday.Add(time.Duration(hour)*time.Hour + 30*time.Minute),
		})
	}

	proposals := rankProposals(freeSlots, "Sync", nil, 3)
	assert.Len(t, proposals, 3)

	// fewer slots than requested returns them all
	proposals = rankProposals(freeSlots[:2], "Sync", nil, 5)
	assert.Len(t, proposals, 2)
}

func TestRankProposalsCarriesMeetingDetails(t *testing.T) {
	slot := TimeSlot{Start: monday.Add(10 * time.Hour), End: monday.Add(11 * time.Hour)}
	attendees := []string{"a@example.com", "b@example.com"}

	proposals := rankProposals([]TimeSlot{slot}, "Planning", attendees, 5)

	assert.Len(t, proposals, 1)
	assert.Equal(t, "Planning", proposals[0].Title)
	assert.Equal(t, attendees, proposals[0].Attendees)
	assert.Empty(t, proposals[0].Conflicts)
}
