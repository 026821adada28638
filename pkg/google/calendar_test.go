package google

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gcal "google.golang.org/api/calendar/v3"
)

func TestParseEvent(t *testing.T) {
	location, err := time.LoadLocation("Europe/Warsaw")
	assert.NoError(t, err)
	cal := &Calendar{calendarId: "primary", location: location}

	t.Run("timed event", func(t *testing.T) {
		event, err := cal.parseEvent(&gcal.Event{
			Id:          "evt-1",
			Summary:     "Standup",
			Location:    "Room 4",
			Description: "Daily sync",
			Start:       &gcal.EventDateTime{DateTime: "2024-01-01T10:00:00+01:00"},
			End:         &gcal.EventDateTime{DateTime: "2024-01-01T11:00:00+01:00"},
			Attendees: []*gcal.EventAttendee{
				{Email: "a@example.com"},
				{Email: "b@example.com"},
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, "evt-1", event.ID)
		assert.Equal(t, "Standup", event.Title)
		assert.False(t, event.AllDay)
		assert.Equal(t, []string{"a@example.com", "b@example.com"}, event.Attendees)
		assert.True(t, event.Start.Equal(time.Date(2024, time.January, 1, 10, 0, 0, 0, location)))
		assert.True(t, event.End.Equal(time.Date(2024, time.January, 1, 11, 0, 0, 0, location)))
	})

	t.Run("all-day event maps to midnight-to-midnight", func(t *testing.T) {
		event, err := cal.parseEvent(&gcal.Event{
			Id:      "evt-2",
			Summary: "Offsite",
			Start:   &gcal.EventDateTime{Date: "2024-01-01"},
			End:     &gcal.EventDateTime{Date: "2024-01-02"},
		})
		assert.NoError(t, err)
		assert.True(t, event.AllDay)
		assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, location), event.Start)
		assert.Equal(t, time.Date(2024, time.January, 2, 0, 0, 0, 0, location), event.End)
	})

	t.Run("untitled event gets a fallback title", func(t *testing.T) {
		event, err := cal.parseEvent(&gcal.Event{
			Id:    "evt-3",
			Start: &gcal.EventDateTime{DateTime: "2024-01-01T10:00:00Z"},
			End:   &gcal.EventDateTime{DateTime: "2024-01-01T11:00:00Z"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "(untitled)", event.Title)
	})

	t.Run("missing start or end fails", func(t *testing.T) {
		_, err := cal.parseEvent(&gcal.Event{Id: "evt-4"})
		assert.Error(t, err)
	})

	t.Run("malformed timestamp fails", func(t *testing.T) {
		_, err := cal.parseEvent(&gcal.Event{
			Id:    "evt-5",
			Start: &gcal.EventDateTime{DateTime: "not-a-timestamp"},
			End:   &gcal.EventDateTime{DateTime: "2024-01-01T11:00:00Z"},
		})
		assert.Error(t, err)
	})

	t.Run("malformed all-day date fails", func(t *testing.T) {
		_, err := cal.parseEvent(&gcal.Event{
			Id:    "evt-6",
			Start: &gcal.EventDateTime{Date: "01/01/2024"},
			End:   &gcal.EventDateTime{Date: "2024-01-02"},
		})
		assert.Error(t, err)
	})
}
