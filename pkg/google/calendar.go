package google

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/slotsmith/slotsmith/pkg/calendar"
	gcal "google.golang.org/api/calendar/v3"
)

const allDayDateFormat = "2006-01-02"

// Calendar adapts one Google calendar to the provider boundary the
// scheduling engine expects.
type Calendar struct {
	service    *gcal.Service
	calendarId string
	location   *time.Location
}

func newGoogleCalendar(service *gcal.Service, calendarId string, location *time.Location) *Calendar {
	return &Calendar{
		service:    service,
		calendarId: calendarId,
		location:   location,
	}
}

func (c *Calendar) ListEvents(ctx context.Context, from time.Time, to time.Time) ([]calendar.Event, error) {
	googleEvents, err := c.service.Events.List(c.calendarId).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()

	if err != nil {
		err := fmt.Errorf("unable to retrieve events from Google Calendar: %w", err)
		log.Error(err)
		return nil, err
	}

	events := make([]calendar.Event, 0, len(googleEvents.Items))
	for _, item := range googleEvents.Items {
		event, err := c.parseEvent(item)
		if err != nil {
			// One malformed event must not abort the whole fetch.
			log.Warnf("skipping malformed calendar event %q: %v", item.Id, err)
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

func (c *Calendar) InsertEvent(ctx context.Context, draft calendar.EventDraft, notifyAttendees bool) (string, error) {
	event := &gcal.Event{
		Summary:     draft.Title,
		Location:    draft.Location,
		Description: draft.Description,
		Start: &gcal.EventDateTime{
			DateTime: draft.Start.Format(time.RFC3339),
			TimeZone: c.location.String(),
		},
		End: &gcal.EventDateTime{
			DateTime: draft.End.Format(time.RFC3339),
			TimeZone: c.location.String(),
		},
	}
	for _, email := range draft.Attendees {
		event.Attendees = append(event.Attendees, &gcal.EventAttendee{Email: email})
	}

	sendUpdates := "none"
	if notifyAttendees {
		sendUpdates = "all"
	}

	result, err := c.service.Events.Insert(c.calendarId, event).
		SendUpdates(sendUpdates).
		Context(ctx).
		Do()
	if err != nil {
		err := fmt.Errorf("unable to insert event in Google Calendar: %w", err)
		log.Error(err)
		return "", err
	}

	return result.Id, nil
}

// parseEvent converts one API item. All-day events carry dates instead of
// timestamps and map to midnight-to-midnight in the configured zone.
func (c *Calendar) parseEvent(item *gcal.Event) (calendar.Event, error) {
	if item.Start == nil || item.End == nil {
		return calendar.Event{}, fmt.Errorf("event is missing start or end")
	}

	isAllDay := item.Start.Date != ""

	var start, end time.Time
	var err error
	if isAllDay {
		start, err = time.ParseInLocation(allDayDateFormat, item.Start.Date, c.location)
		if err != nil {
			return calendar.Event{}, fmt.Errorf("invalid all-day start date %q: %w", item.Start.Date, err)
		}
		end, err = time.ParseInLocation(allDayDateFormat, item.End.Date, c.location)
		if err != nil {
			return calendar.Event{}, fmt.Errorf("invalid all-day end date %q: %w", item.End.Date, err)
		}
	} else {
		start, err = time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			return calendar.Event{}, fmt.Errorf("invalid start time %q: %w", item.Start.DateTime, err)
		}
		end, err = time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			return calendar.Event{}, fmt.Errorf("invalid end time %q: %w", item.End.DateTime, err)
		}
	}

	title := item.Summary
	if title == "" {
		title = "(untitled)"
	}

	attendees := make([]string, 0, len(item.Attendees))
	for _, attendee := range item.Attendees {
		attendees = append(attendees, attendee.Email)
	}

	return calendar.Event{
		ID:          item.Id,
		Title:       title,
		Start:       start,
		End:         end,
		Location:    item.Location,
		Attendees:   attendees,
		Description: item.Description,
		AllDay:      isAllDay,
	}, nil
}
