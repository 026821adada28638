package calendar

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

// StubCalendar is an in-memory Calendar used in tests.
type StubCalendar struct {
	Events   []Event
	Inserted []EventDraft

	ListErr   error
	InsertErr error
}

func NewStubCalendar() *StubCalendar {
	return &StubCalendar{}
}

func (c *StubCalendar) ListEvents(_ context.Context, from time.Time, to time.Time) ([]Event, error) {
	if c.ListErr != nil {
		return nil, c.ListErr
	}

	var events []Event
	for _, event := range c.Events {
		if event.Start.Before(to) && event.End.After(from) {
			events = append(events, event)
		}
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})

	return events, nil
}

func (c *StubCalendar) InsertEvent(_ context.Context, draft EventDraft, _ bool) (string, error) {
	if c.InsertErr != nil {
		return "", c.InsertErr
	}

	id := uuid.NewString()
	c.Inserted = append(c.Inserted, draft)
	c.Events = append(c.Events, Event{
		ID:          id,
		Title:       draft.Title,
		Start:       draft.Start,
		End:         draft.End,
		Location:    draft.Location,
		Attendees:   draft.Attendees,
		Description: draft.Description,
	})
	return id, nil
}

func (c *StubCalendar) Cleanup() {
	c.Events = nil
	c.Inserted = nil
}
