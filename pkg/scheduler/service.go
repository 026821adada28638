package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/slotsmith/slotsmith/internal/utils"
	"github.com/slotsmith/slotsmith/pkg/calendar"
)

const defaultWindowDays = 7
const defaultMaxProposals = 5

// CalendarProvider resolves the calendar of the current user. A failure to
// resolve (including calendar.ErrNotAuthenticated) is fatal to the call.
type CalendarProvider interface {
	GetCalendar(ctx context.Context) (calendar.Calendar, error)
}

// SlotQuery describes a free-slot search. Zero window values default to
// "now" through "+7 days".
type SlotQuery struct {
	DurationMinutes int
	WindowStart     time.Time
	WindowEnd       time.Time
	// AttendeeEmails is accepted for future cross-calendar availability
	// checks; currently only the primary calendar is consulted.
	AttendeeEmails []string
}

// MeetingRequest describes a meeting to propose slots for.
type MeetingRequest struct {
	Title           string
	DurationMinutes int
	Attendees       []string
	WindowStart     time.Time
	WindowEnd       time.Time
	MaxProposals    int
}

// Service is the scheduling facade. Stateless and synchronous per call: one
// provider round-trip followed by pure in-memory computation.
type Service struct {
	provider             CalendarProvider
	rules                BusinessRules
	clock                utils.Clock
	confirmationRequired bool
}

func NewService(provider CalendarProvider, rules BusinessRules, clock utils.Clock, confirmationRequired bool) *Service {
	return &Service{
		provider:             provider,
		rules:                rules,
		clock:                clock,
		confirmationRequired: confirmationRequired,
	}
}

// FindFreeSlots returns candidate slots of the requested duration that do not
// overlap any timed busy event in the window. A provider fetch failure is
// logged and reported as an empty result; callers cannot distinguish it from
// a fully booked calendar.
func (s *Service) FindFreeSlots(ctx context.Context, query SlotQuery) ([]TimeSlot, error) {
	windowStart, windowEnd := s.resolveWindow(query.WindowStart, query.WindowEnd)

	cal, err := s.provider.GetCalendar(ctx)
	if err != nil {
		return nil, err
	}
	events, err := cal.ListEvents(ctx, windowStart, windowEnd)
	if err != nil {
		// A failed fetch degrades to "no free slots" instead of
		// propagating; see the error handling notes in DESIGN.md.
		log.Errorf("failed to fetch calendar events: %v", err)
		return []TimeSlot{}, nil
	}

	candidates := candidateSlots(windowStart, windowEnd, query.DurationMinutes, s.rules, s.clock.Now())
	freeSlots := filterFreeSlots(candidates, events)

	log.WithFields(log.Fields{
		"count":           len(freeSlots),
		"durationMinutes": query.DurationMinutes,
	}).Info("free slots found")
	return freeSlots, nil
}

// ProposeMeeting scores and ranks free slots for the requested meeting,
// returning at most MaxProposals proposals (default 5).
func (s *Service) ProposeMeeting(ctx context.Context, req MeetingRequest) ([]MeetingProposal, error) {
	maxProposals := req.MaxProposals
	if maxProposals <= 0 {
		maxProposals = defaultMaxProposals
	}

	freeSlots, err := s.FindFreeSlots(ctx, SlotQuery{
		DurationMinutes: req.DurationMinutes,
		WindowStart:     req.WindowStart,
		WindowEnd:       req.WindowEnd,
		AttendeeEmails:  req.Attendees,
	})
	if err != nil {
		return nil, err
	}

	proposals := rankProposals(freeSlots, req.Title, req.Attendees, maxProposals)

	log.WithFields(log.Fields{
		"count":           len(proposals),
		"title":           req.Title,
		"durationMinutes": req.DurationMinutes,
		"attendeesCount":  len(req.Attendees),
	}).Info("meeting proposals generated")
	return proposals, nil
}

// CreateEvent hands a chosen slot to the provider's write API. When the
// confirmation flag is set the caller is expected to have obtained explicit
// user confirmation first; the facade only warns, it does not block.
func (s *Service) CreateEvent(ctx context.Context, draft calendar.EventDraft) (string, error) {
	if _, err := NewTimeSlot(draft.Start, draft.End); err != nil {
		return "", err
	}

	if s.confirmationRequired {
		log.Warn("confirmation mode is enabled: event creation requires explicit user confirmation by the caller")
	}

	cal, err := s.provider.GetCalendar(ctx)
	if err != nil {
		return "", err
	}

	eventId, err := cal.InsertEvent(ctx, draft, true)
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event %q: %w", draft.Title, err)
	}

	log.WithFields(log.Fields{
		"eventId":        eventId,
		"title":          draft.Title,
		"start":          draft.Start.Format(time.RFC3339),
		"attendeesCount": len(draft.Attendees),
	}).Info("calendar event created")
	return eventId, nil
}

// TodaySchedule returns the events of the current local day. Like free-slot
// search, a failed fetch is reported as an empty day rather than an error.
func (s *Service) TodaySchedule(ctx context.Context) ([]calendar.Event, error) {
	now := s.clock.Now().In(s.rules.Location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.rules.Location)

	cal, err := s.provider.GetCalendar(ctx)
	if err != nil {
		return nil, err
	}
	events, err := cal.ListEvents(ctx, today, today.AddDate(0, 0, 1))
	if err != nil {
		log.Errorf("failed to fetch today's calendar events: %v", err)
		return []calendar.Event{}, nil
	}
	return events, nil
}

// FormatSchedule renders events as a human-readable day listing.
func (s *Service) FormatSchedule(events []calendar.Event) string {
	if len(events) == 0 {
		return "No events scheduled."
	}

	var lines []string
	for _, event := range events {
		timeRange := "all day"
		if !event.AllDay {
			timeRange = fmt.Sprintf("%s-%s",
				event.Start.In(s.rules.Location).Format("15:04"),
				event.End.In(s.rules.Location).Format("15:04"))
		}
		lines = append(lines, fmt.Sprintf("  %s: %s", timeRange, event.Title))
		if event.Location != "" {
			lines = append(lines, fmt.Sprintf("           @ %s", event.Location))
		}
	}
	return strings.Join(lines, "\n")
}

func (s *Service) resolveWindow(start, end time.Time) (time.Time, time.Time) {
	if start.IsZero() {
		start = s.clock.Now().In(s.rules.Location)
	}
	if end.IsZero() {
		end = start.AddDate(0, 0, defaultWindowDays)
	}
	return start, end
}
