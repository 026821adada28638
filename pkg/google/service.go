package google

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/slotsmith/slotsmith/pkg/calendar"
	"github.com/slotsmith/slotsmith/pkg/user"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type CalendarItem struct {
	ID      string
	Summary string
}

type Service interface {
	GetCalendar(ctx context.Context) (calendar.Calendar, error)
	ListCalendars(ctx context.Context) ([]CalendarItem, error)
}

type ServiceImpl struct {
	auth        *GoogleAuth
	userService user.Service
	location    *time.Location
}

func NewService(auth *GoogleAuth, userService user.Service, location *time.Location) *ServiceImpl {
	return &ServiceImpl{auth: auth, userService: userService, location: location}
}

// GetCalendar builds a calendar adapter bound to the current user's session
// and configured calendar. Returns calendar.ErrNotAuthenticated when no
// valid token is stored for the user.
func (s *ServiceImpl) GetCalendar(ctx context.Context) (calendar.Calendar, error) {
	currentUser, err := s.userService.GetCurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	service, err := s.prepareGoogleService(ctx, currentUser.Id)
	if err != nil {
		return nil, err
	}

	calendarId := currentUser.Settings.GoogleCalendarId
	if calendarId == "" {
		calendarId = "primary"
	}
	return newGoogleCalendar(service, calendarId, s.location), nil
}

func (s *ServiceImpl) ListCalendars(ctx context.Context) ([]CalendarItem, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	googleService, err := s.prepareGoogleService(ctx, userId)
	if err != nil {
		return nil, err
	}
	calendars, err := googleService.CalendarList.List().Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve calendars from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}
	var googleCalendars []CalendarItem
	for _, cal := range calendars.Items {
		googleCalendars = append(googleCalendars, CalendarItem{
			ID:      cal.Id,
			Summary: cal.Summary,
		})
	}
	return googleCalendars, nil
}

func (s *ServiceImpl) prepareGoogleService(ctx context.Context, userId int) (*gcal.Service, error) {
	client, err := s.auth.getClient(ctx, userId)
	if err != nil {
		err := fmt.Errorf("unable to retrieve Google auth client: %v", err)
		log.Error(err)
		return nil, err
	}
	if client == nil {
		log.Debug("user is unauthenticated, authentication is required")
		return nil, calendar.ErrNotAuthenticated
	}
	service, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		err := fmt.Errorf("unable to retrieve Calendar client: %v", err)
		log.Error(err)
		return nil, err
	}

	return service, nil
}
