package scheduler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/slotsmith/slotsmith/internal/utils"
	"github.com/slotsmith/slotsmith/pkg/calendar"
	"github.com/stretchr/testify/assert"
)

func setupHandlerTest(cal *calendar.StubCalendar) *Handler {
	service := NewService(
		stubProvider{cal: cal},
		DefaultBusinessRules(time.UTC),
		&utils.MockClock{FixedNow: longAgo},
		false,
	)
	return NewHandler(service)
}

func TestHandlerFindFreeSlots(t *testing.T) {
	handler := setupHandlerTest(calendar.NewStubCalendar())

	t.Run("missing duration is a bad request", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/schedule/slots", nil)
		rec := httptest.NewRecorder()

		handler.FindFreeSlots(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid window format is a bad request", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/schedule/slots?durationMinutes=30&from=tomorrow", nil)
		rec := httptest.NewRecorder()

		handler.FindFreeSlots(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns slots for a valid query", func(t *testing.T) {
		url := "/api/schedule/slots?durationMinutes=30" +
			"&from=" + monday.Format(time.RFC3339) +
			"&to=" + monday.AddDate(0, 0, 1).Format(time.RFC3339)
		req := httptest.NewRequest("GET", url, nil)
		rec := httptest.NewRecorder()

		handler.FindFreeSlots(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var dtos []TimeSlotDTO
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&dtos))
		assert.Len(t, dtos, 18)
		assert.Equal(t, 30, dtos[0].DurationMinutes)
		assert.Equal(t, "2024-01-01 09:00 - 09:30", dtos[0].Display)
	})
}

func TestHandlerProposeMeeting(t *testing.T) {
	handler := setupHandlerTest(calendar.NewStubCalendar())

	t.Run("returns ranked proposals", func(t *testing.T) {
		body := `{"title":"Planning","durationMinutes":30,"attendees":["a@example.com"],` +
			`"from":"` + monday.Format(time.RFC3339) + `","to":"` + monday.AddDate(0, 0, 1).Format(time.RFC3339) + `"}`
		req := httptest.NewRequest("POST", "/api/schedule/proposals", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.ProposeMeeting(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var dtos []ProposalDTO
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&dtos))
		assert.Len(t, dtos, 5)
		assert.Equal(t, 1.0, dtos[0].Score)
	})

	t.Run("rejects non-positive duration", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/schedule/proposals", strings.NewReader(`{"title":"Planning"}`))
		rec := httptest.NewRecorder()

		handler.ProposeMeeting(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlerCreateEvent(t *testing.T) {
	t.Run("creates the event", func(t *testing.T) {
		cal := calendar.NewStubCalendar()
		handler := setupHandlerTest(cal)

		body := `{"title":"Planning","start":"` + monday.Add(10*time.Hour).Format(time.RFC3339) +
			`","end":"` + monday.Add(11*time.Hour).Format(time.RFC3339) + `"}`
		req := httptest.NewRequest("POST", "/api/schedule/event", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.CreateEvent(rec, req)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp createEventResponseDTO
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.NotEmpty(t, resp.EventId)
		assert.Len(t, cal.Inserted, 1)
	})

	t.Run("invalid interval is a bad request", func(t *testing.T) {
		handler := setupHandlerTest(calendar.NewStubCalendar())

		start := monday.Add(10 * time.Hour).Format(time.RFC3339)
		body := `{"title":"Planning","start":"` + start + `","end":"` + start + `"}`
		req := httptest.NewRequest("POST", "/api/schedule/event", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.CreateEvent(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing provider session is unauthorized", func(t *testing.T) {
		service := NewService(
			stubProvider{err: calendar.ErrNotAuthenticated},
			DefaultBusinessRules(time.UTC),
			&utils.MockClock{FixedNow: longAgo},
			false,
		)
		handler := NewHandler(service)

		body := `{"title":"Planning","start":"` + monday.Add(10*time.Hour).Format(time.RFC3339) +
			`","end":"` + monday.Add(11*time.Hour).Format(time.RFC3339) + `"}`
		req := httptest.NewRequest("POST", "/api/schedule/event", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.CreateEvent(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
