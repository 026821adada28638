package scheduler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/slotsmith/slotsmith/internal/rest"
	"github.com/slotsmith/slotsmith/pkg/calendar"
)

type Handler struct {
	scheduler *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{s}
}

type TimeSlotDTO struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"durationMinutes"`
	Display         string    `json:"display"`
}

type ProposalDTO struct {
	Slot      TimeSlotDTO `json:"slot"`
	Title     string      `json:"title"`
	Attendees []string    `json:"attendees"`
	Score     float64     `json:"score"`
}

type proposalsRequestDTO struct {
	Title           string    `json:"title"`
	DurationMinutes int       `json:"durationMinutes"`
	Attendees       []string  `json:"attendees"`
	From            time.Time `json:"from,omitempty"`
	To              time.Time `json:"to,omitempty"`
	MaxProposals    int       `json:"maxProposals,omitempty"`
}

type createEventRequestDTO struct {
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Attendees   []string  `json:"attendees,omitempty"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
}

type createEventResponseDTO struct {
	EventId string `json:"eventId"`
}

type todayScheduleDTO struct {
	Formatted string     `json:"formatted"`
	Events    []EventDTO `json:"events"`
}

type EventDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Location  string    `json:"location,omitempty"`
	Attendees []string  `json:"attendees,omitempty"`
	AllDay    bool      `json:"allDay"`
}

func (h *Handler) FindFreeSlots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	durationMinutes, err := strconv.Atoi(r.URL.Query().Get("durationMinutes"))
	if err != nil || durationMinutes <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid durationMinutes", "'durationMinutes' must be a positive integer")
		return
	}

	from, ok := parseOptionalTime(w, r.URL.Query().Get("from"), "from")
	if !ok {
		return
	}
	to, ok := parseOptionalTime(w, r.URL.Query().Get("to"), "to")
	if !ok {
		return
	}

	slots, err := h.scheduler.FindFreeSlots(r.Context(), SlotQuery{
		DurationMinutes: durationMinutes,
		WindowStart:     from,
		WindowEnd:       to,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]TimeSlotDTO, 0, len(slots))
	for _, slot := range slots {
		dtos = append(dtos, slotToDTO(slot))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) ProposeMeeting(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req proposalsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.DurationMinutes <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid durationMinutes", "'durationMinutes' must be a positive integer")
		return
	}

	proposals, err := h.scheduler.ProposeMeeting(r.Context(), MeetingRequest{
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		Attendees:       req.Attendees,
		WindowStart:     req.From,
		WindowEnd:       req.To,
		MaxProposals:    req.MaxProposals,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]ProposalDTO, 0, len(proposals))
	for _, proposal := range proposals {
		dtos = append(dtos, ProposalDTO{
			Slot:      slotToDTO(proposal.Slot),
			Title:     proposal.Title,
			Attendees: proposal.Attendees,
			Score:     proposal.Score,
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req createEventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	eventId, err := h.scheduler.CreateEvent(r.Context(), calendar.EventDraft{
		Title:       req.Title,
		Start:       req.Start,
		End:         req.End,
		Attendees:   req.Attendees,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInterval) {
			writeError(w, http.StatusBadRequest, "Invalid event interval", "'end' must be after 'start'")
			return
		}
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(createEventResponseDTO{EventId: eventId}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) TodaySchedule(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	events, err := h.scheduler.TodaySchedule(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, event := range events {
		dtos = append(dtos, EventDTO{
			ID:        event.ID,
			Title:     event.Title,
			Start:     event.Start,
			End:       event.End,
			Location:  event.Location,
			Attendees: event.Attendees,
			AllDay:    event.AllDay,
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(todayScheduleDTO{
		Formatted: h.scheduler.FormatSchedule(events),
		Events:    dtos,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func slotToDTO(slot TimeSlot) TimeSlotDTO {
	return TimeSlotDTO{
		Start:           slot.Start,
		End:             slot.End,
		DurationMinutes: slot.DurationMinutes(),
		Display:         slot.String(),
	}
}

func parseOptionalTime(w http.ResponseWriter, value, name string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid "+name+" (date) format", "'"+name+"' must be in RFC3339 format")
		return time.Time{}, false
	}
	return t, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, calendar.ErrNotAuthenticated) {
		writeError(w, http.StatusUnauthorized, "Calendar provider is not authenticated", "")
		return
	}
	log.Errorf("scheduler handler error: %v", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	w.WriteHeader(status)
	encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: details,
	})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}
