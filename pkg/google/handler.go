package google

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/slotsmith/slotsmith/pkg/calendar"
)

type Handler struct {
	service Service
}

type CalendarItemDTO struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListCalendars(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	calendars, err := h.service.ListCalendars(r.Context())
	if err != nil {
		if errors.Is(err, calendar.ErrNotAuthenticated) {
			http.Error(w, "Google Calendar is not authenticated", http.StatusUnauthorized)
			return
		}
		log.Errorf("failed to list Google calendars: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]CalendarItemDTO, 0, len(calendars))
	for _, item := range calendars {
		dtos = append(dtos, CalendarItemDTO{ID: item.ID, Summary: item.Summary})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
