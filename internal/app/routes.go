package app

import (
	"github.com/gorilla/mux"
	"github.com/slotsmith/slotsmith/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Scheduling
	r.HandleFunc("/api/schedule/slots", deps.SchedulerHandler.FindFreeSlots).Methods("GET")
	r.HandleFunc("/api/schedule/proposals", deps.SchedulerHandler.ProposeMeeting).Methods("POST")
	r.HandleFunc("/api/schedule/event", deps.SchedulerHandler.CreateEvent).Methods("POST")
	r.HandleFunc("/api/schedule/today", deps.SchedulerHandler.TodaySchedule).Methods("GET")

	// User management
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateUser).Methods("PUT")

	// Google integration
	r.HandleFunc("/api/integrations/google/auth/login", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth/logout", deps.GoogleAuth.OAuthLogout).Methods("DELETE")
	r.HandleFunc("/api/integrations/google/auth/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
	r.HandleFunc("/api/integrations/google/calendars", deps.GoogleHandler.ListCalendars).Methods("GET")
}
