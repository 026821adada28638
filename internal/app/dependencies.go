package app

import (
	"database/sql"

	"github.com/slotsmith/slotsmith/internal/config"
	"github.com/slotsmith/slotsmith/internal/utils"
	"github.com/slotsmith/slotsmith/pkg/google"
	"github.com/slotsmith/slotsmith/pkg/scheduler"
	"github.com/slotsmith/slotsmith/pkg/user"
	"golang.org/x/time/rate"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	UserService user.Service
	UserHandler *user.Handler

	GoogleAuth    *google.GoogleAuth
	GoogleService google.Service
	GoogleHandler *google.Handler

	BusinessRules    scheduler.BusinessRules
	SchedulerService *scheduler.Service
	SchedulerHandler *scheduler.Handler

	// RateLimiter guards the API as an injected collaborator rather than
	// process-global state.
	RateLimiter *rate.Limiter

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	rules, err := scheduler.RulesFromConfig(cfg.Scheduler)
	if err != nil {
		return nil, err
	}
	deps.BusinessRules = rules

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.GoogleAuth = google.NewGoogleAuth(db, cfg)
	deps.GoogleService = google.NewService(deps.GoogleAuth, deps.UserService, rules.Location)
	deps.GoogleHandler = google.NewHandler(deps.GoogleService)

	deps.Clock = &utils.SystemClock{}
	deps.SchedulerService = scheduler.NewService(deps.GoogleService, rules, deps.Clock, cfg.Scheduler.ConfirmationRequired)
	deps.SchedulerHandler = scheduler.NewHandler(deps.SchedulerService)

	deps.RateLimiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.Rps), cfg.RateLimit.Burst)

	return deps, nil
}
