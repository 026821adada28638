package scheduler

import (
	"fmt"
	"slices"
	"time"

	"github.com/slotsmith/slotsmith/internal/config"
)

// BusinessRules constrains candidate slot generation. Set at construction,
// immutable afterwards; safe to share across concurrent calls.
type BusinessRules struct {
	WorkingHoursStart int
	WorkingHoursEnd   int
	WorkingDays       []time.Weekday
	Location          *time.Location
}

// DefaultBusinessRules is 9:00-18:00, Monday through Friday.
func DefaultBusinessRules(location *time.Location) BusinessRules {
	return BusinessRules{
		WorkingHoursStart: 9,
		WorkingHoursEnd:   18,
		WorkingDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
		Location: location,
	}
}

// RulesFromConfig builds BusinessRules from application configuration.
func RulesFromConfig(cfg config.Scheduler) (BusinessRules, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return BusinessRules{}, fmt.Errorf("could not load location for timezone %s: %w", cfg.Timezone, err)
	}
	if cfg.WorkingHoursStart >= cfg.WorkingHoursEnd {
		return BusinessRules{}, fmt.Errorf("working hours start (%d) must be before end (%d)",
			cfg.WorkingHoursStart, cfg.WorkingHoursEnd)
	}

	days := make([]time.Weekday, 0, len(cfg.WorkingDays))
	for _, d := range cfg.WorkingDays {
		if d < 0 || d > 6 {
			return BusinessRules{}, fmt.Errorf("invalid working day index: %d", d)
		}
		days = append(days, time.Weekday(d))
	}

	return BusinessRules{
		WorkingHoursStart: cfg.WorkingHoursStart,
		WorkingHoursEnd:   cfg.WorkingHoursEnd,
		WorkingDays:       days,
		Location:          location,
	}, nil
}

func (r BusinessRules) isWorkingDay(day time.Weekday) bool {
	return slices.Contains(r.WorkingDays, day)
}
