// Package scheduler runs the periodic jobs of the backend.
package scheduler

import (
	"fmt"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DefaultReportSchedule creates the monthly reports at midnight on the
// first day of each month.
const DefaultReportSchedule = "0 0 1 * *"

// Scheduler manages all cron jobs.
type Scheduler struct {
	Cron *cron.Cron
	db   *gorm.DB
	now  func() time.Time
}

// New creates a Scheduler that runs its jobs on db.
func New(db *gorm.DB) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithLocation(time.UTC)),
		db:   db,
		now:  time.Now,
	}
}

// RegisterReports registers the monthly report job. An empty schedule
// disables the job.
func (s *Scheduler) RegisterReports(schedule string) error {
	if schedule == "" {
		log.Info().Msg("Monthly reports disabled")
		return nil
	}

	if _, err := s.Cron.AddFunc(schedule, s.reportTask); err != nil {
		return fmt.Errorf("register monthly report task: %w", err)
	}

	log.Debug().Str("schedule", schedule).Msg("Monthly reports registered")
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Int("jobs", len(s.Cron.Entries())).Msg("Scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info().Msg("Scheduler stopped")
}

// RunReportsNow creates the reports for the previous month immediately.
func (s *Scheduler) RunReportsNow() (int, error) {
	month := types.MonthOf(s.now().In(time.UTC)).AddDate(0, -1)
	return models.CreateMonthlyReports(s.db, month)
}

func (s *Scheduler) reportTask() {
	created, err := s.RunReportsNow()
	if err != nil {
		log.Error().Err(err).Msg("Monthly reports")
		return
	}

	log.Info().Int("created", created).Msg("Monthly reports")
}
