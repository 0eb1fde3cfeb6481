package enrich

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs EnrichAll for the previous calendar day on a cron schedule.
type Scheduler struct {
	cron   *cron.Cron
	svc    *Service
	spec   string
	logger *slog.Logger
	now    func() time.Time
}

// NewScheduler creates a scheduler with the given cron spec.
func NewScheduler(svc *Service, spec string, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		svc:    svc,
		spec:   spec,
		logger: logger,
		now:    time.Now,
	}
}

// Start registers the enrichment job and starts the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.runOnce)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("enrichment scheduler started", "schedule", s.spec)
	return nil
}

// Stop gracefully stops the cron loop.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("enrichment scheduler stopped")
}

func (s *Scheduler) runOnce() {
	day := yesterday(s.now())
	res, err := s.svc.EnrichAll(context.Background(), day)
	if err != nil {
		s.logger.Error("scheduled enrichment failed",
			"date", day.Format("2006-01-02"), "error", err)
		return
	}
	s.logger.Info("scheduled enrichment complete",
		"date", day.Format("2006-01-02"),
		"enriched", len(res.Enriched),
		"skipped", len(res.Skipped),
	)
}
