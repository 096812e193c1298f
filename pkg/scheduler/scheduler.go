// Package scheduler triggers the digest jobs on fixed intervals. Each job
// type runs in its own single goroutine, so at most one invocation of a job
// is ever in flight.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/digester.go -pkg mocks -skip-ensure -fmt goimports . Digester

// Digester interface for batch digest jobs
type Digester interface {
	CheckIn(ctx context.Context) (int, error)
	WeeklySummary(ctx context.Context) (int, error)
}

// Scheduler manages periodic digest runs
type Scheduler struct {
	digester        Digester
	checkinInterval time.Duration
	summaryInterval time.Duration
	wg              sync.WaitGroup
	cancel          context.CancelFunc
}

// Config holds scheduler configuration
type Config struct {
	CheckinInterval time.Duration
	SummaryInterval time.Duration
}

// NewScheduler creates a new scheduler instance
func NewScheduler(digester Digester, cfg Config) *Scheduler {
	if cfg.CheckinInterval == 0 {
		cfg.CheckinInterval = 24 * time.Hour
	}
	if cfg.SummaryInterval == 0 {
		cfg.SummaryInterval = 168 * time.Hour
	}
	return &Scheduler{
		digester:        digester,
		checkinInterval: cfg.CheckinInterval,
		summaryInterval: cfg.SummaryInterval,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.checkinWorker(ctx)

	s.wg.Add(1)
	go s.summaryWorker(ctx)

	lgr.Printf("[INFO] scheduler started with check-in interval %v, summary interval %v",
		s.checkinInterval, s.summaryInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// checkinWorker periodically runs the check-in digest
func (s *Scheduler) checkinWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.checkinInterval)
	defer ticker.Stop()

	// run immediately on start
	s.runCheckin(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runCheckin(ctx)
		}
	}
}

// summaryWorker periodically runs the weekly summary digest
func (s *Scheduler) summaryWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.summaryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runSummary(ctx)
		}
	}
}

func (s *Scheduler) runCheckin(ctx context.Context) {
	sent, err := s.digester.CheckIn(ctx)
	if err != nil {
		lgr.Printf("[ERROR] check-in digest failed: %v", err)
		return
	}
	lgr.Printf("[INFO] check-in digest sent %d emails", sent)
}

func (s *Scheduler) runSummary(ctx context.Context) {
	processed, err := s.digester.WeeklySummary(ctx)
	if err != nil {
		lgr.Printf("[ERROR] weekly summary digest failed: %v", err)
		return
	}
	lgr.Printf("[INFO] weekly summary digest processed %d users", processed)
}

// CheckInNow triggers an immediate check-in digest run
func (s *Scheduler) CheckInNow(ctx context.Context) (int, error) {
	return s.digester.CheckIn(ctx)
}

// WeeklySummaryNow triggers an immediate weekly summary digest run
func (s *Scheduler) WeeklySummaryNow(ctx context.Context) (int, error) {
	return s.digester.WeeklySummary(ctx)
}
