// Package digest implements the batch notification jobs: the check-in nudge
// digest and the weekly summary digest. Both iterate opted-in users and treat
// every per-user failure as "log and skip", one user can never abort the
// batch or affect another user's outcome.
package digest

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/resolved/pkg/domain"
	"github.com/umputun/resolved/pkg/llm"
	"github.com/umputun/resolved/pkg/reminder"
)

//go:generate moq -out mocks/stores.go -pkg mocks -skip-ensure -fmt goimports . UserStore ResolutionStore LogStore SummaryStore
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer
//go:generate moq -out mocks/sender.go -pkg mocks -skip-ensure -fmt goimports . Sender

// UserStore provides user queries for digest jobs
type UserStore interface {
	GetCheckinUsers(ctx context.Context) ([]domain.User, error)
	GetSummaryUsers(ctx context.Context) ([]domain.User, error)
}

// ResolutionStore provides resolution queries for digest jobs
type ResolutionStore interface {
	ListActive(ctx context.Context, userID int64) ([]domain.Resolution, error)
}

// LogStore provides progress-log queries for digest jobs
type LogStore interface {
	LastLogTimes(ctx context.Context, resolutionIDs []int64) (map[int64]time.Time, error)
	ListSince(ctx context.Context, userID int64, since time.Time) ([]domain.LogWithTitle, error)
}

// SummaryStore persists generated weekly summaries
type SummaryStore interface {
	Create(ctx context.Context, summary *domain.WeeklySummary) error
}

// Summarizer generates the weekly recap text
type Summarizer interface {
	WeeklySummary(ctx context.Context, req llm.SummaryRequest) (string, error)
}

// Sender delivers a single email
type Sender interface {
	Send(ctx context.Context, to, subject, text string) error
}

// Params holds all dependencies for the digester
type Params struct {
	Users       UserStore
	Resolutions ResolutionStore
	Logs        LogStore
	Summaries   SummaryStore
	Summarizer  Summarizer
	Sender      Sender

	AppURL     string
	MaxWorkers int
	NowFunc    func() time.Time // defaults to time.Now, injectable for tests
}

// Digester runs the batch notification jobs
type Digester struct {
	users       UserStore
	resolutions ResolutionStore
	logs        LogStore
	summaries   SummaryStore
	summarizer  Summarizer
	sender      Sender

	appURL     string
	maxWorkers int
	now        func() time.Time
}

// NewDigester creates a digester from params
func NewDigester(p Params) *Digester {
	if p.MaxWorkers == 0 {
		p.MaxWorkers = 5
	}
	if p.NowFunc == nil {
		p.NowFunc = time.Now
	}
	return &Digester{
		users:       p.Users,
		resolutions: p.Resolutions,
		logs:        p.Logs,
		summaries:   p.Summaries,
		summarizer:  p.Summarizer,
		sender:      p.Sender,
		appURL:      p.AppURL,
		maxWorkers:  p.MaxWorkers,
		now:         p.NowFunc,
	}
}

// CheckIn runs the check-in digest: for every user opted into nudges it
// computes overdue resolutions via the reminder policy and sends a single
// digest email listing them. Returns the number of successful sends.
func (d *Digester) CheckIn(ctx context.Context) (int, error) {
	users, err := d.users.GetCheckinUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("get check-in users: %w", err)
	}
	if len(users) == 0 {
		lgr.Printf("[INFO] check-in digest: no opted-in users")
		return 0, nil
	}

	lgr.Printf("[INFO] check-in digest: processing %d users", len(users))

	// per-user work is independent, bounded worker pool with each closure
	// isolating its own failures
	var sent int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.maxWorkers)
	for _, user := range users {
		g.Go(func() error {
			if d.checkinUser(gctx, user) {
				atomic.AddInt64(&sent, 1)
			}
			return nil
		})
	}
	_ = g.Wait() // closures never return errors

	lgr.Printf("[INFO] check-in digest completed, sent %d", sent)
	return int(sent), nil
}

// checkinUser handles a single user, reports if a digest email went out
func (d *Digester) checkinUser(ctx context.Context, user domain.User) bool {
	resolutions, err := d.resolutions.ListActive(ctx, user.ID)
	if err != nil {
		lgr.Printf("[WARN] check-in digest: list resolutions for user %d: %v", user.ID, err)
		return false
	}
	if len(resolutions) == 0 {
		return false
	}

	ids := make([]int64, 0, len(resolutions))
	for _, res := range resolutions {
		ids = append(ids, res.ID)
	}
	lastLogs, err := d.logs.LastLogTimes(ctx, ids)
	if err != nil {
		lgr.Printf("[WARN] check-in digest: last log times for user %d: %v", user.ID, err)
		return false
	}

	now := d.now()
	var overdue []domain.OverdueResolution
	for _, res := range resolutions {
		var lastLog *time.Time
		if t, ok := lastLogs[res.ID]; ok {
			lastLog = &t
		}
		if !reminder.NeedsReminder(lastLog, user.Frequency, now) {
			continue
		}
		item := domain.OverdueResolution{ID: res.ID, Title: res.Title}
		if lastLog != nil {
			days := reminder.DaysSince(*lastLog, now)
			item.DaysSinceLog = &days
		}
		overdue = append(overdue, item)
	}
	if len(overdue) == 0 {
		return false
	}

	if user.Email == "" {
		lgr.Printf("[WARN] check-in digest: user %d has no deliverable address", user.ID)
		return false
	}

	subject, text := buildCheckinEmail(user.Name, overdue, d.appURL)
	if err := d.sender.Send(ctx, user.Email, subject, text); err != nil {
		lgr.Printf("[WARN] check-in digest: send to user %d failed: %v", user.ID, err)
		return false
	}

	lgr.Printf("[DEBUG] check-in digest: nudged user %d about %d resolutions", user.ID, len(overdue))
	return true
}

// WeeklySummary runs the weekly digest: for every user opted into summaries
// it collects this week's logs, generates a recap, persists it and emails it.
// Returns the number of users whose summary was generated and persisted.
func (d *Digester) WeeklySummary(ctx context.Context) (int, error) {
	users, err := d.users.GetSummaryUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("get summary users: %w", err)
	}

	lgr.Printf("[INFO] weekly digest: processing %d users", len(users))

	processed := 0
	weekStart := reminder.WeekStart(d.now())
	for _, user := range users {
		if d.summarizeUser(ctx, user, weekStart) {
			processed++
		}
	}

	lgr.Printf("[INFO] weekly digest completed, processed %d", processed)
	return processed, nil
}

// summarizeUser handles a single user, reports if a summary was persisted
func (d *Digester) summarizeUser(ctx context.Context, user domain.User, weekStart time.Time) bool {
	logs, err := d.logs.ListSince(ctx, user.ID, weekStart)
	if err != nil {
		lgr.Printf("[WARN] weekly digest: list logs for user %d: %v", user.ID, err)
		return false
	}
	if len(logs) == 0 {
		return false
	}

	summary, err := d.summarizer.WeeklySummary(ctx, llm.SummaryRequest{UserName: user.Name, Logs: logs})
	if err != nil {
		lgr.Printf("[WARN] weekly digest: summarize user %d: %v", user.ID, err)
		return false
	}
	if summary == "" {
		lgr.Printf("[DEBUG] weekly digest: empty summary for user %d, skipped", user.ID)
		return false
	}

	if err := d.summaries.Create(ctx, &domain.WeeklySummary{UserID: user.ID, Summary: summary}); err != nil {
		lgr.Printf("[WARN] weekly digest: persist summary for user %d: %v", user.ID, err)
		return false
	}

	// email is best-effort once the summary is persisted
	if user.Email == "" {
		lgr.Printf("[WARN] weekly digest: user %d has no deliverable address", user.ID)
		return true
	}
	subject, text := buildSummaryEmail(user.Name, summary, d.appURL)
	if err := d.sender.Send(ctx, user.Email, subject, text); err != nil {
		lgr.Printf("[WARN] weekly digest: send to user %d failed: %v", user.ID, err)
	}

	return true
}
