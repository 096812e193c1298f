package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/resolved/pkg/domain"
)

// SummaryRepository handles weekly-summary database operations, the table is
// append-only
type SummaryRepository struct {
	db *sqlx.DB
}

// summarySQL represents a weekly summary for SQL operations
type summarySQL struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Summary   string    `db:"summary"`
	CreatedAt time.Time `db:"created_at"`
}

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(database *sqlx.DB) *SummaryRepository {
	return &SummaryRepository{db: database}
}

// Create appends a new weekly summary, populating summary.ID on success
func (r *SummaryRepository) Create(ctx context.Context, summary *domain.WeeklySummary) error {
	if summary.CreatedAt.IsZero() {
		summary.CreatedAt = time.Now().UTC()
	}

	sqlSummary := &summarySQL{
		UserID:    summary.UserID,
		Summary:   summary.Summary,
		CreatedAt: summary.CreatedAt,
	}

	query := `
		INSERT INTO weekly_summaries (user_id, summary, created_at)
		VALUES (:user_id, :summary, :created_at)
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, sqlSummary)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("create summary: %w", err)}
		}
		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get last insert id: %w", err)}
		}
		summary.ID = id
		return nil
	})
}

// ListByUser retrieves a user's summaries, newest first, limited to limit
// rows (0 means no limit)
func (r *SummaryRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.WeeklySummary, error) {
	query := `SELECT * FROM weekly_summaries WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	args := []interface{}{userID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	var rows []summarySQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}

	summaries := make([]domain.WeeklySummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.WeeklySummary{
			ID:        row.ID,
			UserID:    row.UserID,
			Summary:   row.Summary,
			CreatedAt: row.CreatedAt,
		})
	}
	return summaries, nil
}
