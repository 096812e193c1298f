package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/resolved/pkg/domain"
)

// LogRepository handles progress-log database operations. Logs are immutable,
// there is no update path.
type LogRepository struct {
	db *sqlx.DB
}

// logSQL represents a progress log for SQL operations
type logSQL struct {
	ID           int64     `db:"id"`
	ResolutionID int64     `db:"resolution_id"`
	UserID       int64     `db:"user_id"`
	Note         string    `db:"note"`
	AISentiment  string    `db:"ai_sentiment"`
	AIProgress   *int      `db:"ai_progress"`
	AIFeedback   string    `db:"ai_feedback"`
	CreatedAt    time.Time `db:"created_at"`

	// joined data, populated by queries only
	ResolutionTitle string `db:"resolution_title"`
}

func (l *logSQL) toDomain() domain.ProgressLog {
	return domain.ProgressLog{
		ID:           l.ID,
		ResolutionID: l.ResolutionID,
		UserID:       l.UserID,
		Note:         l.Note,
		AISentiment:  domain.Sentiment(l.AISentiment),
		AIProgress:   l.AIProgress,
		AIFeedback:   l.AIFeedback,
		CreatedAt:    l.CreatedAt,
	}
}

// NewLogRepository creates a new progress-log repository
func NewLogRepository(database *sqlx.DB) *LogRepository {
	return &LogRepository{db: database}
}

// Create inserts a new progress log, populating log.ID on success
func (r *LogRepository) Create(ctx context.Context, log *domain.ProgressLog) error {
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}

	sqlLog := &logSQL{
		ResolutionID: log.ResolutionID,
		UserID:       log.UserID,
		Note:         log.Note,
		AISentiment:  string(log.AISentiment),
		AIProgress:   log.AIProgress,
		AIFeedback:   log.AIFeedback,
		CreatedAt:    log.CreatedAt,
	}

	query := `
		INSERT INTO progress_logs (resolution_id, user_id, note, ai_sentiment, ai_progress, ai_feedback, created_at)
		VALUES (:resolution_id, :user_id, :note, :ai_sentiment, :ai_progress, :ai_feedback, :created_at)
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, sqlLog)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("create progress log: %w", err)}
		}
		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get last insert id: %w", err)}
		}
		log.ID = id
		return nil
	})
}

// ListByResolution retrieves the most recent logs for a resolution, newest
// first, limited to limit rows (0 means no limit)
func (r *LogRepository) ListByResolution(ctx context.Context, resolutionID int64, limit int) ([]domain.ProgressLog, error) {
	query := `SELECT * FROM progress_logs WHERE resolution_id = ? ORDER BY created_at DESC, id DESC`
	args := []interface{}{resolutionID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	var rows []logSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	logs := make([]domain.ProgressLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, row.toDomain())
	}
	return logs, nil
}

// LastLogTimes returns the most recent log timestamp per resolution in one
// round-trip. Resolutions with no logs are absent from the map. The newest
// row is picked with a self-join instead of MAX(created_at) because the
// driver loses the declared column type on an aggregate expression and the
// result would no longer scan into time.Time.
func (r *LogRepository) LastLogTimes(ctx context.Context, resolutionIDs []int64) (map[int64]time.Time, error) {
	if len(resolutionIDs) == 0 {
		return map[int64]time.Time{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT p.resolution_id, p.created_at
		FROM progress_logs p
		WHERE p.resolution_id IN (?)
		  AND p.id = (SELECT pl.id FROM progress_logs pl
		              WHERE pl.resolution_id = p.resolution_id
		              ORDER BY pl.created_at DESC, pl.id DESC LIMIT 1)
	`, resolutionIDs)
	if err != nil {
		return nil, fmt.Errorf("build last log query: %w", err)
	}

	var rows []struct {
		ResolutionID int64     `db:"resolution_id"`
		CreatedAt    time.Time `db:"created_at"`
	}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("last log times: %w", err)
	}

	result := make(map[int64]time.Time, len(rows))
	for _, row := range rows {
		result[row.ResolutionID] = row.CreatedAt
	}
	return result, nil
}

// ListSince retrieves a user's logs created at or after the given instant,
// oldest first, joined with their resolution titles
func (r *LogRepository) ListSince(ctx context.Context, userID int64, since time.Time) ([]domain.LogWithTitle, error) {
	query := `
		SELECT l.*, res.title AS resolution_title
		FROM progress_logs l
		JOIN resolutions res ON res.id = l.resolution_id
		WHERE l.user_id = ? AND l.created_at >= ?
		ORDER BY l.created_at ASC, l.id ASC
	`

	var rows []logSQL
	if err := r.db.SelectContext(ctx, &rows, query, userID, since); err != nil {
		return nil, fmt.Errorf("list logs since: %w", err)
	}

	logs := make([]domain.LogWithTitle, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, domain.LogWithTitle{ProgressLog: row.toDomain(), ResolutionTitle: row.ResolutionTitle})
	}
	return logs, nil
}
