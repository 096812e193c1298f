package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/resolved/pkg/domain"
)

// ResolutionRepository handles resolution-related database operations
type ResolutionRepository struct {
	db *sqlx.DB
}

// resolutionSQL represents a resolution for SQL operations
type resolutionSQL struct {
	ID          int64      `db:"id"`
	UserID      int64      `db:"user_id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Category    string     `db:"category"`
	AIFraming   string     `db:"ai_framing"`
	TargetDate  *time.Time `db:"target_date"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r *resolutionSQL) toDomain() domain.Resolution {
	return domain.Resolution{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Category:    domain.Category(r.Category),
		AIFraming:   r.AIFraming,
		TargetDate:  r.TargetDate,
		Status:      domain.Status(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// NewResolutionRepository creates a new resolution repository
func NewResolutionRepository(database *sqlx.DB) *ResolutionRepository {
	return &ResolutionRepository{db: database}
}

// Create inserts a new resolution, populating res.ID on success
func (r *ResolutionRepository) Create(ctx context.Context, res *domain.Resolution) error {
	if res.Status == "" {
		res.Status = domain.StatusActive
	}
	now := time.Now().UTC()
	if res.CreatedAt.IsZero() {
		res.CreatedAt = now
	}
	res.UpdatedAt = res.CreatedAt

	sqlRes := &resolutionSQL{
		UserID:      res.UserID,
		Title:       res.Title,
		Description: res.Description,
		Category:    string(res.Category),
		AIFraming:   res.AIFraming,
		TargetDate:  res.TargetDate,
		Status:      string(res.Status),
		CreatedAt:   res.CreatedAt,
		UpdatedAt:   res.UpdatedAt,
	}

	query := `
		INSERT INTO resolutions (user_id, title, description, category, ai_framing, target_date, status, created_at, updated_at)
		VALUES (:user_id, :title, :description, :category, :ai_framing, :target_date, :status, :created_at, :updated_at)
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, sqlRes)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("create resolution: %w", err)}
		}
		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get last insert id: %w", err)}
		}
		res.ID = id
		return nil
	})
}

// Get retrieves a resolution by ID scoped to its owner
func (r *ResolutionRepository) Get(ctx context.Context, userID, id int64) (*domain.Resolution, error) {
	var row resolutionSQL
	err := r.db.GetContext(ctx, &row, `SELECT * FROM resolutions WHERE id = ? AND user_id = ?`, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("resolution %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get resolution: %w", err)
	}
	res := row.toDomain()
	return &res, nil
}

// ListByUser retrieves a user's resolutions, optionally filtered by status
func (r *ResolutionRepository) ListByUser(ctx context.Context, userID int64, status domain.Status) ([]domain.Resolution, error) {
	var rows []resolutionSQL
	var err error
	if status == "" {
		err = r.db.SelectContext(ctx, &rows,
			`SELECT * FROM resolutions WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
	} else {
		err = r.db.SelectContext(ctx, &rows,
			`SELECT * FROM resolutions WHERE user_id = ? AND status = ? ORDER BY created_at DESC, id DESC`,
			userID, string(status))
	}
	if err != nil {
		return nil, fmt.Errorf("list resolutions: %w", err)
	}

	resolutions := make([]domain.Resolution, 0, len(rows))
	for _, row := range rows {
		resolutions = append(resolutions, row.toDomain())
	}
	return resolutions, nil
}

// ListActive retrieves a user's active resolutions, the only ones that
// participate in reminder computation
func (r *ResolutionRepository) ListActive(ctx context.Context, userID int64) ([]domain.Resolution, error) {
	return r.ListByUser(ctx, userID, domain.StatusActive)
}

// UpdateStatus changes the lifecycle status of a resolution. Returns
// ErrNotFound when no row matches the id/owner pair.
func (r *ResolutionRepository) UpdateStatus(ctx context.Context, userID, id int64, status domain.Status) error {
	query := `UPDATE resolutions SET status = ?, updated_at = ? WHERE id = ? AND user_id = ?`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query, string(status), time.Now().UTC(), id, userID)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("update resolution status: %w", err)}
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
		}
		if affected == 0 {
			return &criticalError{err: fmt.Errorf("resolution %d: %w", id, ErrNotFound)}
		}
		return nil
	})
}

// Update changes the descriptive fields of a resolution. Returns ErrNotFound
// when no row matches the id/owner pair.
func (r *ResolutionRepository) Update(ctx context.Context, userID, id int64, title, description string, targetDate *time.Time) error {
	query := `
		UPDATE resolutions
		SET title = ?, description = ?, target_date = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query, title, description, targetDate, time.Now().UTC(), id, userID)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("update resolution: %w", err)}
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
		}
		if affected == 0 {
			return &criticalError{err: fmt.Errorf("resolution %d: %w", id, ErrNotFound)}
		}
		return nil
	})
}
