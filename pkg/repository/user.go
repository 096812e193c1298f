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

// UserRepository handles user-related database operations
type UserRepository struct {
	db *sqlx.DB
}

// userSQL represents a user for SQL operations
type userSQL struct {
	ID            int64     `db:"id"`
	Email         string    `db:"email"`
	Name          string    `db:"name"`
	Frequency     string    `db:"frequency"`
	CheckinEmails bool      `db:"checkin_emails"`
	SummaryEmails bool      `db:"summary_emails"`
	CreatedAt     time.Time `db:"created_at"`
}

func (u *userSQL) toDomain() domain.User {
	return domain.User{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Frequency:     domain.Frequency(u.Frequency),
		CheckinEmails: u.CheckinEmails,
		SummaryEmails: u.SummaryEmails,
		CreatedAt:     u.CreatedAt,
	}
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *sqlx.DB) *UserRepository {
	return &UserRepository{db: database}
}

// CreateUser inserts a new user, populating user.ID on success
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if user.Frequency == "" {
		user.Frequency = domain.FrequencyDaily
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	sqlUser := &userSQL{
		Email:         user.Email,
		Name:          user.Name,
		Frequency:     string(user.Frequency),
		CheckinEmails: user.CheckinEmails,
		SummaryEmails: user.SummaryEmails,
		CreatedAt:     user.CreatedAt,
	}

	query := `
		INSERT INTO users (email, name, frequency, checkin_emails, summary_emails, created_at)
		VALUES (:email, :name, :frequency, :checkin_emails, :summary_emails, :created_at)
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, sqlUser)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			if isUniqueError(err) {
				return &criticalError{err: fmt.Errorf("user %s: %w", user.Email, ErrDuplicate)}
			}
			return &criticalError{err: fmt.Errorf("create user: %w", err)}
		}
		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get last insert id: %w", err)}
		}
		user.ID = id
		return nil
	})
}

// GetUser retrieves a user by ID
func (r *UserRepository) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var row userSQL
	err := r.db.GetContext(ctx, &row, `SELECT * FROM users WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	user := row.toDomain()
	return &user, nil
}

// GetUserByEmail retrieves a user by email address
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row userSQL
	err := r.db.GetContext(ctx, &row, `SELECT * FROM users WHERE email = ?`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	user := row.toDomain()
	return &user, nil
}

// UpdateSettings updates the mutable notification preferences of a user.
// Returns ErrNotFound when the user does not exist, a settings update is a
// user-visible action and a silent no-op would hide the failure.
func (r *UserRepository) UpdateSettings(ctx context.Context, userID int64, settings domain.Settings) error {
	query := `
		UPDATE users
		SET frequency = ?, checkin_emails = ?, summary_emails = ?
		WHERE id = ?
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query,
			string(settings.Frequency), settings.CheckinEmails, settings.SummaryEmails, userID)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("update settings: %w", err)}
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
		}
		if affected == 0 {
			return &criticalError{err: fmt.Errorf("user %d: %w", userID, ErrNotFound)}
		}
		return nil
	})
}

// GetCheckinUsers returns all users opted into check-in nudge emails
func (r *UserRepository) GetCheckinUsers(ctx context.Context) ([]domain.User, error) {
	return r.usersWhere(ctx, "checkin_emails = 1")
}

// GetSummaryUsers returns all users opted into weekly summary emails
func (r *UserRepository) GetSummaryUsers(ctx context.Context) ([]domain.User, error) {
	return r.usersWhere(ctx, "summary_emails = 1")
}

func (r *UserRepository) usersWhere(ctx context.Context, cond string) ([]domain.User, error) {
	var rows []userSQL
	query := `SELECT * FROM users WHERE ` + cond + ` ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toDomain())
	}
	return users, nil
}
