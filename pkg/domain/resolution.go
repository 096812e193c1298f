package domain

import "time"

// Status is a resolution lifecycle state
type Status string

// resolution lifecycle states, only active resolutions participate in reminders
const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// Valid reports if the status is one of the supported values
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// Category is an AI-suggested resolution category
type Category string

// allowed resolution categories
const (
	CategoryHealth        Category = "Health"
	CategoryFinance       Category = "Finance"
	CategoryLearning      Category = "Learning"
	CategoryRelationships Category = "Relationships"
	CategoryCareer        Category = "Career"
	CategoryPersonal      Category = "Personal"
)

// Categories lists all allowed categories
func Categories() []Category {
	return []Category{CategoryHealth, CategoryFinance, CategoryLearning,
		CategoryRelationships, CategoryCareer, CategoryPersonal}
}

// Resolution represents a tracked goal owned by a user.
// Category and AIFraming are populated best-effort by the AI collaborator,
// empty means no suggestion was available.
type Resolution struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Category    Category
	AIFraming   string
	TargetDate  *time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OverdueResolution is a derived view of a resolution that passed its
// reminder threshold. DaysSinceLog is nil when the resolution was never
// logged against.
type OverdueResolution struct {
	ID           int64
	Title        string
	DaysSinceLog *int
}
