package domain

import "time"

// Frequency is a user-configured check-in cadence
type Frequency string

// supported check-in frequencies
const (
	FrequencyDaily      Frequency = "daily"
	FrequencyEvery3Days Frequency = "every_3_days"
	FrequencyWeekly     Frequency = "weekly"
)

// Valid reports if the frequency is one of the supported values
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyEvery3Days, FrequencyWeekly:
		return true
	}
	return false
}

// User represents an account with notification preferences.
// Name is optional, empty means the user never set a display name.
type User struct {
	ID            int64
	Email         string
	Name          string
	Frequency     Frequency
	CheckinEmails bool
	SummaryEmails bool
	CreatedAt     time.Time
}

// Settings holds the mutable part of a user's preferences
type Settings struct {
	Frequency     Frequency
	CheckinEmails bool
	SummaryEmails bool
}
