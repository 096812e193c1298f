package domain

import "time"

// Sentiment is an AI-derived tone of a progress note
type Sentiment string

// recognized sentiments
const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Valid reports if the sentiment is one of the recognized values
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// ProgressLog is an immutable progress note against a resolution.
// AI annotations are optional, empty/nil means enrichment was unavailable
// when the log was created.
type ProgressLog struct {
	ID           int64
	ResolutionID int64
	UserID       int64
	Note         string
	AISentiment  Sentiment
	AIProgress   *int
	AIFeedback   string
	CreatedAt    time.Time
}

// LogWithTitle is a progress log joined with its resolution title,
// used by the weekly summary digest.
type LogWithTitle struct {
	ProgressLog
	ResolutionTitle string
}

// WeeklySummary is an append-only AI-generated recap of a user's week
type WeeklySummary struct {
	ID        int64
	UserID    int64
	Summary   string
	CreatedAt time.Time
}

// EnrichmentResult is the normalized outcome of AI progress-note analysis
type EnrichmentResult struct {
	Sentiment        Sentiment
	ProgressEstimate int // 0..100
	Feedback         string
}

// CategoryResult is the normalized outcome of AI category suggestion.
// Category is empty when the model offered nothing usable.
type CategoryResult struct {
	Category Category
	Framing  string
}
