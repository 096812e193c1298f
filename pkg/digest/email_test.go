package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/resolved/pkg/domain"
)

func TestBuildCheckinEmail(t *testing.T) {
	days := 5

	t.Run("renders overdue items with links", func(t *testing.T) {
		overdue := []domain.OverdueResolution{
			{ID: 10, Title: "Run daily", DaysSinceLog: &days},
			{ID: 11, Title: "Learn guitar"},
		}
		subject, text := buildCheckinEmail("Alice", overdue, "https://resolved.example.com")
		assert.Equal(t, "Time to check in on your resolutions", subject)
		assert.Contains(t, text, "Hi Alice,")
		assert.Contains(t, text, "* Run daily (5 days since last log)\n  https://resolved.example.com/resolutions/10")
		assert.Contains(t, text, "* Learn guitar (never logged)\n  https://resolved.example.com/resolutions/11")
		assert.Contains(t, text, "https://resolved.example.com/dashboard")
	})

	t.Run("falls back to generic greeting", func(t *testing.T) {
		overdue := []domain.OverdueResolution{{ID: 10, Title: "Run daily", DaysSinceLog: &days}}
		_, text := buildCheckinEmail("", overdue, "https://resolved.example.com")
		assert.Contains(t, text, "Hi there,")
	})

	t.Run("nothing overdue renders nothing", func(t *testing.T) {
		subject, text := buildCheckinEmail("Alice", nil, "https://resolved.example.com")
		assert.Empty(t, subject)
		assert.Empty(t, text)
	})
}

func TestBuildSummaryEmail(t *testing.T) {
	subject, text := buildSummaryEmail("Alice", "two runs logged", "https://resolved.example.com")
	assert.Equal(t, "Your weekly resolution summary", subject)
	assert.Contains(t, text, "Hi Alice,")
	assert.Contains(t, text, "two runs logged")
	assert.Contains(t, text, "https://resolved.example.com/dashboard")

	_, text = buildSummaryEmail("", "two runs logged", "https://resolved.example.com")
	assert.Contains(t, text, "Hi there,")
}
