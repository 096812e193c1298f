package digest

import (
	"fmt"
	"strings"

	"github.com/umputun/resolved/pkg/domain"
)

// buildCheckinEmail renders the nudge digest listing all overdue resolutions.
// Returns empty subject and body when there is nothing overdue.
func buildCheckinEmail(name string, overdue []domain.OverdueResolution, appURL string) (subject, text string) {
	if len(overdue) == 0 {
		return "", ""
	}
	if name == "" {
		name = "there"
	}

	lines := make([]string, 0, len(overdue))
	for _, r := range overdue {
		when := "never logged"
		if r.DaysSinceLog != nil {
			when = fmt.Sprintf("%d days since last log", *r.DaysSinceLog)
		}
		lines = append(lines, fmt.Sprintf("* %s (%s)\n  %s/resolutions/%d", r.Title, when, appURL, r.ID))
	}

	subject = "Time to check in on your resolutions"
	text = fmt.Sprintf("Hi %s,\n\nYou haven't logged progress on these resolutions recently:\n\n%s\n\n"+
		"Keep going - small consistent updates add up.\n\n%s/dashboard",
		name, strings.Join(lines, "\n\n"), appURL)
	return subject, text
}

// buildSummaryEmail renders the weekly recap email
func buildSummaryEmail(name, summary, appURL string) (subject, text string) {
	if name == "" {
		name = "there"
	}
	subject = "Your weekly resolution summary"
	text = fmt.Sprintf("Hi %s,\n\nHere's your week in review:\n\n%s\n\n%s/dashboard", name, summary, appURL)
	return subject, text
}
