package sitecrawl

import (
	"fmt"
	"strings"
)

// FormatRuns formats runs as one line each for listing.
// Unfinished runs show "-" in place of the finish time.
func FormatRuns(runs []*Run) string {
	if len(runs) == 0 {
		return ""
	}

	lines := make([]string, 0, len(runs))
	for _, r := range runs {
		finished := "-"
		if !r.FinishedAt.IsZero() {
			finished = r.FinishedAt.Format("2006-01-02 15:04")
		}
		lines = append(lines, fmt.Sprintf("%s  %s  %d pages  %s",
			r.ID, r.BaseURL, r.Pages, finished))
	}

	return strings.Join(lines, "\n")
}
