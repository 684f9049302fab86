package app

import (
	"fmt"
	"strings"
	"time"

	"trendScout/internal/domain"
)

// FormatSummary renders an analysis result as a plain-text report for CLI
// output.
func FormatSummary(res *domain.AnalysisResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Swing points: %d\n", len(res.SwingPoints))
	fmt.Fprintf(&sb, "Support lines: %d\n", len(res.SupportLines))
	fmt.Fprintf(&sb, "Resistance lines: %d\n", len(res.ResistanceLines))

	writeLines := func(title string, lines []*domain.TrendLine) {
		if len(lines) == 0 {
			return
		}
		fmt.Fprintf(&sb, "\n%s:\n", title)
		for _, l := range lines {
			status := "holding"
			if l.IsBroken {
				status = "BROKEN"
			}
			fmt.Fprintf(&sb, "  %s -> %s  %.4f -> %.4f  slope=%+.6f/s  [%s]\n",
				time.Unix(l.StartPoint.Time, 0).UTC().Format("2006-01-02 15:04"),
				time.Unix(l.EndPoint.Time, 0).UTC().Format("2006-01-02 15:04"),
				l.StartPoint.Price, l.EndPoint.Price, l.Slope, status)
		}
	}

	writeLines("Support", res.SupportLines)
	writeLines("Resistance", res.ResistanceLines)

	return sb.String()
}
