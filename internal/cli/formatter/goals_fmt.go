package formatter

import (
	"fmt"
	"strings"

	"github.com/jmtabor/studyarc/internal/contract"
)

// FormatGoalReport renders weekly goal progress, the study streak, and
// the recovery nudge.
func FormatGoalReport(report *contract.GoalReport) string {
	var b strings.Builder

	for _, g := range report.Goals {
		pct := 0.0
		if g.Target > 0 {
			pct = g.Current / g.Target
		}
		b.WriteString(fmt.Sprintf("%-34s %s  %s\n",
			g.Label,
			RenderProgress(pct, 16),
			Dim(fmt.Sprintf("%g / %g", g.Current, g.Target)),
		))
	}

	b.WriteString("\n")
	switch {
	case report.StreakDays > 0:
		b.WriteString(fmt.Sprintf("%s %s\n",
			StyleGreen.Render(fmt.Sprintf("🔥 %d-day streak", report.StreakDays)),
			Dim("keep it going")))
	case report.RecoveryAvailable:
		b.WriteString(StyleYellow.Render("Streak broken, but you studied 3 of the last 5 days. One session today restarts it.") + "\n")
	default:
		b.WriteString(Dim("No active streak. Log a session to start one.") + "\n")
	}

	return RenderBox("Weekly Goals", strings.TrimRight(b.String(), "\n"))
}
