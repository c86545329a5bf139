package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmtabor/studyarc/internal/contract"
)

// FormatReviewQueue renders the spaced-review queue.
func FormatReviewQueue(items []contract.ReviewItem, now time.Time) string {
	if len(items) == 0 {
		return RenderBox("Review", Dim("No reviews scheduled. Log study sessions to seed the queue."))
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		due := RelativeDateFrom(item.DueAt, now)
		if item.IsDueNow {
			due = StyleGreen.Render("Due now")
		}
		rows = append(rows, []string{
			item.Title,
			StylePurple.Render(item.StageLabel),
			due,
			Dim(string(item.Source)),
		})
	}

	table := RenderTable([]string{"Topic", "Stage", "Due", "Source"}, rows)

	dueCount := 0
	for _, item := range items {
		if item.IsDueNow {
			dueCount++
		}
	}
	summary := Dim(fmt.Sprintf("%d queued, %d due now", len(items), dueCount))

	return RenderBox("Review", strings.TrimRight(table, "\n")+"\n\n"+summary)
}
