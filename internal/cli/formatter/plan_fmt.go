package formatter

import (
	"fmt"
	"strings"

	"github.com/jmtabor/studyarc/internal/contract"
)

// FormatTodayPlan renders the ranked plan for the day.
func FormatTodayPlan(items []contract.PlanItem) string {
	if len(items) == 0 {
		return RenderBox("Today", Dim("Nothing urgent. Import a syllabus or log some grades to get a plan."))
	}

	var b strings.Builder
	for i, item := range items {
		marker := PriorityColor(item.Priority).Render(fmt.Sprintf("%2d.", i+1))
		b.WriteString(fmt.Sprintf("%s %s %s\n", marker, Bold(item.Title), typeBadge(item.Type)))
		b.WriteString(fmt.Sprintf("    %s\n", Dim(item.Detail)))
	}
	return RenderBox("Today", strings.TrimRight(b.String(), "\n"))
}

func typeBadge(t contract.PlanItemType) string {
	switch t {
	case contract.PlanItemEvent:
		return StyleRed.Render("[deadline]")
	case contract.PlanItemGrade:
		return StyleYellow.Render("[recover]")
	case contract.PlanItemRoadmap:
		return StyleBlue.Render("[roadmap]")
	default:
		return ""
	}
}
