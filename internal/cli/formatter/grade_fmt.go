package formatter

import (
	"fmt"
	"strings"

	"github.com/jmtabor/studyarc/internal/contract"
	"github.com/jmtabor/studyarc/internal/domain"
)

// FormatGradeProjection renders the weighted standing and any what-if result.
func FormatGradeProjection(courseName string, proj *contract.GradeProjection) string {
	var b strings.Builder

	grade := GradeColor(proj.WeightedGrade).Render(fmt.Sprintf("%.1f%%", proj.WeightedGrade))
	b.WriteString(fmt.Sprintf("Current standing: %s %s\n", grade, Bold("("+proj.Letter+")")))

	if proj.WhatIfCategory != "" {
		whatIf := GradeColor(proj.WhatIfGrade).Render(fmt.Sprintf("%.1f%%", proj.WhatIfGrade))
		b.WriteString(fmt.Sprintf("With the hypothetical %s score: %s %s\n",
			Bold(proj.WhatIfCategory), whatIf, Bold("("+proj.WhatIfLetter+")")))
	}

	return RenderBox(courseName, strings.TrimRight(b.String(), "\n"))
}

// FormatGradeCategories renders the weight table for one course.
func FormatGradeCategories(categories []*domain.GradeCategory) string {
	if len(categories) == 0 {
		return Dim("No grade categories recorded.")
	}

	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		score := Dim("—")
		if c.CurrentScore != nil {
			score = GradeColor(*c.CurrentScore).Render(fmt.Sprintf("%.1f%%", *c.CurrentScore))
		}
		rows = append(rows, []string{
			c.Category,
			fmt.Sprintf("%g%%", c.Weight),
			score,
			Dim(c.ID[:8]),
		})
	}
	return RenderTable([]string{"Category", "Weight", "Score", "ID"}, rows)
}
