package planner

import (
	"strings"

	"github.com/jmtabor/studyarc/internal/domain"
)

// Category names matched (case-insensitively) when picking the target of
// a what-if simulation. First category containing any keyword wins.
var examKeywords = []string{"final", "exam", "midterm"}

// WeightedGrade computes the weighted current grade over the scored
// categories only: unscored (nil or zero) categories are excluded from
// both numerator and denominator, so a partially-graded course is
// normalized to what has actually been recorded. Returns 0 when nothing
// is scored.
func WeightedGrade(categories []domain.GradeCategory) float64 {
	return weightedGradeWith(categories, -1, 0)
}

// WhatIfGrade recomputes the weighted grade with a hypothetical score
// substituted into the first exam-like category. Returns the grade and
// the name of the substituted category; when no exam-like category
// exists the plain weighted grade and an empty name are returned.
func WhatIfGrade(categories []domain.GradeCategory, hypothetical float64) (float64, string) {
	idx := examCategoryIndex(categories)
	if idx < 0 {
		return WeightedGrade(categories), ""
	}
	return weightedGradeWith(categories, idx, hypothetical), categories[idx].Category
}

func weightedGradeWith(categories []domain.GradeCategory, overrideIdx int, overrideScore float64) float64 {
	var weightedSum, totalWeight float64
	for i, c := range categories {
		score := domain.Float64FromPtrWithDefault(0, c.CurrentScore)
		if i == overrideIdx {
			score = overrideScore
		}
		if score > 0 {
			weightedSum += score / 100 * c.Weight
			totalWeight += c.Weight
		}
	}
	if totalWeight <= 0 {
		return 0
	}
	return weightedSum / totalWeight * 100
}

func examCategoryIndex(categories []domain.GradeCategory) int {
	for i, c := range categories {
		lower := strings.ToLower(c.Category)
		for _, kw := range examKeywords {
			if strings.Contains(lower, kw) {
				return i
			}
		}
	}
	return -1
}

// Letter maps a percentage grade to the display letter used across the UI.
func Letter(pct float64) string {
	switch {
	case pct >= 93:
		return "A"
	case pct >= 90:
		return "A-"
	case pct >= 87:
		return "B+"
	case pct >= 83:
		return "B"
	case pct >= 80:
		return "B-"
	case pct >= 77:
		return "C+"
	case pct >= 73:
		return "C"
	default:
		return "Below C"
	}
}
