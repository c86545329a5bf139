package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmtabor/studyarc/internal/domain"
)

func cat(name string, weight float64, current *float64) domain.GradeCategory {
	return domain.GradeCategory{ID: "id-" + name, CourseID: "c1", Category: name, Weight: weight, CurrentScore: current}
}

func TestWeightedGrade_PartiallyGradedNormalizesToScoredWeight(t *testing.T) {
	categories := []domain.GradeCategory{
		cat("Homework", 40, score(90)),
		cat("Final", 60, nil),
	}

	assert.InDelta(t, 90.0, WeightedGrade(categories), 1e-9)
}

func TestWeightedGrade_MixedScores(t *testing.T) {
	categories := []domain.GradeCategory{
		cat("Homework", 20, score(100)),
		cat("Midterm", 30, score(70)),
		cat("Final", 50, nil),
	}

	// (1.0*20 + 0.7*30) / 50 * 100 = 82
	assert.InDelta(t, 82.0, WeightedGrade(categories), 1e-9)
}

func TestWeightedGrade_NoScoredCategories(t *testing.T) {
	categories := []domain.GradeCategory{
		cat("Homework", 40, nil),
		cat("Final", 60, score(0)),
	}

	assert.Zero(t, WeightedGrade(categories))
}

func TestWeightedGrade_Empty(t *testing.T) {
	assert.Zero(t, WeightedGrade(nil))
}

func TestWhatIfGrade_SubstitutesFirstExamLikeCategory(t *testing.T) {
	categories := []domain.GradeCategory{
		cat("Homework", 20, score(100)),
		cat("Midterm Exam", 30, score(60)),
		cat("Final", 50, nil),
	}

	grade, name := WhatIfGrade(categories, 90)

	assert.Equal(t, "Midterm Exam", name)
	// (1.0*20 + 0.9*30) / 50 * 100 = 94
	assert.InDelta(t, 94.0, grade, 1e-9)
}

func TestWhatIfGrade_IncludesPreviouslyUnscoredExamCategory(t *testing.T) {
	categories := []domain.GradeCategory{
		cat("Homework", 40, score(90)),
		cat("Final", 60, nil),
	}

	grade, name := WhatIfGrade(categories, 80)

	assert.Equal(t, "Final", name)
	// (0.9*40 + 0.8*60) / 100 * 100 = 84
	assert.InDelta(t, 84.0, grade, 1e-9)
}

func TestWhatIfGrade_NoExamCategoryFallsBackToWeighted(t *testing.T) {
	categories := []domain.GradeCategory{
		cat("Homework", 50, score(80)),
		cat("Participation", 50, score(100)),
	}

	grade, name := WhatIfGrade(categories, 0)

	assert.Empty(t, name)
	assert.InDelta(t, 90.0, grade, 1e-9)
}

func TestWhatIfGrade_MatchIsCaseInsensitive(t *testing.T) {
	categories := []domain.GradeCategory{
		cat("FINAL PROJECT", 100, score(50)),
	}

	grade, name := WhatIfGrade(categories, 100)

	assert.Equal(t, "FINAL PROJECT", name)
	assert.InDelta(t, 100.0, grade, 1e-9)
}

func TestLetter_Boundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{95, "A"}, {93, "A"}, {90, "A-"}, {89.9, "B+"}, {87, "B+"},
		{83, "B"}, {80, "B-"}, {77, "C+"}, {73, "C"}, {72.9, "Below C"}, {0, "Below C"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Letter(tt.pct), "%.1f%%", tt.pct)
	}
}
