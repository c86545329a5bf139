package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSchema() *SyllabusSchema {
	return &SyllabusSchema{
		Course: CourseImport{Name: "Organic Chemistry"},
		Dates: []DateImport{
			{Title: "Midterm Exam", Date: "2026-10-15", EventType: "midterm", IsHighStakes: true},
			{Title: "Problem Set 1", EventType: "assignment"},
		},
		GradingWeights: []WeightImport{
			{Category: "Homework", Weight: 20},
			{Category: "Final Exam", Weight: 40},
		},
		Readings: []ReadingImport{
			{Title: "Molecular Orbitals", Chapter: "Ch. 3", DueDate: "2026-09-20"},
		},
		Roadmap: []RoadmapImport{
			{WeekNumber: 1, FocusArea: "Bonding", Tasks: []string{"Read chapter 1"}, EffortLevel: "low"},
		},
	}
}

func TestValidateSyllabusSchema_Valid(t *testing.T) {
	errs := ValidateSyllabusSchema(validSchema())
	assert.Empty(t, errs)
}

func TestValidateSyllabusSchema_MissingCourseName(t *testing.T) {
	schema := validSchema()
	schema.Course.Name = ""

	errs := ValidateSyllabusSchema(schema)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "course.name")
}

func TestValidateSyllabusSchema_BadEventTypeAndDate(t *testing.T) {
	schema := validSchema()
	schema.Dates = append(schema.Dates,
		DateImport{Title: "Party", EventType: "party"},
		DateImport{Title: "Quiz", Date: "sometime in October"},
	)

	errs := ValidateSyllabusSchema(schema)
	assert.Len(t, errs, 2)
}

func TestValidateSyllabusSchema_WeightBounds(t *testing.T) {
	schema := validSchema()
	schema.GradingWeights = []WeightImport{
		{Category: "Homework", Weight: 0},
		{Category: "Labs", Weight: 120},
	}

	errs := ValidateSyllabusSchema(schema)
	// Both out-of-range weights, plus the 120 pushing the sum over 100.
	assert.Len(t, errs, 3)
}

func TestValidateSyllabusSchema_WeightSumCap(t *testing.T) {
	schema := validSchema()
	schema.GradingWeights = []WeightImport{
		{Category: "Homework", Weight: 60},
		{Category: "Final", Weight: 60},
	}

	errs := ValidateSyllabusSchema(schema)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "exceeding 100")
}

func TestValidateSyllabusSchema_RoadmapChecks(t *testing.T) {
	schema := validSchema()
	schema.Roadmap = []RoadmapImport{
		{WeekNumber: 0, FocusArea: "Prep"},
		{WeekNumber: 2, FocusArea: ""},
		{WeekNumber: 3, FocusArea: "Review", EffortLevel: "extreme"},
	}

	errs := ValidateSyllabusSchema(schema)
	assert.Len(t, errs, 3)
}

func TestValidateSyllabusSchema_UndatedEntriesAllowed(t *testing.T) {
	schema := validSchema()
	schema.Dates = []DateImport{{Title: "Final project", EventType: "project"}}
	schema.Readings = []ReadingImport{{Title: "Supplement"}}

	errs := ValidateSyllabusSchema(schema)
	assert.Empty(t, errs)
}
