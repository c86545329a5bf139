package importer

import (
	"fmt"
	"time"

	"github.com/jmtabor/studyarc/internal/domain"
)

// ValidateSyllabusSchema checks the import schema for errors before
// conversion. Returns a slice of all validation errors found.
func ValidateSyllabusSchema(schema *SyllabusSchema) []error {
	var errs []error

	if schema.Course.Name == "" {
		errs = append(errs, fmt.Errorf("course.name is required"))
	}

	errs = append(errs, validateDates(schema.Dates)...)
	errs = append(errs, validateWeights(schema.GradingWeights)...)
	errs = append(errs, validateReadings(schema.Readings)...)
	errs = append(errs, validateRoadmap(schema.Roadmap)...)

	return errs
}

func validateDates(dates []DateImport) []error {
	var errs []error
	for i, d := range dates {
		if d.Title == "" {
			errs = append(errs, fmt.Errorf("dates[%d].title is required", i))
		}
		if d.EventType != "" && !domain.ValidEventTypes[domain.EventType(d.EventType)] {
			errs = append(errs, fmt.Errorf("dates[%d].event_type: invalid value %q", i, d.EventType))
		}
		if d.Date != "" {
			if _, err := time.Parse("2006-01-02", d.Date); err != nil {
				errs = append(errs, fmt.Errorf("dates[%d].date: invalid date format %q (expected YYYY-MM-DD)", i, d.Date))
			}
		}
	}
	return errs
}

func validateWeights(weights []WeightImport) []error {
	var errs []error
	var total float64
	for i, w := range weights {
		if w.Category == "" {
			errs = append(errs, fmt.Errorf("grading_weights[%d].category is required", i))
		}
		if w.Weight <= 0 || w.Weight > 100 {
			errs = append(errs, fmt.Errorf("grading_weights[%d].weight must be in (0, 100], got %g", i, w.Weight))
		}
		if w.CurrentScore != nil && (*w.CurrentScore < 0 || *w.CurrentScore > 100) {
			errs = append(errs, fmt.Errorf("grading_weights[%d].current_score must be in [0, 100], got %g", i, *w.CurrentScore))
		}
		total += w.Weight
	}
	if len(weights) > 0 && total > 100.0001 {
		errs = append(errs, fmt.Errorf("grading_weights sum to %g, exceeding 100", total))
	}
	return errs
}

func validateReadings(readings []ReadingImport) []error {
	var errs []error
	for i, r := range readings {
		if r.Title == "" {
			errs = append(errs, fmt.Errorf("readings[%d].title is required", i))
		}
		if r.DueDate != "" {
			if _, err := time.Parse("2006-01-02", r.DueDate); err != nil {
				errs = append(errs, fmt.Errorf("readings[%d].due_date: invalid date format %q (expected YYYY-MM-DD)", i, r.DueDate))
			}
		}
	}
	return errs
}

func validateRoadmap(roadmap []RoadmapImport) []error {
	var errs []error
	for i, r := range roadmap {
		if r.WeekNumber < 1 {
			errs = append(errs, fmt.Errorf("roadmap[%d].week_number must be positive, got %d", i, r.WeekNumber))
		}
		if r.FocusArea == "" {
			errs = append(errs, fmt.Errorf("roadmap[%d].focus_area is required", i))
		}
		if r.EffortLevel != "" && !domain.ValidEffortLevels[domain.EffortLevel(r.EffortLevel)] {
			errs = append(errs, fmt.Errorf("roadmap[%d].effort_level: invalid value %q", i, r.EffortLevel))
		}
	}
	return errs
}
