package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// SyllabusSchema is the top-level JSON structure for syllabus import.
// It mirrors the shape the extraction pipeline produces, so a parsed
// syllabus can be saved to disk, reviewed, and imported unchanged.
type SyllabusSchema struct {
	Course         CourseImport    `json:"course"`
	Dates          []DateImport    `json:"dates"`
	GradingWeights []WeightImport  `json:"grading_weights"`
	Readings       []ReadingImport `json:"readings,omitempty"`
	Roadmap        []RoadmapImport `json:"roadmap,omitempty"`
}

// CourseImport defines the course-level fields in the import file.
type CourseImport struct {
	Name string `json:"name"`
}

// DateImport defines a dated syllabus event in the import file.
type DateImport struct {
	Title        string `json:"title"`
	Date         string `json:"date,omitempty"`
	EventType    string `json:"event_type,omitempty"`
	IsHighStakes bool   `json:"is_high_stakes,omitempty"`
}

// WeightImport defines a grading category in the import file.
type WeightImport struct {
	Category     string   `json:"category"`
	Weight       float64  `json:"weight"`
	CurrentScore *float64 `json:"current_score,omitempty"`
}

// ReadingImport defines an assigned reading in the import file.
type ReadingImport struct {
	Title   string `json:"title"`
	Author  string `json:"author,omitempty"`
	Chapter string `json:"chapter,omitempty"`
	DueDate string `json:"due_date,omitempty"`
}

// RoadmapImport defines one week of a study roadmap in the import file.
type RoadmapImport struct {
	WeekNumber  int      `json:"week_number"`
	FocusArea   string   `json:"focus_area"`
	Tasks       []string `json:"tasks,omitempty"`
	EffortLevel string   `json:"effort_level,omitempty"`
}

// LoadSyllabusSchema reads and parses a syllabus import JSON file.
func LoadSyllabusSchema(path string) (*SyllabusSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema SyllabusSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
