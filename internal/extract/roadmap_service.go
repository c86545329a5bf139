package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmtabor/studyarc/internal/importer"
	"github.com/jmtabor/studyarc/internal/llm"
)

// RoadmapDrafter designs a week-by-week study roadmap for a course.
type RoadmapDrafter interface {
	DraftRoadmap(ctx context.Context, courseName, syllabusText string) ([]importer.RoadmapImport, error)
}

type roadmapDrafter struct {
	client llm.Client
}

// NewRoadmapDrafter creates a RoadmapDrafter backed by an LLM client.
func NewRoadmapDrafter(client llm.Client) RoadmapDrafter {
	return &roadmapDrafter{client: client}
}

// roadmapResponse is the JSON structure the LLM outputs.
type roadmapResponse struct {
	Roadmap []importer.RoadmapImport `json:"roadmap"`
}

func (s *roadmapDrafter) DraftRoadmap(ctx context.Context, courseName, syllabusText string) ([]importer.RoadmapImport, error) {
	courseName = strings.TrimSpace(courseName)
	if courseName == "" {
		return nil, fmt.Errorf("course name is required")
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Course: %s\n", courseName)
	if syllabusText = strings.TrimSpace(syllabusText); syllabusText != "" {
		fmt.Fprintf(&prompt, "\nSyllabus:\n%s\n", syllabusText)
	}
	prompt.WriteString("\nDesign the study roadmap.")

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskRoadmapDraft,
		SystemPrompt: draftRoadmapSystemPrompt,
		UserPrompt:   prompt.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("llm roadmap draft failed: %w", err)
	}

	parsed, err := llm.ExtractJSON[roadmapResponse](resp.Text, validateRoadmapResponse)
	if err != nil {
		return nil, fmt.Errorf("extracting roadmap: %w", err)
	}
	return parsed.Roadmap, nil
}

func validateRoadmapResponse(r roadmapResponse) error {
	if len(r.Roadmap) == 0 {
		return fmt.Errorf("roadmap is empty")
	}
	schema := importer.SyllabusSchema{
		Course:  importer.CourseImport{Name: "placeholder"},
		Roadmap: r.Roadmap,
	}
	if errs := importer.ValidateSyllabusSchema(&schema); len(errs) > 0 {
		return errs[0]
	}
	return nil
}
