package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmtabor/studyarc/internal/domain"
)

// GeneratedSyllabus holds the domain records produced from one import
// schema, ready for persistence.
type GeneratedSyllabus struct {
	Course     *domain.Course
	Events     []*domain.SyllabusEvent
	Categories []*domain.GradeCategory
	Roadmap    []*domain.RoadmapEntry
}

// Convert transforms a validated SyllabusSchema into domain objects with
// fresh IDs. Call ValidateSyllabusSchema first; Convert assumes the
// schema is valid.
func Convert(schema *SyllabusSchema) *GeneratedSyllabus {
	now := time.Now().UTC()

	course := &domain.Course{
		ID:        uuid.New().String(),
		Name:      schema.Course.Name,
		CreatedAt: now,
	}

	events := make([]*domain.SyllabusEvent, 0, len(schema.Dates)+len(schema.Readings))
	for _, d := range schema.Dates {
		events = append(events, &domain.SyllabusEvent{
			ID:           uuid.New().String(),
			CourseID:     course.ID,
			Title:        d.Title,
			Type:         domain.EventType(domain.CoalesceStr(d.EventType, string(domain.EventOther))),
			Date:         d.Date,
			IsHighStakes: d.IsHighStakes,
			CreatedAt:    now,
		})
	}
	// Readings come in dated like everything else on the syllabus.
	for _, r := range schema.Readings {
		events = append(events, &domain.SyllabusEvent{
			ID:        uuid.New().String(),
			CourseID:  course.ID,
			Title:     readingTitle(r),
			Type:      domain.EventOther,
			Date:      r.DueDate,
			CreatedAt: now,
		})
	}

	categories := make([]*domain.GradeCategory, 0, len(schema.GradingWeights))
	for _, w := range schema.GradingWeights {
		categories = append(categories, &domain.GradeCategory{
			ID:           uuid.New().String(),
			CourseID:     course.ID,
			Category:     w.Category,
			Weight:       w.Weight,
			CurrentScore: w.CurrentScore,
		})
	}

	roadmap := make([]*domain.RoadmapEntry, 0, len(schema.Roadmap))
	for _, r := range schema.Roadmap {
		roadmap = append(roadmap, &domain.RoadmapEntry{
			ID:          uuid.New().String(),
			CourseID:    course.ID,
			WeekNumber:  r.WeekNumber,
			FocusArea:   r.FocusArea,
			Tasks:       domain.TaskList(r.Tasks),
			EffortLevel: domain.EffortLevel(domain.CoalesceStr(r.EffortLevel, string(domain.EffortMedium))),
		})
	}

	return &GeneratedSyllabus{
		Course:     course,
		Events:     events,
		Categories: categories,
		Roadmap:    roadmap,
	}
}

func readingTitle(r ReadingImport) string {
	title := "Read: " + r.Title
	if r.Chapter != "" {
		title = fmt.Sprintf("%s (%s)", title, r.Chapter)
	}
	return title
}
