// Package planner derives daily plans, spaced-review queues, goal metrics
// and grade projections from already-fetched records. Every function is
// pure: no I/O, no clock reads; callers inject now.
package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/jmtabor/studyarc/internal/contract"
	"github.com/jmtabor/studyarc/internal/domain"
)

const (
	maxPlanItems       = 8
	eventHorizonDays   = 14
	weakScoreThreshold = 78.0
	maxWeakCategories  = 4
	tasksPerWeek       = 2
	maxRoadmapTasks    = 6
	roadmapPriority    = 25.0
)

// PlanInput carries the record snapshot the today plan is derived from.
type PlanInput struct {
	Events     []domain.SyllabusEvent
	Categories []domain.GradeCategory
	Roadmap    []domain.RoadmapEntry
	Courses    []domain.Course
}

// GeneratePlan merges three candidate streams (near-term high-stakes
// events, weak grade categories, roadmap tasks) into one ranked list of
// at most 8 actions, sorted by descending priority. Ties keep the
// concatenation order: events, then grades, then roadmap.
func GeneratePlan(in PlanInput, now time.Time) []contract.PlanItem {
	names := courseNames(in.Courses)

	items := eventCandidates(in.Events, names, now)
	items = append(items, gradeCandidates(in.Categories, names)...)
	items = append(items, roadmapCandidates(in.Roadmap, names)...)

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority > items[j].Priority
	})
	if len(items) > maxPlanItems {
		items = items[:maxPlanItems]
	}
	return items
}

// eventCandidates keeps high-stakes events due within the next two weeks.
// Priority approaches 100 as the deadline approaches.
func eventCandidates(events []domain.SyllabusEvent, names map[string]string, now time.Time) []contract.PlanItem {
	var items []contract.PlanItem
	for _, e := range events {
		if !e.IsHighStakes {
			continue
		}
		d := DaysUntil(e.Date, now)
		if d < 0 || d > eventHorizonDays {
			continue
		}
		items = append(items, contract.PlanItem{
			ID:       "event-" + e.ID,
			Title:    "Prep: " + e.Title,
			Detail:   fmt.Sprintf("%s • due in %d %s", courseLabel(names, e.CourseID), d, dayWord(d)),
			Priority: float64(100 - d),
			Type:     contract.PlanItemEvent,
		})
	}
	return items
}

// gradeCandidates keeps scored categories sitting below the weak-score
// threshold, heaviest weights first, capped at four. Priority is twice
// the weight, so a failing heavyweight category can outrank any event;
// that cross-stream dominance is deliberate.
func gradeCandidates(categories []domain.GradeCategory, names map[string]string) []contract.PlanItem {
	weak := make([]domain.GradeCategory, 0, len(categories))
	for _, c := range categories {
		if c.CurrentScore != nil && *c.CurrentScore < weakScoreThreshold {
			weak = append(weak, c)
		}
	}
	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].Weight > weak[j].Weight
	})
	if len(weak) > maxWeakCategories {
		weak = weak[:maxWeakCategories]
	}

	items := make([]contract.PlanItem, 0, len(weak))
	for _, c := range weak {
		items = append(items, contract.PlanItem{
			ID:       "grade-" + c.ID,
			Title:    "Recover " + c.Category,
			Detail:   fmt.Sprintf("%s • %g%% (%g%% of grade)", courseLabel(names, c.CourseID), *c.CurrentScore, c.Weight),
			Priority: c.Weight * 2,
			Type:     contract.PlanItemGrade,
		})
	}
	return items
}

// roadmapCandidates walks entries week by week, taking at most two tasks
// per entry and six overall, all at a fixed mid-range priority.
func roadmapCandidates(roadmap []domain.RoadmapEntry, names map[string]string) []contract.PlanItem {
	sorted := make([]domain.RoadmapEntry, len(roadmap))
	copy(sorted, roadmap)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WeekNumber < sorted[j].WeekNumber
	})

	var items []contract.PlanItem
	for _, entry := range sorted {
		tasks := entry.Tasks
		if len(tasks) > tasksPerWeek {
			tasks = tasks[:tasksPerWeek]
		}
		for idx, task := range tasks {
			if len(items) == maxRoadmapTasks {
				return items
			}
			items = append(items, contract.PlanItem{
				ID:       fmt.Sprintf("roadmap-%s-%d", entry.ID, idx),
				Title:    task,
				Detail:   fmt.Sprintf("%s • Week %d: %s", courseLabel(names, entry.CourseID), entry.WeekNumber, entry.FocusArea),
				Priority: roadmapPriority,
				Type:     contract.PlanItemRoadmap,
			})
		}
	}
	return items
}

func courseNames(courses []domain.Course) map[string]string {
	names := make(map[string]string, len(courses))
	for _, c := range courses {
		names[c.ID] = c.Name
	}
	return names
}

// courseLabel resolves a course ID to its display name, falling back to a
// literal placeholder for dangling references.
func courseLabel(names map[string]string, courseID string) string {
	if name, ok := names[courseID]; ok && name != "" {
		return name
	}
	return "Course"
}

func dayWord(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
