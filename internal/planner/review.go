package planner

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jmtabor/studyarc/internal/contract"
	"github.com/jmtabor/studyarc/internal/domain"
)

// reviewLadder is the fixed spaced-repetition schedule, in days after the
// original completion. Not adaptive.
var reviewLadder = [...]int{1, 3, 7, 14}

const (
	maxReviewItems    = 10
	maxItemsPerSource = 20
	hoursPerDay       = 24
)

// ReviewInput carries the record snapshot the review queue is derived
// from. Sessions are expected most-recent-first.
type ReviewInput struct {
	Sessions   []domain.StudySession
	PastEvents []domain.SyllabusEvent
	Courses    []domain.Course
}

// ReviewSchedule is the ladder placement for one completion timestamp.
type ReviewSchedule struct {
	DueAt        time.Time
	IntervalDays int
	IsDueNow     bool
}

// ScheduleReview places a completion timestamp on the review ladder.
// The first rung I with elapsed < I+1 days wins; items older than the
// last rung plus its one-day window drop off the queue entirely (no
// terminal "overdue" state — the queue is a nudge, not a backlog).
// IsDueNow marks the one-day actionable window [I, I+1] around the rung.
func ScheduleReview(completedAt, now time.Time) (ReviewSchedule, bool) {
	elapsedDays := now.Sub(completedAt).Hours() / hoursPerDay
	for _, interval := range reviewLadder {
		if elapsedDays < float64(interval)+1 {
			return ReviewSchedule{
				DueAt:        completedAt.Add(time.Duration(interval) * hoursPerDay * time.Hour),
				IntervalDays: interval,
				IsDueNow:     elapsedDays >= float64(interval) && elapsedDays <= float64(interval)+1,
			}, true
		}
	}
	return ReviewSchedule{}, false
}

// GenerateReviewQueue computes due-for-review items from recent study
// sessions and past syllabus events, sorted soonest-due first and capped
// at 10.
func GenerateReviewQueue(in ReviewInput, now time.Time) []contract.ReviewItem {
	names := courseNames(in.Courses)

	var items []contract.ReviewItem

	sessions := in.Sessions
	if len(sessions) > maxItemsPerSource {
		sessions = sessions[:maxItemsPerSource]
	}
	for _, s := range sessions {
		sched, ok := ScheduleReview(s.CompletedAt, now)
		if !ok {
			continue
		}
		title := domain.CoalesceStr(
			strings.TrimSpace(s.CommitMessage),
			fmt.Sprintf("%s focus block (%dm)", s.Mode, s.DurationMinutes),
		)
		items = append(items, reviewItem("session-"+s.ID, title, contract.ReviewFromSession, sched))
	}

	count := 0
	for _, e := range in.PastEvents {
		date := ParseDate(e.Date)
		if date == nil || DaysUntil(e.Date, now) >= 0 {
			continue
		}
		if count == maxItemsPerSource {
			break
		}
		count++
		sched, ok := ScheduleReview(*date, now)
		if !ok {
			continue
		}
		title := fmt.Sprintf("%s (%s)", e.Title, courseLabel(names, e.CourseID))
		items = append(items, reviewItem("syllabus-"+e.ID, title, contract.ReviewFromSyllabus, sched))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueAt.Before(items[j].DueAt)
	})
	if len(items) > maxReviewItems {
		items = items[:maxReviewItems]
	}
	return items
}

func reviewItem(id, title string, source contract.ReviewSource, sched ReviewSchedule) contract.ReviewItem {
	return contract.ReviewItem{
		ID:         id,
		Title:      title,
		Source:     source,
		DueAt:      sched.DueAt,
		StageLabel: fmt.Sprintf("%dd review", sched.IntervalDays),
		IsDueNow:   sched.IsDueNow,
	}
}
