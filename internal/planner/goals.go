package planner

import (
	"math"
	"strings"
	"time"

	"github.com/jmtabor/studyarc/internal/contract"
	"github.com/jmtabor/studyarc/internal/domain"
)

// Fixed weekly targets.
const (
	focusSessionTarget  = 8
	deepWorkHoursTarget = 6
	roadmapProofTarget  = 3

	// A commit message longer than this counts as evidence of a
	// non-trivial written commitment.
	proofMinLength = 12

	recoveryWindowDays    = 5
	recoveryMinActiveDays = 3
)

// BuildGoals aggregates this week's study sessions into progress toward
// the fixed weekly targets, plus a consecutive-day streak and a recovery
// signal. The week starts Monday 00:00 in now's location.
func BuildGoals(sessions []domain.StudySession, now time.Time) contract.GoalReport {
	weekStart := startOfWeek(now)

	var focusCount, deepMinutes, proofs int
	for _, s := range sessions {
		if s.CompletedAt.Before(weekStart) {
			continue
		}
		focusCount++
		if s.Mode == domain.ModeDeepWork {
			deepMinutes += s.DurationMinutes
		}
		if len(strings.TrimSpace(s.CommitMessage)) > proofMinLength {
			proofs++
		}
	}
	deepHours := math.Round(float64(deepMinutes)/60*10) / 10

	activeDays := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		activeDays[dayKey(s.CompletedAt, now.Location())] = true
	}

	// Walk backward from today while each calendar day saw a session.
	streak := 0
	cursor := midnight(now)
	for activeDays[dayKey(cursor, now.Location())] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	yesterday := midnight(now).AddDate(0, 0, -1)
	recentDays := make(map[string]bool)
	for _, s := range sessions {
		if now.Sub(s.CompletedAt) <= recoveryWindowDays*hoursPerDay*time.Hour {
			recentDays[dayKey(s.CompletedAt, now.Location())] = true
		}
	}
	// Missed yesterday but otherwise consistent: offer to save the streak.
	recovery := !activeDays[dayKey(yesterday, now.Location())] && len(recentDays) >= recoveryMinActiveDays

	return contract.GoalReport{
		Goals: []contract.Goal{
			{Label: "Focus sessions", Current: float64(focusCount), Target: focusSessionTarget},
			{Label: "Deep work hours", Current: deepHours, Target: deepWorkHoursTarget},
			{Label: "Roadmap tasks (commit evidence)", Current: float64(proofs), Target: roadmapProofTarget},
		},
		StreakDays:        streak,
		RecoveryAvailable: recovery,
	}
}

// startOfWeek returns Monday 00:00 of now's week, in now's location.
func startOfWeek(now time.Time) time.Time {
	offset := 1 - int(now.Weekday())
	if now.Weekday() == time.Sunday {
		offset = -6
	}
	return midnight(now).AddDate(0, 0, offset)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}
