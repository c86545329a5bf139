package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmtabor/studyarc/internal/domain"
)

// Wednesday noon, so the week started Monday 00:00 two days earlier.
var goalsNow = time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)

func completedAt(t time.Time, mode string, minutes int, msg string) domain.StudySession {
	return domain.StudySession{
		ID:              "s-" + t.Format("20060102-150405"),
		CompletedAt:     t,
		DurationMinutes: minutes,
		Mode:            mode,
		CommitMessage:   msg,
	}
}

func TestBuildGoals_EmptySessions(t *testing.T) {
	report := BuildGoals(nil, goalsNow)

	require.Len(t, report.Goals, 3)
	for _, g := range report.Goals {
		assert.Zero(t, g.Current, g.Label)
	}
	assert.Equal(t, 0, report.StreakDays)
	assert.False(t, report.RecoveryAvailable)
}

func TestBuildGoals_TargetsAndLabels(t *testing.T) {
	report := BuildGoals(nil, goalsNow)

	require.Len(t, report.Goals, 3)
	assert.Equal(t, "Focus sessions", report.Goals[0].Label)
	assert.Equal(t, 8.0, report.Goals[0].Target)
	assert.Equal(t, "Deep work hours", report.Goals[1].Label)
	assert.Equal(t, 6.0, report.Goals[1].Target)
	assert.Equal(t, "Roadmap tasks (commit evidence)", report.Goals[2].Label)
	assert.Equal(t, 3.0, report.Goals[2].Target)
}

func TestBuildGoals_WeekWindowStartsMonday(t *testing.T) {
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	sessions := []domain.StudySession{
		completedAt(monday.Add(9*time.Hour), domain.ModePomodoro, 25, ""),
		completedAt(goalsNow.Add(-time.Hour), domain.ModePomodoro, 25, ""),
		// Sunday evening belongs to last week.
		completedAt(monday.Add(-5*time.Hour), domain.ModePomodoro, 25, ""),
	}

	report := BuildGoals(sessions, goalsNow)

	assert.Equal(t, 2.0, report.Goals[0].Current)
}

func TestBuildGoals_SundayCountsBackToPreviousMonday(t *testing.T) {
	sunday := time.Date(2026, 3, 22, 15, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 3, 17, 10, 0, 0, 0, time.UTC)
	sessions := []domain.StudySession{
		completedAt(tuesday, domain.ModePomodoro, 25, ""),
	}

	report := BuildGoals(sessions, sunday)

	assert.Equal(t, 1.0, report.Goals[0].Current, "Tuesday is still within a Sunday's week")
}

func TestBuildGoals_DeepWorkHoursRoundedToOneDecimal(t *testing.T) {
	sessions := []domain.StudySession{
		completedAt(goalsNow.Add(-2*time.Hour), domain.ModeDeepWork, 90, ""),
		completedAt(goalsNow.Add(-26*time.Hour), domain.ModeDeepWork, 10, ""),
		completedAt(goalsNow.Add(-3*time.Hour), domain.ModePomodoro, 200, ""),
	}

	report := BuildGoals(sessions, goalsNow)

	// 100 deep-work minutes = 1.666... hours, rounded to 1.7.
	assert.Equal(t, 1.7, report.Goals[1].Current)
}

func TestBuildGoals_RoadmapProofsNeedSubstantialMessage(t *testing.T) {
	sessions := []domain.StudySession{
		completedAt(goalsNow.Add(-1*time.Hour), domain.ModePomodoro, 25, "Worked through all of chapter six"),
		completedAt(goalsNow.Add(-2*time.Hour), domain.ModePomodoro, 25, "short note"),
		completedAt(goalsNow.Add(-3*time.Hour), domain.ModePomodoro, 25, "             padded                 "),
	}

	report := BuildGoals(sessions, goalsNow)

	assert.Equal(t, 1.0, report.Goals[2].Current)
}

func TestBuildGoals_StreakThreeDays(t *testing.T) {
	sessions := []domain.StudySession{
		completedAt(goalsNow.Add(-2*time.Hour), domain.ModePomodoro, 25, ""),
		completedAt(goalsNow.AddDate(0, 0, -1), domain.ModePomodoro, 25, ""),
		completedAt(goalsNow.AddDate(0, 0, -2), domain.ModePomodoro, 25, ""),
		// Gap: nothing 3 days ago.
		completedAt(goalsNow.AddDate(0, 0, -5), domain.ModePomodoro, 25, ""),
	}

	report := BuildGoals(sessions, goalsNow)

	assert.Equal(t, 3, report.StreakDays)
}

func TestBuildGoals_StreakZeroWithoutToday(t *testing.T) {
	sessions := []domain.StudySession{
		completedAt(goalsNow.AddDate(0, 0, -1), domain.ModePomodoro, 25, ""),
	}

	report := BuildGoals(sessions, goalsNow)

	assert.Equal(t, 0, report.StreakDays)
}

func TestBuildGoals_RecoveryAfterSingleMissedDay(t *testing.T) {
	sessions := []domain.StudySession{
		completedAt(goalsNow.AddDate(0, 0, -2), domain.ModePomodoro, 25, ""),
		completedAt(goalsNow.AddDate(0, 0, -3), domain.ModePomodoro, 25, ""),
		completedAt(goalsNow.AddDate(0, 0, -4), domain.ModePomodoro, 25, ""),
	}

	report := BuildGoals(sessions, goalsNow)

	assert.True(t, report.RecoveryAvailable)
	assert.Equal(t, 0, report.StreakDays)
}

func TestBuildGoals_NoRecoveryWhenYesterdayActive(t *testing.T) {
	sessions := []domain.StudySession{
		completedAt(goalsNow.AddDate(0, 0, -1), domain.ModePomodoro, 25, ""),
		completedAt(goalsNow.AddDate(0, 0, -2), domain.ModePomodoro, 25, ""),
		completedAt(goalsNow.AddDate(0, 0, -3), domain.ModePomodoro, 25, ""),
	}

	report := BuildGoals(sessions, goalsNow)

	assert.False(t, report.RecoveryAvailable)
}

func TestBuildGoals_NoRecoveryWhenInconsistent(t *testing.T) {
	sessions := []domain.StudySession{
		completedAt(goalsNow.AddDate(0, 0, -2), domain.ModePomodoro, 25, ""),
		completedAt(goalsNow.AddDate(0, 0, -3), domain.ModePomodoro, 25, ""),
	}

	report := BuildGoals(sessions, goalsNow)

	assert.False(t, report.RecoveryAvailable, "only two active days in the trailing window")
}

func TestBuildGoals_IdempotentUnderFixedNow(t *testing.T) {
	sessions := []domain.StudySession{
		completedAt(goalsNow.Add(-2*time.Hour), domain.ModeDeepWork, 90, "Reviewed eigenvalue proofs"),
		completedAt(goalsNow.AddDate(0, 0, -1), domain.ModePomodoro, 25, ""),
	}

	assert.Equal(t, BuildGoals(sessions, goalsNow), BuildGoals(sessions, goalsNow))
}
