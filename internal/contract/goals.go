package contract

// Goal is progress toward one fixed weekly target.
type Goal struct {
	Label   string
	Current float64
	Target  float64
}

// GoalReport aggregates the current week of study sessions.
type GoalReport struct {
	Goals             []Goal
	StreakDays        int
	RecoveryAvailable bool
}
