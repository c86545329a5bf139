package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmtabor/studyarc/internal/extract"
	"github.com/jmtabor/studyarc/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Courses  service.CourseService
	Events   service.EventService
	Grading  service.GradingService
	Roadmap  service.RoadmapService
	Sessions service.SessionService
	Plan     service.PlanService
	Review   service.ReviewService
	Goals    service.GoalService
	Grades   service.GradeService
	Imports  service.ImportService

	// LLM-backed extraction; nil when STUDYARC_LLM_ENABLED is off.
	Extractor extract.SyllabusExtractor
	Drafter   extract.RoadmapDrafter

	// Interactive is true when stdout is a terminal.
	Interactive bool
}

// NewRootCmd creates the top-level "studyarc" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "studyarc",
		Short: "Study planner: today plan, spaced review, goals, and grades",
	}

	root.AddCommand(
		newCourseCmd(app),
		newSyllabusCmd(app),
		newEventCmd(app),
		newGradeCmd(app),
		newRoadmapCmd(app),
		newSessionCmd(app),
		newTodayCmd(app),
		newReviewCmd(app),
		newGoalsCmd(app),
		newTimerCmd(app),
	)

	return root
}
