package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmtabor/studyarc/internal/cli/formatter"
	"github.com/jmtabor/studyarc/internal/domain"
)

func newRoadmapCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "View or draft week-by-week study roadmaps",
	}

	cmd.AddCommand(
		newRoadmapListCmd(app),
		newRoadmapDraftCmd(app),
	)

	return cmd
}

func newRoadmapListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <course>",
		Short: "Show a course's roadmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			course, err := app.Courses.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			entries, err := app.Roadmap.ListByCourse(ctx, course.ID)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println(formatter.Dim("No roadmap for " + course.Name + ". Draft one with 'studyarc roadmap draft'."))
				return nil
			}

			var sb strings.Builder
			for _, e := range entries {
				fmt.Fprintf(&sb, "%s %s %s\n",
					formatter.Bold(fmt.Sprintf("Week %d", e.WeekNumber)),
					e.FocusArea,
					formatter.Dim("["+string(e.EffortLevel)+"]"))
				for _, task := range e.Tasks {
					fmt.Fprintf(&sb, "  - %s\n", task)
				}
			}
			fmt.Print(formatter.RenderBox(course.Name, strings.TrimRight(sb.String(), "\n")))
			return nil
		},
	}
}

func newRoadmapDraftCmd(app *App) *cobra.Command {
	var syllabusPath string

	cmd := &cobra.Command{
		Use:   "draft <course>",
		Short: "Draft a study roadmap with the local LLM",
		Long: "Generates a week-by-week roadmap for the course and replaces any " +
			"existing one. Requires STUDYARC_LLM_ENABLED=true.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Drafter == nil {
				return fmt.Errorf("roadmap drafting needs the LLM; set STUDYARC_LLM_ENABLED=true and run Ollama")
			}

			ctx := context.Background()
			course, err := app.Courses.Resolve(ctx, args[0])
			if err != nil {
				return err
			}

			var syllabusText string
			if syllabusPath != "" {
				raw, err := os.ReadFile(syllabusPath)
				if err != nil {
					return fmt.Errorf("reading syllabus file: %w", err)
				}
				syllabusText = string(raw)
			}

			stop := func() {}
			if app.Interactive {
				stop = formatter.StartSpinner("Drafting roadmap...")
			}
			drafted, err := app.Drafter.DraftRoadmap(ctx, course.Name, syllabusText)
			stop()
			if err != nil {
				return err
			}

			entries := make([]*domain.RoadmapEntry, 0, len(drafted))
			for _, d := range drafted {
				entries = append(entries, &domain.RoadmapEntry{
					CourseID:    course.ID,
					WeekNumber:  d.WeekNumber,
					FocusArea:   d.FocusArea,
					Tasks:       domain.TaskList(d.Tasks),
					EffortLevel: domain.EffortLevel(d.EffortLevel),
				})
			}
			if err := app.Roadmap.ReplaceForCourse(ctx, course.ID, entries); err != nil {
				return err
			}
			fmt.Printf("Drafted a %d-week roadmap for %s\n", len(entries), course.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&syllabusPath, "syllabus", "s", "", "syllabus text file to ground the draft")

	return cmd
}
