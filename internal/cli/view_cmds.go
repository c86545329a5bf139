package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmtabor/studyarc/internal/cli/formatter"
)

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's prioritized study plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Plan.TodayPlan(context.Background(), time.Now())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTodayPlan(items))
			return nil
		},
	}
}

func newReviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Show the spaced-repetition review queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			items, err := app.Review.ReviewQueue(context.Background(), now)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatReviewQueue(items, now))
			return nil
		},
	}
}

func newGoalsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "goals",
		Short: "Show weekly goal progress and the study streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Goals.WeeklyGoals(context.Background(), time.Now())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatGoalReport(report))
			return nil
		},
	}
}
