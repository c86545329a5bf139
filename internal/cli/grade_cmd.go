package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmtabor/studyarc/internal/cli/formatter"
	"github.com/jmtabor/studyarc/internal/domain"
)

func newGradeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Manage grades and projections",
	}

	cmd.AddCommand(
		newGradeAddCmd(app),
		newGradeSetCmd(app),
		newGradeListCmd(app),
		newGradeProjectCmd(app),
	)

	return cmd
}

func newGradeAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <course> <category> <weight>",
		Short: "Add a grade category to a course",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			course, err := app.Courses.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			weight, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid weight %q: %w", args[2], err)
			}

			category := &domain.GradeCategory{
				CourseID: course.ID,
				Category: args[1],
				Weight:   weight,
			}
			if err := app.Grading.Create(ctx, category); err != nil {
				return err
			}
			fmt.Printf("Added %s (%.0f%%) to %s\n", category.Category, weight, course.Name)
			return nil
		},
	}
}

func newGradeSetCmd(app *App) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "set <category-id> [score]",
		Short: "Record or clear a category score",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if clear {
				if err := app.Grading.SetScore(context.Background(), args[0], nil); err != nil {
					return err
				}
				fmt.Println("Cleared score")
				return nil
			}
			if len(args) < 2 {
				return fmt.Errorf("a score is required unless --clear is set")
			}
			score, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid score %q: %w", args[1], err)
			}
			if err := app.Grading.SetScore(context.Background(), args[0], &score); err != nil {
				return err
			}
			fmt.Printf("Recorded %.1f%%\n", score)
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "clear the recorded score")

	return cmd
}

func newGradeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <course>",
		Short: "List a course's grade categories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			course, err := app.Courses.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			categories, err := app.Grading.ListByCourse(ctx, course.ID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatGradeCategories(categories))
			return nil
		},
	}
}

func newGradeProjectCmd(app *App) *cobra.Command {
	var whatIf float64

	cmd := &cobra.Command{
		Use:   "project <course>",
		Short: "Project the weighted course grade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			course, err := app.Courses.Resolve(ctx, args[0])
			if err != nil {
				return err
			}

			var whatIfPtr *float64
			if cmd.Flags().Changed("what-if") {
				whatIfPtr = &whatIf
			}

			proj, err := app.Grades.Project(ctx, course.ID, whatIfPtr)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatGradeProjection(course.Name, proj))
			return nil
		},
	}

	cmd.Flags().Float64Var(&whatIf, "what-if", 0, "hypothetical score for the final exam category")

	return cmd
}
