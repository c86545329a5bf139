package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmtabor/studyarc/internal/cli/formatter"
	"github.com/jmtabor/studyarc/internal/domain"
)

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseListCmd(app),
		newCourseRemoveCmd(app),
	)

	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			course := &domain.Course{Name: args[0]}
			if err := app.Courses.Create(context.Background(), course); err != nil {
				return err
			}
			fmt.Printf("Created course %s (%s)\n", course.Name, course.ID[:8])
			return nil
		},
	}
}

func newCourseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := app.Courses.List(context.Background())
			if err != nil {
				return err
			}
			if len(courses) == 0 {
				fmt.Println(formatter.Dim("No courses yet. Add one with 'studyarc course add' or import a syllabus."))
				return nil
			}

			rows := make([][]string, 0, len(courses))
			for _, c := range courses {
				rows = append(rows, []string{c.Name, formatter.Dim(c.ID[:8]), c.CreatedAt.Format("2006-01-02")})
			}
			fmt.Print(formatter.RenderTable([]string{"Course", "ID", "Added"}, rows))
			return nil
		},
	}
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <course>",
		Short: "Delete a course and everything attached to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			course, err := app.Courses.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Courses.Delete(ctx, course.ID); err != nil {
				return err
			}
			fmt.Printf("Removed course %s\n", course.Name)
			return nil
		},
	}
}
