package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmtabor/studyarc/internal/cli/formatter"
	"github.com/jmtabor/studyarc/internal/domain"
)

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage syllabus events",
	}

	cmd.AddCommand(
		newEventAddCmd(app),
		newEventListCmd(app),
		newEventRemoveCmd(app),
	)

	return cmd
}

func newEventAddCmd(app *App) *cobra.Command {
	var eventType string
	var date string
	var highStakes bool

	cmd := &cobra.Command{
		Use:   "add <course> <title>",
		Short: "Add an event to a course",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			course, err := app.Courses.Resolve(ctx, args[0])
			if err != nil {
				return err
			}

			event := &domain.SyllabusEvent{
				CourseID:     course.ID,
				Title:        args[1],
				Type:         domain.EventType(eventType),
				Date:         date,
				IsHighStakes: highStakes,
			}
			if err := app.Events.Create(ctx, event); err != nil {
				return err
			}
			fmt.Printf("Added %s to %s\n", event.Title, course.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&eventType, "type", "t", "", "event type (assignment, midterm, final, quiz, project, other)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "due date, YYYY-MM-DD")
	cmd.Flags().BoolVar(&highStakes, "high-stakes", false, "mark as high stakes (midterms and finals always are)")

	return cmd
}

func newEventListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <course>",
		Short: "List a course's events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			course, err := app.Courses.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			events, err := app.Events.ListByCourse(ctx, course.ID)
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Println(formatter.Dim("No events for " + course.Name + "."))
				return nil
			}

			rows := make([][]string, 0, len(events))
			for _, e := range events {
				date := e.Date
				if date == "" {
					date = formatter.Dim("no date")
				}
				stakes := ""
				if e.IsHighStakes {
					stakes = "high"
				}
				rows = append(rows, []string{e.Title, string(e.Type), date, stakes, formatter.Dim(e.ID[:8])})
			}
			fmt.Print(formatter.RenderTable([]string{"Event", "Type", "Date", "Stakes", "ID"}, rows))
			return nil
		},
	}
}

func newEventRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Events.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Removed event")
			return nil
		},
	}
}
