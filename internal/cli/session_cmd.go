package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmtabor/studyarc/internal/cli/formatter"
	"github.com/jmtabor/studyarc/internal/domain"
)

const defaultSessionListLimit = 20

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Log and review study sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var mode string
	var message string
	var itemID string

	cmd := &cobra.Command{
		Use:   "log <minutes>",
		Short: "Record a finished study session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var minutes int
			if _, err := fmt.Sscanf(args[0], "%d", &minutes); err != nil {
				return fmt.Errorf("invalid duration %q: %w", args[0], err)
			}

			session := &domain.StudySession{
				DurationMinutes: minutes,
				Mode:            mode,
				CommitMessage:   message,
			}
			if itemID != "" {
				session.SyllabusItemID = &itemID
			}
			if err := app.Sessions.LogSession(context.Background(), session); err != nil {
				return err
			}
			fmt.Printf("Logged %s %s session\n", formatter.FormatMinutes(minutes), session.Mode)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", domain.ModePomodoro, "session mode (pomodoro, deep-work, custom)")
	cmd.Flags().StringVarP(&message, "message", "M", "", "what you accomplished")
	cmd.Flags().StringVar(&itemID, "event", "", "syllabus event ID this session worked toward")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent study sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.ListRecent(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println(formatter.Dim("No sessions logged yet. Start one with 'studyarc timer'."))
				return nil
			}

			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				msg := s.CommitMessage
				if msg == "" {
					msg = formatter.Dim("(no note)")
				}
				rows = append(rows, []string{
					formatter.RelativeDate(s.CompletedAt),
					formatter.FormatMinutes(s.DurationMinutes),
					s.Mode,
					msg,
					formatter.Dim(s.ID[:8]),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"When", "Length", "Mode", "Note", "ID"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultSessionListLimit, "maximum sessions to show")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a logged session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Removed session")
			return nil
		},
	}
}
