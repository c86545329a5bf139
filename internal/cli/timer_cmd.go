package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jmtabor/studyarc/internal/cli/formatter"
	"github.com/jmtabor/studyarc/internal/domain"
)

// Timer presets. Break lengths are advisory; only work time is logged.
var timerPresets = map[string]struct {
	workMinutes  int
	breakMinutes int
}{
	domain.ModePomodoro: {25, 5},
	domain.ModeDeepWork: {90, 15},
}

func newTimerCmd(app *App) *cobra.Command {
	var minutes int
	var eventID string

	cmd := &cobra.Command{
		Use:   "timer [pomodoro|deep-work]",
		Short: "Run a focus timer and log the session when it ends",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Interactive {
				return fmt.Errorf("the timer needs an interactive terminal; use 'studyarc session log' instead")
			}

			mode := domain.ModePomodoro
			if len(args) == 1 {
				mode = args[0]
			}

			work := 0
			if cmd.Flags().Changed("minutes") {
				if minutes <= 0 {
					return fmt.Errorf("minutes must be positive")
				}
				mode = domain.ModeCustom
				work = minutes
			} else {
				preset, ok := timerPresets[mode]
				if !ok {
					return fmt.Errorf("unknown preset %q (pomodoro, deep-work, or --minutes)", mode)
				}
				work = preset.workMinutes
			}

			return runTimer(app, mode, work, eventID)
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "custom session length in minutes")
	cmd.Flags().StringVar(&eventID, "event", "", "syllabus event ID this session works toward")

	return cmd
}

func runTimer(app *App, mode string, workMinutes int, eventID string) error {
	label := fmt.Sprintf("%s · %dm", mode, workMinutes)
	model := newTimerModel(label, time.Duration(workMinutes)*time.Minute)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("running timer: %w", err)
	}
	result := final.(timerModel)

	elapsed := int(result.Elapsed().Round(time.Minute) / time.Minute)
	if result.aborted || elapsed < 1 {
		fmt.Println(formatter.Dim("Session discarded."))
		return nil
	}

	message, logIt, err := askSessionNote(elapsed)
	if err != nil {
		return err
	}
	if !logIt {
		fmt.Println(formatter.Dim("Session discarded."))
		return nil
	}

	session := &domain.StudySession{
		DurationMinutes: elapsed,
		Mode:            mode,
		CommitMessage:   message,
	}
	if eventID != "" {
		session.SyllabusItemID = &eventID
	}
	if err := app.Sessions.LogSession(context.Background(), session); err != nil {
		return err
	}

	fmt.Printf("Logged %s %s session.\n", formatter.FormatMinutes(elapsed), mode)
	if preset, ok := timerPresets[mode]; ok && preset.breakMinutes > 0 {
		fmt.Println(formatter.Dim(fmt.Sprintf("Take a %dm break.", preset.breakMinutes)))
	}
	return nil
}

// askSessionNote collects a commit message for the finished block. A
// substantive message (over 12 characters) counts toward the weekly
// proof-of-work goal.
func askSessionNote(elapsedMinutes int) (message string, logIt bool, err error) {
	logIt = true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("What did you get done in %s?", formatter.FormatMinutes(elapsedMinutes))).
				Placeholder("e.g. worked through ch. 4 practice problems").
				Value(&message),
			huh.NewConfirm().
				Title("Log this session?").
				Value(&logIt),
		),
	).WithTheme(studyarcHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", false, fmt.Errorf("session form: %w", err)
	}
	return message, logIt, nil
}

func studyarcHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
