package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/jmtabor/studyarc/internal/cli"
	"github.com/jmtabor/studyarc/internal/db"
	"github.com/jmtabor/studyarc/internal/extract"
	"github.com/jmtabor/studyarc/internal/llm"
	"github.com/jmtabor/studyarc/internal/repository"
	"github.com/jmtabor/studyarc/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dbPath := os.Getenv("STUDYARC_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".studyarc", "studyarc.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	courseRepo := repository.NewSQLiteCourseRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	gradingRepo := repository.NewSQLiteGradingRepo(database)
	roadmapRepo := repository.NewSQLiteRoadmapRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Courses:  service.NewCourseService(courseRepo),
		Events:   service.NewEventService(eventRepo, courseRepo),
		Grading:  service.NewGradingService(gradingRepo, courseRepo),
		Roadmap:  service.NewRoadmapService(roadmapRepo, courseRepo, uow),
		Sessions: service.NewSessionService(sessionRepo, uow),
		Plan:     service.NewPlanService(eventRepo, gradingRepo, roadmapRepo, courseRepo),
		Review:   service.NewReviewService(sessionRepo, eventRepo, courseRepo),
		Goals:    service.NewGoalService(sessionRepo),
		Grades:   service.NewGradeService(gradingRepo, courseRepo),
		Imports:  service.NewImportService(uow),

		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	// LLM-backed extraction is opt-in; everything else works without it.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client := llm.NewOllamaClient(llmCfg, observer)
		app.Extractor = extract.NewSyllabusExtractor(client)
		app.Drafter = extract.NewRoadmapDrafter(client)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
