package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jmtabor/studyarc/internal/db"
	"github.com/jmtabor/studyarc/internal/importer"
	"github.com/jmtabor/studyarc/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportSyllabus(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadSyllabusSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportSyllabusFromSchema(ctx, schema)
}

func (s *importService) ImportSyllabusFromSchema(ctx context.Context, schema *importer.SyllabusSchema) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"course": schema.Course.Name}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-syllabus",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if errs := importer.ValidateSyllabusSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	generated := importer.Convert(schema)
	fields["event_count"] = len(generated.Events)
	fields["category_count"] = len(generated.Categories)
	fields["roadmap_count"] = len(generated.Roadmap)

	// Persist the whole syllabus atomically.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCourses := repository.NewSQLiteCourseRepo(tx)
		txEvents := repository.NewSQLiteEventRepo(tx)
		txGrading := repository.NewSQLiteGradingRepo(tx)
		txRoadmap := repository.NewSQLiteRoadmapRepo(tx)

		if err := txCourses.Create(ctx, generated.Course); err != nil {
			return fmt.Errorf("creating course: %w", err)
		}
		for _, e := range generated.Events {
			if err := txEvents.Create(ctx, e); err != nil {
				return fmt.Errorf("creating event %q: %w", e.Title, err)
			}
		}
		for _, c := range generated.Categories {
			if err := txGrading.Create(ctx, c); err != nil {
				return fmt.Errorf("creating grade category %q: %w", c.Category, err)
			}
		}
		for _, r := range generated.Roadmap {
			if err := txRoadmap.Create(ctx, r); err != nil {
				return fmt.Errorf("creating roadmap entry for week %d: %w", r.WeekNumber, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Course:        generated.Course,
		EventCount:    len(generated.Events),
		CategoryCount: len(generated.Categories),
		RoadmapCount:  len(generated.Roadmap),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
