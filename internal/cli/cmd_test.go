package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmtabor/studyarc/internal/domain"
	"github.com/jmtabor/studyarc/internal/repository"
)

type fakeCourseService struct {
	created []*domain.Course
	courses []*domain.Course
}

func (f *fakeCourseService) Create(ctx context.Context, c *domain.Course) error {
	c.ID = "11111111-2222-3333-4444-555555555555"
	f.created = append(f.created, c)
	return nil
}

func (f *fakeCourseService) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	for _, c := range f.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCourseService) Resolve(ctx context.Context, ref string) (*domain.Course, error) {
	for _, c := range f.courses {
		if c.ID == ref || c.Name == ref {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCourseService) List(ctx context.Context) ([]*domain.Course, error) {
	return f.courses, nil
}

func (f *fakeCourseService) Delete(ctx context.Context, id string) error { return nil }

func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetArgs(args)
	return root.Execute()
}

func TestCourseAdd_CallsService(t *testing.T) {
	courses := &fakeCourseService{}
	app := &App{Courses: courses}

	err := execute(t, app, "course", "add", "Organic Chemistry")
	require.NoError(t, err)

	require.Len(t, courses.created, 1)
	assert.Equal(t, "Organic Chemistry", courses.created[0].Name)
}

func TestCourseRemove_UnknownCourse(t *testing.T) {
	app := &App{Courses: &fakeCourseService{}}

	err := execute(t, app, "course", "remove", "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGradeSet_RequiresScoreOrClear(t *testing.T) {
	app := &App{}

	err := execute(t, app, "grade", "set", "some-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--clear")
}

func TestSyllabusParse_RequiresLLM(t *testing.T) {
	app := &App{}

	err := execute(t, app, "syllabus", "parse", "syllabus.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STUDYARC_LLM_ENABLED")
}

func TestRoadmapDraft_RequiresLLM(t *testing.T) {
	app := &App{}

	err := execute(t, app, "roadmap", "draft", "Chem")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STUDYARC_LLM_ENABLED")
}

func TestTimer_RequiresInteractiveTerminal(t *testing.T) {
	app := &App{Interactive: false}

	err := execute(t, app, "timer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestTimer_UnknownPreset(t *testing.T) {
	app := &App{Interactive: true}

	err := execute(t, app, "timer", "marathon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}
