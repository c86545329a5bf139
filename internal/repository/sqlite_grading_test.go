package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmtabor/studyarc/internal/testutil"
)

func gradingTestSetup(t *testing.T) (*SQLiteGradingRepo, string) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	courseRepo := NewSQLiteCourseRepo(db)
	gradingRepo := NewSQLiteGradingRepo(db)

	course := testutil.NewTestCourse("Physics")
	require.NoError(t, courseRepo.Create(ctx, course))

	return gradingRepo, course.ID
}

func TestGradingRepo_CreateAndGetByID(t *testing.T) {
	repo, courseID := gradingTestSetup(t)
	ctx := context.Background()

	cat := testutil.NewTestCategory(courseID, "Homework", 20, testutil.WithScore(88))
	require.NoError(t, repo.Create(ctx, cat))

	fetched, err := repo.GetByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Homework", fetched.Category)
	assert.Equal(t, 20.0, fetched.Weight)
	require.NotNil(t, fetched.CurrentScore)
	assert.Equal(t, 88.0, *fetched.CurrentScore)
}

func TestGradingRepo_UnscoredCategoryRoundTrips(t *testing.T) {
	repo, courseID := gradingTestSetup(t)
	ctx := context.Background()

	cat := testutil.NewTestCategory(courseID, "Final Exam", 40)
	require.NoError(t, repo.Create(ctx, cat))

	fetched, err := repo.GetByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.CurrentScore)
}

func TestGradingRepo_ListByCourse_SortedByWeight(t *testing.T) {
	repo, courseID := gradingTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestCategory(courseID, "Homework", 20)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestCategory(courseID, "Final", 40)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestCategory(courseID, "Quizzes", 10)))

	list, err := repo.ListByCourse(ctx, courseID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Final", list[0].Category)
	assert.Equal(t, "Homework", list[1].Category)
	assert.Equal(t, "Quizzes", list[2].Category)
}

func TestGradingRepo_UpdateScore(t *testing.T) {
	repo, courseID := gradingTestSetup(t)
	ctx := context.Background()

	cat := testutil.NewTestCategory(courseID, "Midterm", 30)
	require.NoError(t, repo.Create(ctx, cat))

	score := 91.5
	require.NoError(t, repo.UpdateScore(ctx, cat.ID, &score))

	fetched, err := repo.GetByID(ctx, cat.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.CurrentScore)
	assert.Equal(t, 91.5, *fetched.CurrentScore)

	// Clearing resets to unscored.
	require.NoError(t, repo.UpdateScore(ctx, cat.ID, nil))
	fetched, err = repo.GetByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.CurrentScore)
}

func TestGradingRepo_UpdateScore_NotFound(t *testing.T) {
	repo, _ := gradingTestSetup(t)

	score := 75.0
	err := repo.UpdateScore(context.Background(), "nonexistent", &score)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGradingRepo_Delete(t *testing.T) {
	repo, courseID := gradingTestSetup(t)
	ctx := context.Background()

	cat := testutil.NewTestCategory(courseID, "Labs", 15)
	require.NoError(t, repo.Create(ctx, cat))
	require.NoError(t, repo.Delete(ctx, cat.ID))

	_, err := repo.GetByID(ctx, cat.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
