package impl

import (
	"context"
	"testing"
	"time"

	"fitlife/internal/domain/entity"
	domainerrors "fitlife/internal/domain/errors"
	"fitlife/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExerciseService(t *testing.T) (usecase.ExerciseUsecase, *fakeExerciseRepo) {
	t.Helper()

	repo := newFakeExerciseRepo()
	svc := NewExerciseService(ExerciseServiceParams{
		ExerciseRepo: repo,
		Logger:       newDiscardLogger(),
	})

	return svc, repo
}

func TestExerciseService_LogAndListByDate(t *testing.T) {
	svc, _ := newTestExerciseService(t)

	userID := uuid.New()
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	logged, err := svc.Log(context.Background(), &usecase.LogExerciseInput{
		UserID:          userID,
		Date:            date,
		Type:            entity.ExerciseTypeCardio,
		Name:            "Morning run",
		DurationMinutes: 30,
		CaloriesBurned:  280,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, logged.ID)

	exercises, err := svc.ListByDate(context.Background(), userID, date)
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "Morning run", exercises[0].Name)

	// Another user's day stays empty.
	other, err := svc.ListByDate(context.Background(), uuid.New(), date)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestExerciseService_Log_RejectsUnknownType(t *testing.T) {
	svc, repo := newTestExerciseService(t)

	_, err := svc.Log(context.Background(), &usecase.LogExerciseInput{
		UserID:          uuid.New(),
		Date:            time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Type:            entity.ExerciseType("yoga"),
		Name:            "Stretching",
		DurationMinutes: 20,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Empty(t, repo.exercises)
}

func TestExerciseService_Delete_OwnershipEnforced(t *testing.T) {
	svc, _ := newTestExerciseService(t)

	userID := uuid.New()
	logged, err := svc.Log(context.Background(), &usecase.LogExerciseInput{
		UserID:          userID,
		Date:            time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Type:            entity.ExerciseTypeWeights,
		Name:            "Deadlift",
		DurationMinutes: 45,
	})
	require.NoError(t, err)

	// Someone else's delete reports not found and leaves the row.
	err = svc.Delete(context.Background(), uuid.New(), logged.ID)
	assert.ErrorIs(t, err, domainerrors.ErrExerciseNotFound)

	require.NoError(t, svc.Delete(context.Background(), userID, logged.ID))

	err = svc.Delete(context.Background(), userID, logged.ID)
	assert.ErrorIs(t, err, domainerrors.ErrExerciseNotFound)
}
