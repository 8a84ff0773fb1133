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

func newTestProfileService(t *testing.T) (*profileService, *fakeUserRepo) {
	t.Helper()

	users := newFakeUserRepo()
	svc, ok := NewProfileService(ProfileServiceParams{
		TxManager: &fakeTxManager{factory: &fakeRepoFactory{users: users}},
		UserRepo:  users,
		Logger:    newDiscardLogger(),
	}).(*profileService)
	require.True(t, ok)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }

	return svc, users
}

func seedProfileUser(t *testing.T, users *fakeUserRepo) *entity.User {
	t.Helper()

	weight := 80.0
	user := &entity.User{
		Name:             "Alice",
		Email:            "alice@example.com",
		PasswordHash:     "hashed:password123",
		Weight:           &weight,
		DailyCalorieGoal: 2000,
	}
	require.NoError(t, users.Create(context.Background(), user))

	return user
}

func TestProfileService_Get(t *testing.T) {
	svc, users := newTestProfileService(t)
	user := seedProfileUser(t, users)

	out, err := svc.Get(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, "Alice", out.User.Name)
	assert.Empty(t, out.WeightHistory)
}

func TestProfileService_Get_UnknownUser(t *testing.T) {
	svc, _ := newTestProfileService(t)

	_, err := svc.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_Update_PartialFieldsOnly(t *testing.T) {
	svc, users := newTestProfileService(t)
	user := seedProfileUser(t, users)

	name := "Alice B."
	goal := 1800
	out, err := svc.Update(context.Background(), &usecase.UpdateProfileInput{
		UserID:           user.ID,
		Name:             &name,
		DailyCalorieGoal: &goal,
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice B.", out.User.Name)
	assert.Equal(t, 1800, out.User.DailyCalorieGoal)
	// Untouched fields survive.
	require.NotNil(t, out.User.Weight)
	assert.Equal(t, 80.0, *out.User.Weight)
	// No weight change, no history entry.
	assert.Empty(t, out.WeightHistory)
}

func TestProfileService_Update_WeightChangeLandsInHistory(t *testing.T) {
	svc, users := newTestProfileService(t)
	user := seedProfileUser(t, users)

	weight := 78.5
	out, err := svc.Update(context.Background(), &usecase.UpdateProfileInput{
		UserID: user.ID,
		Weight: &weight,
	})

	require.NoError(t, err)
	require.Len(t, out.WeightHistory, 1)
	assert.Equal(t, 78.5, out.WeightHistory[0].Weight)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), out.WeightHistory[0].Date)
}

func TestProfileService_Update_SameWeightSkipsHistory(t *testing.T) {
	svc, users := newTestProfileService(t)
	user := seedProfileUser(t, users)

	weight := 80.0
	out, err := svc.Update(context.Background(), &usecase.UpdateProfileInput{
		UserID: user.ID,
		Weight: &weight,
	})

	require.NoError(t, err)
	assert.Empty(t, out.WeightHistory)
}

func TestProfileService_Update_UnknownUser(t *testing.T) {
	svc, _ := newTestProfileService(t)

	name := "Nobody"
	_, err := svc.Update(context.Background(), &usecase.UpdateProfileInput{
		UserID: uuid.New(),
		Name:   &name,
	})

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
