package impl

import (
	"context"
	"testing"
	"time"

	"fitlife/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStatsService(t *testing.T) (usecase.StatsUsecase, *fakeDailyStatRepo) {
	t.Helper()

	repo := newFakeDailyStatRepo()
	svc := NewStatsService(StatsServiceParams{
		StatRepo: repo,
		Logger:   newDiscardLogger(),
	})

	return svc, repo
}

func TestStatsService_Save_OverwritesSameDay(t *testing.T) {
	svc, _ := newTestStatsService(t)

	userID := uuid.New()
	date := time.Now().UTC().Truncate(24 * time.Hour)

	_, err := svc.Save(context.Background(), &usecase.SaveStatsInput{
		UserID:     userID,
		Date:       date,
		CaloriesIn: 1800,
	})
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), &usecase.SaveStatsInput{
		UserID:      userID,
		Date:        date,
		CaloriesIn:  2100,
		CaloriesOut: 400,
	})
	require.NoError(t, err)

	stats, err := svc.Recent(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 2100, stats[0].CaloriesIn)
	assert.Equal(t, 400, stats[0].CaloriesOut)
}

func TestStatsService_Recent_OnlyLastSevenDays(t *testing.T) {
	svc, _ := newTestStatsService(t)

	userID := uuid.New()
	today := time.Now().UTC().Truncate(24 * time.Hour)

	for _, offset := range []int{0, -3, -6, -7, -30} {
		_, err := svc.Save(context.Background(), &usecase.SaveStatsInput{
			UserID:     userID,
			Date:       today.AddDate(0, 0, offset),
			CaloriesIn: 2000,
		})
		require.NoError(t, err)
	}

	stats, err := svc.Recent(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, stats, 3)
}
