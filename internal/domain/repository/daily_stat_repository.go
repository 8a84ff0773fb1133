package repository

import (
	"context"

	"fitlife/internal/domain/entity"

	"github.com/google/uuid"
)

// DailyStatRepository defines the standard operations for daily statistics persistence.
type DailyStatRepository interface {
	// ListRecent retrieves the user's statistics for the last N days,
	// ordered by date descending. Days without a saved row are simply absent.
	ListRecent(ctx context.Context, userID uuid.UUID, days int) ([]*entity.DailyStat, error)

	// Upsert saves the statistics row for (user, date), inserting it when
	// missing and overwriting all counters when present.
	Upsert(ctx context.Context, stat *entity.DailyStat) error
}
