package postgres

import (
	"context"
	"time"

	"fitlife/internal/domain/entity"
	domainerrors "fitlife/internal/domain/errors"
	"fitlife/internal/domain/repository"
	"fitlife/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// dailyStatRepository implements the domain.DailyStatRepository interface using GORM.
type dailyStatRepository struct {
	db *gorm.DB
}

// NewDailyStatRepository is the constructor for dailyStatRepository.
func NewDailyStatRepository(db *gorm.DB) repository.DailyStatRepository {
	return &dailyStatRepository{db: db}
}

// ListRecent retrieves the user's statistics rows for the last N days,
// newest first. Days the user never saved simply have no row.
func (repo *dailyStatRepository) ListRecent(ctx context.Context, userID uuid.UUID, days int) ([]*entity.DailyStat, error) {
	cutoff := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(days - 1))

	var rows []*model.DailyStatModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, cutoff).
		Order("date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list daily statistics")
	}

	stats := make([]*entity.DailyStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, toDailyStatDomain(row))
	}

	return stats, nil
}

// Upsert saves the statistics row for (user, date). The composite primary
// key turns a second save for the same day into an overwrite.
func (repo *dailyStatRepository) Upsert(ctx context.Context, stat *entity.DailyStat) error {
	statM := fromDailyStatDomain(stat)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			UpdateAll: true,
		}).
		Create(statM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert daily statistics")
	}

	stat.UpdatedAt = statM.UpdatedAt

	return nil
}

// toDailyStatDomain converts a GORM DailyStatModel to a domain DailyStat entity.
func toDailyStatDomain(data *model.DailyStatModel) *entity.DailyStat {
	if data == nil {
		return nil
	}

	return &entity.DailyStat{
		UserID:          data.UserID,
		Date:            data.Date,
		CaloriesIn:      data.CaloriesIn,
		CaloriesOut:     data.CaloriesOut,
		WaterIntake:     data.WaterIntake,
		ExerciseMinutes: data.ExerciseMinutes,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromDailyStatDomain converts a domain DailyStat entity to a GORM DailyStatModel.
func fromDailyStatDomain(data *entity.DailyStat) *model.DailyStatModel {
	if data == nil {
		return nil
	}

	return &model.DailyStatModel{
		UserID:          data.UserID,
		Date:            data.Date,
		CaloriesIn:      data.CaloriesIn,
		CaloriesOut:     data.CaloriesOut,
		WaterIntake:     data.WaterIntake,
		ExerciseMinutes: data.ExerciseMinutes,
	}
}
