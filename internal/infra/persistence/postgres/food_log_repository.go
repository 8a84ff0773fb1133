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
)

// foodLogRepository implements the domain.FoodLogRepository interface using GORM.
type foodLogRepository struct {
	db *gorm.DB
}

// NewFoodLogRepository is the constructor for foodLogRepository.
func NewFoodLogRepository(db *gorm.DB) repository.FoodLogRepository {
	return &foodLogRepository{db: db}
}

// ListByUserAndDate retrieves all meals a user logged on a given date.
func (repo *foodLogRepository) ListByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.FoodLog, error) {
	var rows []*model.FoodLogModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list food logs")
	}

	logs := make([]*entity.FoodLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, toFoodLogDomain(row))
	}

	return logs, nil
}

// Create persists a new food log entry to the database.
func (repo *foodLogRepository) Create(ctx context.Context, log *entity.FoodLog) error {
	logM := fromFoodLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create food log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// Delete removes a food log entry owned by the given user.
func (repo *foodLogRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.FoodLogModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete food log")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFoodLogNotFound
	}

	return nil
}

// toFoodLogDomain converts a GORM FoodLogModel to a domain FoodLog entity.
func toFoodLogDomain(data *model.FoodLogModel) *entity.FoodLog {
	if data == nil {
		return nil
	}

	return &entity.FoodLog{
		ID:        data.ID,
		UserID:    data.UserID,
		Date:      data.Date,
		FoodName:  data.FoodName,
		Calories:  data.Calories,
		Protein:   data.Protein,
		Carbs:     data.Carbs,
		Fat:       data.Fat,
		CreatedAt: data.CreatedAt,
	}
}

// fromFoodLogDomain converts a domain FoodLog entity to a GORM FoodLogModel.
func fromFoodLogDomain(data *entity.FoodLog) *model.FoodLogModel {
	if data == nil {
		return nil
	}

	return &model.FoodLogModel{
		ID:       data.ID,
		UserID:   data.UserID,
		Date:     data.Date,
		FoodName: data.FoodName,
		Calories: data.Calories,
		Protein:  data.Protein,
		Carbs:    data.Carbs,
		Fat:      data.Fat,
	}
}
