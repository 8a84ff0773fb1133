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

// exerciseRepository implements the domain.ExerciseRepository interface using GORM.
type exerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository is the constructor for exerciseRepository.
func NewExerciseRepository(db *gorm.DB) repository.ExerciseRepository {
	return &exerciseRepository{db: db}
}

// ListByUserAndDate retrieves all exercises a user logged on a given date.
func (repo *exerciseRepository) ListByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.Exercise, error) {
	var rows []*model.ExerciseModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list exercises")
	}

	exercises := make([]*entity.Exercise, 0, len(rows))
	for _, row := range rows {
		exercises = append(exercises, toExerciseDomain(row))
	}

	return exercises, nil
}

// Create persists a new exercise entry to the database.
func (repo *exerciseRepository) Create(ctx context.Context, exercise *entity.Exercise) error {
	exerciseM := fromExerciseDomain(exercise)

	if err := repo.db.WithContext(ctx).Create(exerciseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create exercise")
	}

	exercise.ID = exerciseM.ID
	exercise.CreatedAt = exerciseM.CreatedAt

	return nil
}

// Delete removes an exercise entry owned by the given user. Scoping the
// delete by user_id keeps one user from deleting another user's entries;
// both a missing row and a foreign row surface as not found.
func (repo *exerciseRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ExerciseModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete exercise")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExerciseNotFound
	}

	return nil
}

// toExerciseDomain converts a GORM ExerciseModel to a domain Exercise entity.
func toExerciseDomain(data *model.ExerciseModel) *entity.Exercise {
	if data == nil {
		return nil
	}

	return &entity.Exercise{
		ID:              data.ID,
		UserID:          data.UserID,
		Date:            data.Date,
		Type:            entity.ExerciseType(data.Type),
		Name:            data.Name,
		DurationMinutes: data.DurationMinutes,
		CaloriesBurned:  data.CaloriesBurned,
		CreatedAt:       data.CreatedAt,
	}
}

// fromExerciseDomain converts a domain Exercise entity to a GORM ExerciseModel.
func fromExerciseDomain(data *entity.Exercise) *model.ExerciseModel {
	if data == nil {
		return nil
	}

	return &model.ExerciseModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Date:            data.Date,
		Type:            string(data.Type),
		Name:            data.Name,
		DurationMinutes: data.DurationMinutes,
		CaloriesBurned:  data.CaloriesBurned,
	}
}
