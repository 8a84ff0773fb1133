// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "id = ?", id).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByToken retrieves the user holding the given API token. The api_token
// column is unique, so at most one row can match.
func (repo *userRepository) FindByToken(ctx context.Context, token string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "api_token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by token")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user's row in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// ReplaceToken overwrites the stored token and expiry in one UPDATE statement.
// Whatever token the row held before stops matching the moment this commits,
// which is what keeps a user down to a single active token.
func (repo *userRepository) ReplaceToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"api_token":        token,
			"token_expires_at": expiresAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to replace api token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ClearToken nulls out the stored token and expiry, ending the session.
func (repo *userRepository) ClearToken(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"api_token":        nil,
			"token_expires_at": nil,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to clear api token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpsertWeightEntry records the weight for (user, date), overwriting the
// weight when a row for that day already exists.
func (repo *userRepository) UpsertWeightEntry(ctx context.Context, entry *entity.WeightEntry) error {
	entryM := &model.WeightHistoryModel{
		UserID: entry.UserID,
		Date:   entry.Date,
		Weight: entry.Weight,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"weight"}),
		}).
		Create(entryM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert weight entry")
	}

	return nil
}

// ListWeightHistory returns all weight entries for a user, oldest first.
func (repo *userRepository) ListWeightHistory(ctx context.Context, userID uuid.UUID) ([]*entity.WeightEntry, error) {
	var rows []*model.WeightHistoryModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list weight history")
	}

	entries := make([]*entity.WeightEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &entity.WeightEntry{
			UserID: row.UserID,
			Date:   row.Date,
			Weight: row.Weight,
		})
	}

	return entries, nil
}

// List returns all users ordered by registration time, newest first.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var rows []*model.UserModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toUserDomain(row))
	}

	return users, nil
}

// Count returns the total number of registered users.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:               data.ID,
		Email:            data.Email,
		Name:             data.Name,
		PasswordHash:     data.PasswordHash,
		Age:              data.Age,
		Height:           data.Height,
		Weight:           data.Weight,
		Gender:           data.Gender,
		TargetWeight:     data.TargetWeight,
		DailyCalorieGoal: data.DailyCalorieGoal,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}

	if data.APIToken != nil {
		token := &entity.APIToken{Value: *data.APIToken}
		if data.TokenExpiresAt != nil {
			token.ExpiresAt = *data.TokenExpiresAt
		}
		user.Token = token
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:               data.ID,
		Email:            data.Email,
		Name:             data.Name,
		PasswordHash:     data.PasswordHash,
		Age:              data.Age,
		Height:           data.Height,
		Weight:           data.Weight,
		Gender:           data.Gender,
		TargetWeight:     data.TargetWeight,
		DailyCalorieGoal: data.DailyCalorieGoal,
		CreatedAt:        data.CreatedAt,
	}

	if data.Token != nil {
		value := data.Token.Value
		userM.APIToken = &value
		if !data.Token.ExpiresAt.IsZero() {
			expiresAt := data.Token.ExpiresAt
			userM.TokenExpiresAt = &expiresAt
		}
	}

	return userM
}
