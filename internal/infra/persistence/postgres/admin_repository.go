package postgres

import (
	"context"

	"fitlife/internal/domain/entity"
	domainerrors "fitlife/internal/domain/errors"
	"fitlife/internal/domain/repository"
	"fitlife/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the domain.AdminRepository interface using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// FindByUsername retrieves a single admin by their login name.
// The lookup is by username only; the caller verifies the password.
func (repo *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var adminM model.AdminModel
	if err := repo.db.WithContext(ctx).First(&adminM, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by username")
	}

	return toAdminDomain(&adminM), nil
}

// FindByID retrieves a single admin by their unique ID.
func (repo *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	var adminM model.AdminModel
	if err := repo.db.WithContext(ctx).First(&adminM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by id")
	}

	return toAdminDomain(&adminM), nil
}

// Create persists a new admin account to the database.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAdminAlreadyExists.WrapMessage("username already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt

	return nil
}

// toAdminDomain converts a GORM AdminModel to a domain Admin entity.
func toAdminDomain(data *model.AdminModel) *entity.Admin {
	if data == nil {
		return nil
	}

	return &entity.Admin{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

// fromAdminDomain converts a domain Admin entity to a GORM AdminModel.
func fromAdminDomain(data *entity.Admin) *model.AdminModel {
	if data == nil {
		return nil
	}

	return &model.AdminModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}
