package user

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/matsols/matsols-api/internal/domain/user"
	"github.com/matsols/matsols-api/internal/infrastructure/database/entities"
	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

// UserRepository persists portal accounts.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository constructs the user repository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts an account. A taken email yields a CONFLICT error.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	row := entities.NewSchemaUser(u)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueViolation(err) {
			return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeConflict,
				"email already registered", err)
		}
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to create user", err)
	}
	return nil
}

// FindByEmail retrieves an account by email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
				"user not found", nil)
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to find user", err)
	}
	return row.EtoD(), nil
}

// UpsertByEmail creates the account or replaces its password and role.
func (r *UserRepository) UpsertByEmail(ctx context.Context, u *domain.User) error {
	row := entities.NewSchemaUser(u)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "role", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to upsert user", err)
	}

	stored, err := r.FindByEmail(ctx, u.Email)
	if err != nil {
		return err
	}
	*u = *stored
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
