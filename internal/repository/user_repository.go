package repository

import (
	"context"
	"errors"

	"github.com/onebluedot/site/internal/models"
	appErr "github.com/onebluedot/site/pkg/errors"
	"gorm.io/gorm"
)

type UserRepository interface {
	BaseRepository[models.AdminUser]
	GetByEmail(ctx context.Context, email string, dest *models.AdminUser) error
}

type userRepository struct {
	BaseRepository[models.AdminUser]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository[models.AdminUser](db, "user"), db: db}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string, dest *models.AdminUser) error {
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "user not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get user by email failed")
	}
	return nil
}
