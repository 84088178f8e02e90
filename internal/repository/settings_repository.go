package repository

import (
	"context"
	"errors"
	"time"

	"github.com/onebluedot/site/internal/models"
	appErr "github.com/onebluedot/site/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository persists the homepage settings singleton.
type SettingsRepository interface {
	// Get returns an empty featured list when the row does not exist yet.
	Get(ctx context.Context) (models.HomepageSettings, error)
	Upsert(ctx context.Context, featured []string) (models.HomepageSettings, error)
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (models.HomepageSettings, error) {
	var s models.HomepageSettings
	err := r.db.WithContext(ctx).First(&s, "id = ?", models.HomepageSettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewHomepageSettings(), nil
	}
	if err != nil {
		return models.HomepageSettings{}, appErr.Wrap(err, appErr.CodeInternal, "get homepage settings failed")
	}
	if s.FeaturedProjects == nil {
		s.FeaturedProjects = models.NewHomepageSettings().FeaturedProjects
	}
	return s, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, featured []string) (models.HomepageSettings, error) {
	s := models.NewHomepageSettings(featured...)
	s.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"featured_projects", "updated_at"}),
		}).
		Create(&s).Error
	if err != nil {
		return models.HomepageSettings{}, appErr.Wrap(err, appErr.CodeInternal, "update homepage settings failed")
	}
	return s, nil
}
