package services

import (
	"context"

	"github.com/onebluedot/site/internal/models"
	"github.com/onebluedot/site/internal/repository"
	appErr "github.com/onebluedot/site/pkg/errors"
)

type SettingsService interface {
	Get(ctx context.Context) (models.HomepageSettings, error)
	// Update replaces the featured list. Ids are stored as given, including
	// ids of projects that do not exist.
	Update(ctx context.Context, featured []string) (models.HomepageSettings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) Get(ctx context.Context) (models.HomepageSettings, error) {
	st, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return models.HomepageSettings{}, appErr.Wrap(err, appErr.CodeInternal, "Failed to fetch homepage settings")
	}
	return st, nil
}

func (s *settingsService) Update(ctx context.Context, featured []string) (models.HomepageSettings, error) {
	if featured == nil {
		featured = []string{}
	}
	st, err := s.settingsRepo.Upsert(ctx, featured)
	if err != nil {
		return models.HomepageSettings{}, appErr.Wrap(err, appErr.CodeInternal, "Failed to update homepage settings")
	}
	return st, nil
}
