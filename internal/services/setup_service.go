package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/onebluedot/site/internal/dataset"
	"github.com/onebluedot/site/internal/models"
	"github.com/onebluedot/site/internal/repository"
	"github.com/onebluedot/site/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SQLSTATE codes reported by the schema probes.
const (
	pgUndefinedTable  = "42P01"
	pgUndefinedColumn = "42703"
)

// The projects probe selects the newest columns so an old schema reports
// needsMigration.
const (
	projectsProbe = "SELECT id, year, tagline FROM projects LIMIT 1"
	settingsProbe = "SELECT featured_projects FROM homepage_settings LIMIT 1"
)

type SetupService interface {
	Check(ctx context.Context) models.DatabaseStatus
	// SeedDefaults fills an empty, fully migrated database with the default
	// projects and featured list. It reports whether anything was written.
	SeedDefaults(ctx context.Context) (bool, error)
}

type setupService struct {
	db           *gorm.DB
	projectRepo  repository.ProjectRepository
	settingsRepo repository.SettingsRepository
}

func NewSetupService(db *gorm.DB, projectRepo repository.ProjectRepository, settingsRepo repository.SettingsRepository) SetupService {
	return &setupService{db: db, projectRepo: projectRepo, settingsRepo: settingsRepo}
}

var _ SetupService = (*setupService)(nil)

func (s *setupService) Check(ctx context.Context) models.DatabaseStatus {
	projErr := s.db.WithContext(ctx).Exec(projectsProbe).Error
	setErr := s.db.WithContext(ctx).Exec(settingsProbe).Error
	return statusFrom(projErr, setErr)
}

func (s *setupService) SeedDefaults(ctx context.Context) (bool, error) {
	st := s.Check(ctx)
	if !st.IsSetup {
		logger.L().Warn("skip seeding, database not set up", zap.Any("status", st))
		return false, nil
	}
	return s.seedIfEmpty(ctx)
}

func (s *setupService) seedIfEmpty(ctx context.Context) (bool, error) {
	n, err := s.projectRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	projects := dataset.Fallback()
	if err := s.projectRepo.CreateMany(ctx, projects); err != nil {
		return false, err
	}
	if _, err := s.settingsRepo.Upsert(ctx, dataset.DefaultFeatured().FeaturedProjects); err != nil {
		return false, err
	}
	logger.L().Info("seeded default projects", zap.Int("count", len(projects)))
	return true, nil
}

// statusFrom folds the two probe results into a status. Errors other than a
// missing table or column mean the database could not be inspected at all.
func statusFrom(projErr, setErr error) models.DatabaseStatus {
	projExists, needsMigration, ok1 := classifyProbe(projErr)
	setExists, _, ok2 := classifyProbe(setErr)
	if !ok1 || !ok2 {
		logger.L().Error("setup probe failed", zap.NamedError("projects", projErr), zap.NamedError("settings", setErr))
		return models.DatabaseStatus{}
	}
	return models.DatabaseStatus{
		ProjectsExists: projExists,
		SettingsExists: setExists,
		IsSetup:        projExists && setExists && !needsMigration,
		NeedsMigration: needsMigration,
	}
}

func classifyProbe(err error) (exists, needsMigration, ok bool) {
	if err == nil {
		return true, false, true
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false, false, false
	}
	switch pgErr.Code {
	case pgUndefinedTable:
		return false, false, true
	case pgUndefinedColumn:
		return true, true, true
	}
	return false, false, false
}

// SetupMessage is the error text shown while the database is not ready.
func SetupMessage(st models.DatabaseStatus) string {
	switch {
	case st.NeedsMigration:
		return "Database schema needs to be updated. Please run the latest SQL schema."
	case !st.ProjectsExists:
		return "Projects table not found. Please run the SQL schema."
	case !st.SettingsExists:
		return "Settings table not found. Please run the SQL schema."
	}
	return "Database setup required."
}
