package repository

import (
	"context"
	"errors"

	"github.com/onebluedot/site/internal/models"
	appErr "github.com/onebluedot/site/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepository interface {
	BaseRepository[models.Project]
	List(ctx context.Context) ([]models.Project, error)
	Patch(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error)
	Count(ctx context.Context) (int64, error)
	CreateMany(ctx context.Context, projects []models.Project) error
	// ReferencesImage reports whether any project still points at the storage key.
	ReferencesImage(ctx context.Context, key string) (bool, error)
}

type projectRepository struct {
	BaseRepository[models.Project]
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{BaseRepository: NewBaseRepository[models.Project](db, "project"), db: db}
}

func (r *projectRepository) List(ctx context.Context) ([]models.Project, error) {
	out := []models.Project{}
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list projects failed")
	}
	return out, nil
}

func (r *projectRepository) Patch(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	var p models.Project
	cols := patch.Columns()
	if len(cols) == 0 {
		if err := r.GetByID(ctx, id, &p); err != nil {
			return nil, err
		}
		return &p, nil
	}
	res := r.db.WithContext(ctx).
		Model(&p).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(cols)
	if res.Error != nil {
		return nil, appErr.Wrap(res.Error, appErr.CodeInternal, "update project failed")
	}
	if res.RowsAffected == 0 {
		return nil, appErr.New(appErr.CodeNotFound, "project not found")
	}
	return &p, nil
}

func (r *projectRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&n).Error; err != nil {
		return 0, appErr.Wrap(err, appErr.CodeInternal, "count projects failed")
	}
	return n, nil
}

func (r *projectRepository) CreateMany(ctx context.Context, projects []models.Project) error {
	if len(projects) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&projects).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "insert projects failed")
	}
	return nil
}

func (r *projectRepository) ReferencesImage(ctx context.Context, key string) (bool, error) {
	var p models.Project
	pattern := "%" + key + "%"
	err := r.db.WithContext(ctx).
		Select("id").
		Where("cover_image LIKE ? OR gallery_images::text LIKE ?", pattern, pattern).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, appErr.Wrap(err, appErr.CodeInternal, "image reference lookup failed")
	}
	return true, nil
}
