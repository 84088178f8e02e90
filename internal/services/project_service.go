package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/onebluedot/site/internal/models"
	"github.com/onebluedot/site/internal/repository"
	"github.com/onebluedot/site/internal/storage"
	"github.com/onebluedot/site/internal/validators"
	appErr "github.com/onebluedot/site/pkg/errors"
	"github.com/onebluedot/site/pkg/logger"
	"go.uber.org/zap"
)

// ImagePurger schedules removal of stored images a deleted project pointed at.
type ImagePurger interface {
	EnqueuePurge(ctx context.Context, projectID string, keys []string) error
}

type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, in models.ProjectInput) (*models.Project, error)
	Update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error)
	// Delete succeeds when the project is already gone.
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
	purger      ImagePurger
	now         func() time.Time
}

// NewProjectService builds the service. purger may be nil, in which case
// uploaded images outlive their project.
func NewProjectService(projectRepo repository.ProjectRepository, purger ImagePurger) ProjectService {
	return &projectService{projectRepo: projectRepo, purger: purger, now: time.Now}
}

var _ ProjectService = (*projectService)(nil)

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	out, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "Failed to fetch projects")
	}
	for i := range out {
		out[i].Normalize()
	}
	return out, nil
}

func (s *projectService) Get(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	if err := s.projectRepo.GetByID(ctx, id, &p); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeNotFound, "Project not found")
		}
		return nil, appErr.Wrap(err, appErr.CodeInternal, "Failed to fetch project")
	}
	p.Normalize()
	return &p, nil
}

func (s *projectService) Create(ctx context.Context, in models.ProjectInput) (*models.Project, error) {
	if err := validators.New().Struct(in); err != nil {
		return nil, invalidFields(err)
	}
	p := in.Project()
	if p.ID == "" {
		p.ID = fmt.Sprintf("project-%d", s.now().UnixMilli())
	}
	logger.L().Info("create project", zap.String("project_id", p.ID))
	if err := s.projectRepo.Create(ctx, &p); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, appErr.Wrap(err, appErr.CodeConflict, "Project with this id already exists")
		}
		return nil, appErr.Wrap(err, appErr.CodeInternal, "Failed to create project")
	}
	return &p, nil
}

func (s *projectService) Update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	if err := validators.New().Struct(patch); err != nil {
		return nil, invalidFields(err)
	}
	p, err := s.projectRepo.Patch(ctx, id, patch)
	if err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeNotFound, "Project not found")
		}
		return nil, appErr.Wrap(err, appErr.CodeInternal, "Failed to update project")
	}
	p.Normalize()
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	var p models.Project
	if err := s.projectRepo.GetByID(ctx, id, &p); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil
		}
		return appErr.Wrap(err, appErr.CodeInternal, "Failed to delete project")
	}
	if err := s.projectRepo.Delete(ctx, id); err != nil && !appErr.IsCode(err, appErr.CodeNotFound) {
		return appErr.Wrap(err, appErr.CodeInternal, "Failed to delete project")
	}
	logger.L().Info("project deleted", zap.String("project_id", id))

	keys := storage.KeysFromURLs(p.ImageURLs())
	if len(keys) == 0 {
		return nil
	}
	if s.purger == nil {
		logger.L().Warn("image purger not configured, keeping images", zap.String("project_id", id), zap.Strings("keys", keys))
		return nil
	}
	if err := s.purger.EnqueuePurge(ctx, id, keys); err != nil {
		// the project row is gone already; orphaned images are harmless
		logger.L().Error("enqueue image purge failed", zap.String("project_id", id), zap.Error(err))
	}
	return nil
}

func invalidFields(err error) error {
	fields := validators.Fields(err)
	if len(fields) == 0 {
		return appErr.Wrap(err, appErr.CodeInvalid, "Invalid project data")
	}
	return appErr.New(appErr.CodeInvalid, "Missing or invalid fields: "+strings.Join(fields, ", ")).
		WithMeta("fields", fields)
}
