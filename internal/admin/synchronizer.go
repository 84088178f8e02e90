package admin

import (
	"context"
	"errors"
	"sync"

	"github.com/onebluedot/site/internal/dataset"
	"github.com/onebluedot/site/internal/models"
	"github.com/onebluedot/site/internal/validators"
	"github.com/onebluedot/site/pkg/logger"
	"go.uber.org/zap"
)

// State is a copy of what the admin panel shows. Fallback is set while a live
// session shows demo data; changes are refused until a load succeeds.
type State struct {
	Projects []models.Project        `json:"projects"`
	Settings models.HomepageSettings `json:"settings"`
	Error    string                  `json:"error,omitempty"`
	Loading  bool                    `json:"loading"`
	Demo     bool                    `json:"demo"`
	Fallback bool                    `json:"fallback"`
}

// Synchronizer owns the admin state. Mutations either fully apply after the
// backend accepts them or leave the state as it was and record the error. A
// delete whose featured cleanup fails still drops the project.
type Synchronizer struct {
	backend Backend

	mu    sync.Mutex
	state State
	gen   uint64
}

func New(backend Backend, demo bool) *Synchronizer {
	return &Synchronizer{
		backend: backend,
		state:   State{Settings: models.NewHomepageSettings(), Demo: demo},
	}
}

// NewForToken picks the demo backend for the demo token and the live backend
// otherwise.
func NewForToken(token string, api API) *Synchronizer {
	if token == dataset.DemoToken {
		return New(NewDemoBackend(), true)
	}
	return New(NewLiveBackend(api), false)
}

// Load replaces the state with fresh data. If another Load starts before this
// one finishes, this one's result is discarded.
func (s *Synchronizer) Load(ctx context.Context) State {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state.Loading = true
	s.state.Error = ""
	s.mu.Unlock()

	d := s.backend.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		logger.L().Debug("discarding stale load", zap.Uint64("generation", gen), zap.Uint64("current", s.gen))
		return s.snapshotLocked()
	}
	s.state.Projects = d.Projects
	if s.state.Projects == nil {
		s.state.Projects = []models.Project{}
	}
	s.state.Settings = d.Settings.Clone()
	s.state.Error = d.Error
	s.state.Fallback = d.Fallback
	s.state.Loading = false
	return s.snapshotLocked()
}

// Snapshot returns a deep copy of the current state.
func (s *Synchronizer) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Synchronizer) snapshotLocked() State {
	out := s.state
	out.Projects = make([]models.Project, len(s.state.Projects))
	for i, p := range s.state.Projects {
		out.Projects[i] = p.Clone()
	}
	out.Settings = s.state.Settings.Clone()
	return out
}

// ClearError dismisses the current message.
func (s *Synchronizer) ClearError() {
	s.mu.Lock()
	s.state.Error = ""
	s.mu.Unlock()
}

// SaveProject creates a project, or updates the project with editingID when
// it is non-empty. Missing required fields fail with *ValidationError before
// the backend is called, and do not touch the state.
func (s *Synchronizer) SaveProject(ctx context.Context, editingID string, in models.ProjectInput) (models.Project, error) {
	if err := validators.New().Struct(in); err != nil {
		return models.Project{}, &ValidationError{Fields: validators.Fields(err)}
	}

	if err := s.refuseFallback(); err != nil {
		return models.Project{}, err
	}

	var existing *models.Project
	if editingID != "" {
		snap := s.Snapshot()
		for i := range snap.Projects {
			if snap.Projects[i].ID == editingID {
				existing = &snap.Projects[i]
				break
			}
		}
		if existing == nil {
			return models.Project{}, ErrUnknownProject
		}
	}

	p, err := s.backend.SaveProject(ctx, existing, in)
	if err != nil {
		s.fail("failed to save project", err)
		return models.Project{}, err
	}
	p.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()
	replaced := false
	if existing != nil {
		for i := range s.state.Projects {
			if s.state.Projects[i].ID == existing.ID {
				s.state.Projects[i] = p.Clone()
				replaced = true
				break
			}
		}
	}
	if !replaced {
		s.state.Projects = append(s.state.Projects, p.Clone())
	}
	s.noticeLocked()
	return p, nil
}

// DeleteProject removes a project. The live backend also drops it from the
// featured list; the demo backend does not.
func (s *Synchronizer) DeleteProject(ctx context.Context, id string) error {
	if err := s.refuseFallback(); err != nil {
		return err
	}
	settings := s.Snapshot().Settings

	next, err := s.backend.DeleteProject(ctx, id, settings)
	if err != nil && !errors.Is(err, ErrFeaturedCleanup) {
		s.fail("failed to delete project", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]models.Project, 0, len(s.state.Projects))
	for _, p := range s.state.Projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.state.Projects = kept
	if err != nil {
		logger.L().Error("featured cleanup failed", zap.String("project_id", id), zap.Error(err))
		s.state.Error = err.Error()
		return err
	}
	s.state.Settings = next.Clone()
	s.noticeLocked()
	return nil
}

// ToggleFeature removes id from the featured list when present and appends it
// otherwise.
func (s *Synchronizer) ToggleFeature(ctx context.Context, id string) error {
	return s.setFeatured(ctx, s.Snapshot().Settings.Toggle(id))
}

// SetFeatured replaces the featured list.
func (s *Synchronizer) SetFeatured(ctx context.Context, ids []string) error {
	return s.setFeatured(ctx, models.NewHomepageSettings(ids...))
}

func (s *Synchronizer) setFeatured(ctx context.Context, next models.HomepageSettings) error {
	if err := s.refuseFallback(); err != nil {
		return err
	}
	if err := s.backend.SetFeatured(ctx, next); err != nil {
		s.fail("failed to update homepage settings", err)
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Settings = next.Clone()
	s.noticeLocked()
	return nil
}

func (s *Synchronizer) refuseFallback() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Fallback {
		return nil
	}
	logger.L().Warn("refusing change to fallback data")
	s.state.Error = ErrFallbackData.Error()
	return ErrFallbackData
}

func (s *Synchronizer) fail(msg string, err error) {
	logger.L().Error(msg, zap.Error(err))
	s.mu.Lock()
	s.state.Error = err.Error()
	s.mu.Unlock()
}

func (s *Synchronizer) noticeLocked() {
	if n := s.backend.Notice(); n != "" {
		s.state.Error = n
	}
}
