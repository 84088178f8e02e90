package admin

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/onebluedot/site/internal/client"
	"github.com/onebluedot/site/internal/models"
	"github.com/onebluedot/site/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	MsgServerUnavailable = "Server not available - using demo data"
	MsgSetupRequired     = "Database setup required - using demo data"
)

// API is the part of the API client the live backend uses.
type API interface {
	TestConnection(ctx context.Context) client.ConnectionStatus
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	CreateProject(ctx context.Context, in models.ProjectInput) (string, error)
	UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
	GetHomepageSettings(ctx context.Context) (models.HomepageSettings, error)
	UpdateHomepageSettings(ctx context.Context, featured []string) (models.HomepageSettings, error)
}

// LiveBackend writes through the API and falls back to the demo dataset when
// the backend cannot be read.
type LiveBackend struct {
	api API
	now func() time.Time
}

func NewLiveBackend(api API) *LiveBackend {
	return &LiveBackend{api: api, now: time.Now}
}

func fallbackData(msg string) Data {
	d := demoData(msg)
	d.Fallback = true
	return d
}

func (b *LiveBackend) Load(ctx context.Context) Data {
	conn := b.api.TestConnection(ctx)
	if !conn.Connected {
		logger.L().Info("server not connected, using demo data as fallback")
		return fallbackData(MsgServerUnavailable)
	}
	if conn.SetupRequired {
		logger.L().Info("database setup required, using demo data as fallback")
		return fallbackData(MsgSetupRequired)
	}

	var d Data
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		d.Projects, err = b.api.ListProjects(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.Settings, err = b.api.GetHomepageSettings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.L().Error("failed to load admin data", zap.Error(err))
		return fallbackData(err.Error())
	}
	return d
}

func (b *LiveBackend) SaveProject(ctx context.Context, existing *models.Project, in models.ProjectInput) (models.Project, error) {
	if existing != nil {
		p, err := b.api.UpdateProject(ctx, existing.ID, models.PatchFrom(in))
		if err != nil {
			return models.Project{}, err
		}
		return *p, nil
	}
	if in.ID == "" {
		in.ID = newProjectID(b.now())
	}
	id, err := b.api.CreateProject(ctx, in)
	if err != nil {
		return models.Project{}, err
	}
	p, err := b.api.GetProject(ctx, id)
	if err != nil {
		return models.Project{}, err
	}
	return *p, nil
}

// DeleteProject also drops id from the featured list when it is featured.
func (b *LiveBackend) DeleteProject(ctx context.Context, id string, settings models.HomepageSettings) (models.HomepageSettings, error) {
	if err := b.api.DeleteProject(ctx, id); err != nil {
		return settings, err
	}
	if !settings.IsFeatured(id) {
		return settings, nil
	}
	next := settings.Without(id)
	if _, err := b.api.UpdateHomepageSettings(ctx, next.FeaturedProjects); err != nil {
		return settings, fmt.Errorf("%w: %w", ErrFeaturedCleanup, err)
	}
	return next, nil
}

func (b *LiveBackend) SetFeatured(ctx context.Context, settings models.HomepageSettings) error {
	_, err := b.api.UpdateHomepageSettings(ctx, settings.FeaturedProjects)
	return err
}

func (b *LiveBackend) Notice() string { return "" }

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func newProjectID(now time.Time) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36[rand.IntN(len(base36))]
	}
	return fmt.Sprintf("project-%d-%s", now.UnixMilli(), suffix)
}
