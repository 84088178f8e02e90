// Package featured resolves the ordered list of projects shown on the
// homepage. It always produces something to render.
package featured

import (
	"context"

	"github.com/onebluedot/site/internal/client"
	"github.com/onebluedot/site/internal/dataset"
	"github.com/onebluedot/site/internal/models"
	"github.com/onebluedot/site/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	MsgServerUnavailable = "Server not available"
	MsgSetupRequired     = "Database setup required"
)

// Source is the part of the API client the resolver reads from.
type Source interface {
	TestConnection(ctx context.Context) client.ConnectionStatus
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetHomepageSettings(ctx context.Context) (models.HomepageSettings, error)
}

// Result is what the homepage renders. Error is diagnostic only.
type Result struct {
	Projects      []models.Project `json:"projects"`
	Error         string           `json:"error,omitempty"`
	SetupRequired bool             `json:"setupRequired"`
	// Fallback is set when Projects is the static list.
	Fallback bool `json:"fallback"`
}

type Resolver struct {
	src Source
}

func NewResolver(src Source) *Resolver {
	return &Resolver{src: src}
}

// Resolve probes the backend, then fetches projects and settings together and
// projects the featured ids onto the projects in settings order. Any failure
// or an empty projection yields the static list.
func (r *Resolver) Resolve(ctx context.Context) Result {
	conn := r.src.TestConnection(ctx)
	if !conn.Connected {
		logger.L().Info("server not connected, using fallback projects")
		return fallback(MsgServerUnavailable, false)
	}
	if conn.SetupRequired {
		logger.L().Info("database setup required, using fallback projects")
		return fallback(MsgSetupRequired, true)
	}

	var (
		projects []models.Project
		settings models.HomepageSettings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = r.src.ListProjects(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = r.src.GetHomepageSettings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.L().Error("failed to load featured projects", zap.Error(err))
		return fallback(err.Error(), client.IsSetupRequired(err))
	}

	ordered := Order(projects, settings.FeaturedProjects)
	if len(ordered) == 0 {
		logger.L().Info("no featured projects resolved, using fallback projects")
		return fallback("", false)
	}
	return Result{Projects: ordered}
}

// Order returns the projects named by ids, in ids order. Ids without a
// matching project are dropped; a repeated id yields the project once per
// occurrence.
func Order(projects []models.Project, ids []string) []models.Project {
	byID := make(map[string]models.Project, len(projects))
	for _, p := range projects {
		if _, seen := byID[p.ID]; !seen {
			byID[p.ID] = p
		}
	}
	out := make([]models.Project, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p.Clone())
		}
	}
	return out
}

func fallback(msg string, setupRequired bool) Result {
	return Result{
		Projects:      dataset.Fallback(),
		Error:         msg,
		SetupRequired: setupRequired,
		Fallback:      true,
	}
}
