// Package admin keeps the admin panel's view of projects and homepage
// settings in step with the backend, or with an in-memory demo dataset.
package admin

import (
	"context"
	"errors"

	"github.com/onebluedot/site/internal/models"
)

// DemoNotice is shown after every change made in demo mode.
const DemoNotice = "Demo mode: Changes are not saved permanently."

// ErrFeaturedCleanup means a project was deleted but removing it from the
// featured list failed.
var ErrFeaturedCleanup = errors.New("project deleted but featured list not updated")

// ErrFallbackData refuses a live change while the state holds substitute
// demo data, which would otherwise be written to the backend.
var ErrFallbackData = errors.New("showing demo data because the server could not be loaded; reload before making changes")

// Data is a loaded dataset plus the message explaining where it came from.
// Fallback marks substitute data returned in place of the backend's.
type Data struct {
	Projects []models.Project
	Settings models.HomepageSettings
	Error    string
	Fallback bool
}

// Backend persists admin changes. Implementations are picked once, when the
// Synchronizer is built.
type Backend interface {
	// Load never fails; problems are reported in Data.Error alongside
	// substitute data.
	Load(ctx context.Context) Data
	// SaveProject updates existing when non-nil, otherwise creates.
	SaveProject(ctx context.Context, existing *models.Project, in models.ProjectInput) (models.Project, error)
	// DeleteProject returns the featured settings as they stand afterwards.
	DeleteProject(ctx context.Context, id string, settings models.HomepageSettings) (models.HomepageSettings, error)
	SetFeatured(ctx context.Context, settings models.HomepageSettings) error
	// Notice is the message set after each successful change, if any.
	Notice() string
}
