package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/onebluedot/site/internal/dataset"
	"github.com/onebluedot/site/internal/models"
)

// DemoBackend never touches the network. Changes live only in the
// Synchronizer's state.
type DemoBackend struct {
	now func() time.Time
}

func NewDemoBackend() *DemoBackend {
	return &DemoBackend{now: time.Now}
}

func demoData(msg string) Data {
	return Data{Projects: dataset.DemoProjects(), Settings: dataset.DemoSettings(), Error: msg}
}

func (b *DemoBackend) Load(context.Context) Data { return demoData("") }

func (b *DemoBackend) SaveProject(_ context.Context, existing *models.Project, in models.ProjectInput) (models.Project, error) {
	if existing != nil {
		p := existing.Clone()
		models.PatchFrom(in).Apply(&p)
		p.ID = existing.ID
		return p, nil
	}
	p := in.Project()
	if p.ID == "" {
		p.ID = fmt.Sprintf("demo-%d", b.now().UnixMilli())
	}
	return p, nil
}

// DeleteProject leaves the featured list alone, so it may name a deleted
// project until the next load.
func (b *DemoBackend) DeleteProject(_ context.Context, _ string, settings models.HomepageSettings) (models.HomepageSettings, error) {
	return settings, nil
}

func (b *DemoBackend) SetFeatured(context.Context, models.HomepageSettings) error { return nil }

func (b *DemoBackend) Notice() string { return DemoNotice }
