package featured

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/onebluedot/site/internal/client"
	"github.com/onebluedot/site/internal/dataset"
	"github.com/onebluedot/site/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	conn        client.ConnectionStatus
	projects    []models.Project
	settings    models.HomepageSettings
	projectsErr error
	settingsErr error
	fetches     atomic.Int32
}

func (f *fakeSource) TestConnection(context.Context) client.ConnectionStatus { return f.conn }

func (f *fakeSource) ListProjects(context.Context) ([]models.Project, error) {
	f.fetches.Add(1)
	return f.projects, f.projectsErr
}

func (f *fakeSource) GetHomepageSettings(context.Context) (models.HomepageSettings, error) {
	f.fetches.Add(1)
	return f.settings, f.settingsErr
}

func ids(ps []models.Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

var connected = client.ConnectionStatus{Connected: true}

func TestResolveOrdersBySettings(t *testing.T) {
	src := &fakeSource{
		conn:     connected,
		projects: []models.Project{{ID: "b"}, {ID: "a"}},
		settings: models.NewHomepageSettings("a", "missing", "b"),
	}
	res := NewResolver(src).Resolve(context.Background())
	assert.Equal(t, []string{"a", "b"}, ids(res.Projects))
	assert.Empty(t, res.Error)
	assert.False(t, res.Fallback)
	assert.Equal(t, int32(2), src.fetches.Load())
}

func TestResolveDisconnected(t *testing.T) {
	src := &fakeSource{}
	res := NewResolver(src).Resolve(context.Background())
	assert.Equal(t, dataset.Fallback(), res.Projects)
	assert.Equal(t, "Server not available", res.Error)
	assert.False(t, res.SetupRequired)
	assert.Zero(t, src.fetches.Load(), "no fetch after a failed probe")
}

func TestResolveSetupRequired(t *testing.T) {
	src := &fakeSource{conn: client.ConnectionStatus{Connected: true, SetupRequired: true}}
	res := NewResolver(src).Resolve(context.Background())
	assert.Equal(t, ids(dataset.Fallback()), ids(res.Projects))
	assert.Equal(t, "Database setup required", res.Error)
	assert.True(t, res.SetupRequired)
}

func TestResolveEmptyProjectionFallsBack(t *testing.T) {
	for name, featured := range map[string][]string{
		"empty list":   {},
		"all dangling": {"x", "y"},
	} {
		t.Run(name, func(t *testing.T) {
			src := &fakeSource{
				conn:     connected,
				projects: []models.Project{{ID: "a"}},
				settings: models.NewHomepageSettings(featured...),
			}
			res := NewResolver(src).Resolve(context.Background())
			assert.Equal(t, dataset.Fallback(), res.Projects)
			assert.Empty(t, res.Error)
			assert.True(t, res.Fallback)
		})
	}
}

func TestResolveFetchFailure(t *testing.T) {
	src := &fakeSource{
		conn:        connected,
		projects:    []models.Project{{ID: "a"}},
		settings:    models.NewHomepageSettings("a"),
		settingsErr: &client.APIError{Message: "Settings table not found. Please run the SQL schema.", Status: 503, SetupRequired: true},
	}
	res := NewResolver(src).Resolve(context.Background())
	assert.Equal(t, ids(dataset.Fallback()), ids(res.Projects))
	assert.Equal(t, "Settings table not found. Please run the SQL schema.", res.Error)
	assert.True(t, res.SetupRequired)

	src.settingsErr = nil
	src.projectsErr = fmt.Errorf("%w: dial tcp", client.ErrConnectivity)
	res = NewResolver(src).Resolve(context.Background())
	assert.True(t, res.Fallback)
	assert.False(t, res.SetupRequired)
	assert.Contains(t, res.Error, "dial tcp")
}

func TestOrder(t *testing.T) {
	projects := []models.Project{{ID: "c"}, {ID: "b"}, {ID: "a"}}
	assert.Equal(t, []string{"a", "c"}, ids(Order(projects, []string{"a", "zzz", "c"})))
	assert.Equal(t, []string{"b", "b"}, ids(Order(projects, []string{"b", "b"})))
	assert.Empty(t, Order(projects, nil))
	assert.Empty(t, Order(nil, []string{"a"}))
}

func TestOrderCopiesGallery(t *testing.T) {
	projects := []models.Project{{ID: "a", GalleryImages: []string{"u1"}}}
	out := Order(projects, []string{"a"})
	require.Len(t, out, 1)
	out[0].GalleryImages[0] = "changed"
	assert.Equal(t, "u1", projects[0].GalleryImages[0])
}

func TestResolveDoesNotMutateSource(t *testing.T) {
	src := &fakeSource{conn: connected, projects: []models.Project{{ID: "a"}}, settings: models.NewHomepageSettings("a")}
	_ = NewResolver(src).Resolve(context.Background())
	assert.Equal(t, []string{"a"}, ids(src.projects))
}
