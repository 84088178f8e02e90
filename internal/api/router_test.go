package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onebluedot/site/internal/api/handlers"
	"github.com/onebluedot/site/internal/models"
	"github.com/onebluedot/site/internal/services"
	"github.com/onebluedot/site/internal/storage"
)

var secret = []byte("router-secret")

type fakeSetup struct{ status models.DatabaseStatus }

func (f *fakeSetup) Check(context.Context) models.DatabaseStatus { return f.status }
func (f *fakeSetup) SeedDefaults(context.Context) (bool, error)  { return false, nil }

type fakeProjects struct{ deleted []string }

func (f *fakeProjects) List(context.Context) ([]models.Project, error) {
	return []models.Project{{ID: "b"}, {ID: "a"}}, nil
}
func (f *fakeProjects) Get(_ context.Context, id string) (*models.Project, error) {
	return &models.Project{ID: id}, nil
}
func (f *fakeProjects) Create(_ context.Context, in models.ProjectInput) (*models.Project, error) {
	p := in.Project()
	return &p, nil
}
func (f *fakeProjects) Update(_ context.Context, id string, _ models.ProjectPatch) (*models.Project, error) {
	return &models.Project{ID: id}, nil
}
func (f *fakeProjects) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSettings struct{}

func (fakeSettings) Get(context.Context) (models.HomepageSettings, error) {
	return models.NewHomepageSettings("a"), nil
}
func (fakeSettings) Update(_ context.Context, ids []string) (models.HomepageSettings, error) {
	return models.NewHomepageSettings(ids...), nil
}

func newTestRouter(t *testing.T, st models.DatabaseStatus, files http.Handler) (http.Handler, *fakeProjects) {
	t.Helper()
	setup := &fakeSetup{status: st}
	projects := &fakeProjects{}
	return NewRouter(Dependencies{
		Prefix:          "/make-server-obd",
		HMACSecret:      secret,
		Setup:           setup,
		Files:           files,
		HealthHandler:   handlers.NewHealthHandler(setup, "local"),
		AuthHandler:     handlers.NewAuthHandler(services.NewAuthService(nil, secret)),
		ProjectsHandler: handlers.NewProjectsHandler(projects),
		SettingsHandler: handlers.NewSettingsHandler(fakeSettings{}),
		UploadHandler:   handlers.NewUploadHandler(nil, 1024),
	}), projects
}

func do(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func adminToken(t *testing.T) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(secret)
	require.NoError(t, err)
	return s
}

var ready = models.DatabaseStatus{ProjectsExists: true, SettingsExists: true, IsSetup: true}

func TestRouterPublicReads(t *testing.T) {
	h, _ := newTestRouter(t, ready, nil)

	rr := do(h, http.MethodGet, "/make-server-obd/projects", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"projects":[`)

	rr = do(h, http.MethodGet, "/make-server-obd/settings/homepage", "", "")
	assert.JSONEq(t, `{"settings":{"featuredProjects":["a"]}}`, rr.Body.String())

	rr = do(h, http.MethodGet, "/make-server-obd/health", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(h, http.MethodGet, "/projects", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code, "routes live under the prefix")
}

func TestRouterMutationsNeedToken(t *testing.T) {
	h, projects := newTestRouter(t, ready, nil)

	rr := do(h, http.MethodDelete, "/make-server-obd/projects/a", "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Authorization token required"}`, rr.Body.String())

	rr = do(h, http.MethodDelete, "/make-server-obd/projects/a", adminToken(t), "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"a"}, projects.deleted)

	rr = do(h, http.MethodPut, "/make-server-obd/settings/homepage", adminToken(t), `{"featuredProjects":["b","a"]}`)
	assert.JSONEq(t, `{"success":true,"settings":{"featuredProjects":["b","a"]}}`, rr.Body.String())

	rr = do(h, http.MethodPost, "/make-server-obd/upload-image", "undefined", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouterSetupGateRunsBeforeAuth(t *testing.T) {
	h, _ := newTestRouter(t, models.DatabaseStatus{SettingsExists: true}, nil)

	rr := do(h, http.MethodPost, "/make-server-obd/projects", "", `{}`)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), `"setupRequired":true`)
	assert.Contains(t, rr.Body.String(), "Projects table not found")

	rr = do(h, http.MethodGet, "/make-server-obd/setup-status", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouterServesLocalFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "uploads"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "uploads", "1-a.png"), []byte("png"), 0o644))
	h, _ := newTestRouter(t, ready, storage.FilesHandler(storage.NewLocalStore(dir, "http://localhost:8080"), time.Hour))

	rr := do(h, http.MethodGet, "/files/uploads/1-a.png", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "png", rr.Body.String())
}

func TestRouterServesAPIDocs(t *testing.T) {
	h, _ := newTestRouter(t, ready, nil)

	rr := do(h, http.MethodGet, "/make-server-obd/docs/doc.json", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, rr.Body.String(), `"basePath":"/make-server-obd"`)

	rr = do(h, http.MethodGet, "/make-server-obd/docs/index.html", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}
