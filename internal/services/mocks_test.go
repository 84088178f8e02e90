package services

import (
	"context"
	"io"
	"time"

	"github.com/onebluedot/site/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockProjectRepo struct{ mock.Mock }

func (m *mockProjectRepo) Create(ctx context.Context, p *models.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id any, dest *models.Project) error {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*models.Project); ok && p != nil {
		*dest = *p
	}
	return args.Error(1)
}

func (m *mockProjectRepo) Delete(ctx context.Context, id any) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProjectRepo) List(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.Project)
	return out, args.Error(1)
}

func (m *mockProjectRepo) Patch(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	args := m.Called(ctx, id, patch)
	p, _ := args.Get(0).(*models.Project)
	return p, args.Error(1)
}

func (m *mockProjectRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProjectRepo) CreateMany(ctx context.Context, projects []models.Project) error {
	return m.Called(ctx, projects).Error(0)
}

func (m *mockProjectRepo) ReferencesImage(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type mockSettingsRepo struct{ mock.Mock }

func (m *mockSettingsRepo) Get(ctx context.Context) (models.HomepageSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.HomepageSettings), args.Error(1)
}

func (m *mockSettingsRepo) Upsert(ctx context.Context, featured []string) (models.HomepageSettings, error) {
	args := m.Called(ctx, featured)
	return args.Get(0).(models.HomepageSettings), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *models.AdminUser) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id any, dest *models.AdminUser) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id any) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string, dest *models.AdminUser) error {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*models.AdminUser); ok && u != nil {
		*dest = *u
	}
	return args.Error(1)
}

type mockPurger struct{ mock.Mock }

func (m *mockPurger) EnqueuePurge(ctx context.Context, projectID string, keys []string) error {
	return m.Called(ctx, projectID, keys).Error(0)
}

type mockStore struct {
	mock.Mock
	written []byte
}

func (m *mockStore) Init(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *mockStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	m.written, _ = io.ReadAll(body)
	return m.Called(ctx, key, size, contentType).Error(0)
}

func (m *mockStore) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
