package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/onebluedot/site/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func pgErr(code string) error {
	return fmt.Errorf("probe: %w", &pgconn.PgError{Code: code})
}

func TestStatusFrom(t *testing.T) {
	cases := []struct {
		name    string
		proj    error
		set     error
		want    models.DatabaseStatus
		message string
	}{
		{
			name:    "ready",
			want:    models.DatabaseStatus{ProjectsExists: true, SettingsExists: true, IsSetup: true},
			message: "Database setup required.",
		},
		{
			name:    "projects missing",
			proj:    pgErr(pgUndefinedTable),
			want:    models.DatabaseStatus{SettingsExists: true},
			message: "Projects table not found. Please run the SQL schema.",
		},
		{
			name:    "settings missing",
			set:     pgErr(pgUndefinedTable),
			want:    models.DatabaseStatus{ProjectsExists: true},
			message: "Settings table not found. Please run the SQL schema.",
		},
		{
			name:    "old projects schema",
			proj:    pgErr(pgUndefinedColumn),
			want:    models.DatabaseStatus{ProjectsExists: true, SettingsExists: true, NeedsMigration: true},
			message: "Database schema needs to be updated. Please run the latest SQL schema.",
		},
		{
			name:    "unreachable",
			proj:    errors.New("dial tcp: connection refused"),
			want:    models.DatabaseStatus{},
			message: "Projects table not found. Please run the SQL schema.",
		},
		{
			name: "other sql error",
			set:  pgErr("42501"),
			want: models.DatabaseStatus{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := statusFrom(tc.proj, tc.set)
			assert.Equal(t, tc.want, got)
			if tc.message != "" {
				assert.Equal(t, tc.message, SetupMessage(got))
			}
		})
	}
}

func TestSeedDefaultsSkipsWhenPopulated(t *testing.T) {
	projects := new(mockProjectRepo)
	settings := new(mockSettingsRepo)
	projects.On("Count", context.Background()).Return(int64(4), nil)

	s := &setupService{projectRepo: projects, settingsRepo: settings}
	seeded, err := s.seedIfEmpty(context.Background())
	assert.NoError(t, err)
	assert.False(t, seeded)
	projects.AssertNotCalled(t, "CreateMany")
	settings.AssertNotCalled(t, "Upsert")
}

func TestSeedDefaultsWritesFallbackAndFeatured(t *testing.T) {
	ctx := context.Background()
	projects := new(mockProjectRepo)
	settings := new(mockSettingsRepo)
	projects.On("Count", ctx).Return(int64(0), nil)
	projects.On("CreateMany", ctx, mock.MatchedBy(func(ps []models.Project) bool {
		return len(ps) == 3 && ps[0].ID == "komorebi-house"
	})).Return(nil)
	settings.On("Upsert", ctx, []string{"komorebi-house", "urban-sanctuary", "zen-garden"}).
		Return(models.NewHomepageSettings("komorebi-house", "urban-sanctuary", "zen-garden"), nil)

	s := &setupService{projectRepo: projects, settingsRepo: settings}
	seeded, err := s.seedIfEmpty(ctx)
	assert.NoError(t, err)
	assert.True(t, seeded)
	projects.AssertExpectations(t)
	settings.AssertExpectations(t)
}
