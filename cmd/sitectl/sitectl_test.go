package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onebluedot/site/internal/admin"
	"github.com/onebluedot/site/internal/dataset"
	"github.com/onebluedot/site/internal/models"
	"github.com/onebluedot/site/internal/navigation"
)

func run(args ...string) ([]byte, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := Execute()
	return out.Bytes(), err
}

func execute(t *testing.T, args ...string) []byte {
	t.Helper()
	out, err := run(args...)
	require.NoError(t, err)
	return out
}

func TestRouteCommand(t *testing.T) {
	var r navigation.Route
	require.NoError(t, json.Unmarshal(execute(t, "route", "/project/zen-garden"), &r))
	assert.Equal(t, navigation.Route{Page: navigation.PageProject, ProjectID: "zen-garden"}, r)
}

func TestDemoFeatureToggle(t *testing.T) {
	var s models.HomepageSettings
	require.NoError(t, json.Unmarshal(execute(t, "--demo", "feature", "toggle", "demo-project-1"), &s))
	assert.Empty(t, s.FeaturedProjects)
}

func TestDemoProjectsList(t *testing.T) {
	var ps []models.Project
	require.NoError(t, json.Unmarshal(execute(t, "--demo", "projects", "list"), &ps))
	require.Len(t, ps, 1)
	assert.Equal(t, "demo-project-1", ps[0].ID)
}

func TestApplyProjectFlagsOnlyChanged(t *testing.T) {
	c := &cobra.Command{}
	c.Flags().String("title", "", "")
	c.Flags().String("location", "", "")
	c.Flags().String("status", "", "")
	c.Flags().StringSlice("gallery", nil, "")
	require.NoError(t, c.Flags().Parse([]string{"--title", "New", "--status", "ongoing", "--gallery", "a,b"}))

	in := models.ProjectInput{Title: "Old", Location: "Pune"}
	applyProjectFlags(c.Flags(), &in)
	assert.Equal(t, "New", in.Title)
	assert.Equal(t, "Pune", in.Location)
	assert.Equal(t, models.StatusOngoing, in.Status)
	assert.Equal(t, []string{"a", "b"}, in.GalleryImages)
}

func TestResolveToken(t *testing.T) {
	cases := []struct {
		name       string
		flag       string
		demo       bool
		configured string
		want       string
	}{
		{"demo wins", "jwt", true, "cfg", dataset.DemoToken},
		{"flag over config", "jwt", false, "cfg", "jwt"},
		{"config", "", false, "cfg", "cfg"},
		{"none", "", false, "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, resolveToken(tc.flag, tc.demo, tc.configured))
		})
	}
}

func TestFlagsResetBetweenRuns(t *testing.T) {
	t.Setenv("SITE_ACCESS_TOKEN", "")
	execute(t, "--demo", "--token", "jwt", "projects", "list")
	assert.False(t, demoMode)
	assert.Empty(t, flagToken)

	execute(t, "route", "/")
	assert.Empty(t, accessToken)
	assert.False(t, isDemo())
}

func TestLiveFallbackIsNotWrittenBack(t *testing.T) {
	var puts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPut:
			puts.Add(1)
			_, _ = w.Write([]byte(`{"success":true,"settings":{"featuredProjects":[]}}`))
		case strings.HasSuffix(r.URL.Path, "/health"):
			_, _ = w.Write([]byte(`{"status":"ok","database":{"projectsExists":true,"settingsExists":true,"isSetup":true}}`))
		case strings.HasSuffix(r.URL.Path, "/projects"):
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Failed to fetch projects"}`))
		default:
			_, _ = w.Write([]byte(`{"settings":{"featuredProjects":["zen-garden"]}}`))
		}
	}))
	defer srv.Close()
	t.Setenv("SITE_API_URL", srv.URL+"/make-server-obd")

	_, err := run("--token", "jwt", "feature", "toggle", "demo-project-1")
	require.ErrorIs(t, err, admin.ErrFallbackData)
	assert.Zero(t, puts.Load())
}
