package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/onebluedot/site/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prefix = "/make-server-obd"

type recorded struct {
	method string
	path   string
	auth   string
	body   string
	ctype  string
}

func newServer(t *testing.T, handle func(w http.ResponseWriter, r *http.Request)) (*Client, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{
			method: r.Method,
			path:   strings.TrimPrefix(r.URL.EscapedPath(), prefix),
			auth:   r.Header.Get("Authorization"),
			body:   string(b),
			ctype:  r.Header.Get("Content-Type"),
		})
		r.Body = io.NopCloser(strings.NewReader(string(b)))
		handle(w, r)
	}))
	t.Cleanup(srv.Close)
	c := New(Options{BaseURL: srv.URL + prefix + "/", PublicKey: "anon", AccessToken: "user-token"})
	return c, &calls
}

func reply(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestTestConnection(t *testing.T) {
	c, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		reply(w, 200, `{"status":"ok","database":{"projectsExists":true,"settingsExists":false,"isSetup":false,"needsMigration":false}}`)
	})
	st := c.TestConnection(context.Background())
	assert.True(t, st.Connected)
	assert.True(t, st.SetupRequired)
	require.NotNil(t, st.SetupStatus)
	assert.True(t, st.SetupStatus.ProjectsExists)
	assert.Equal(t, "/health", (*calls)[0].path)
	assert.Equal(t, "Bearer anon", (*calls)[0].auth)
}

func TestTestConnectionNeverFails(t *testing.T) {
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) { reply(w, 500, `oops`) })
	assert.Equal(t, ConnectionStatus{}, c.TestConnection(context.Background()))

	down := New(Options{BaseURL: "http://127.0.0.1:1"})
	assert.Equal(t, ConnectionStatus{}, down.TestConnection(context.Background()))
	assert.Equal(t, models.DatabaseStatus{}, down.SetupStatus(context.Background()))
}

func TestNetworkFailureIsConnectivity(t *testing.T) {
	down := New(Options{BaseURL: "http://127.0.0.1:1"})
	_, err := down.ListProjects(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConnectivity))
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		reply(w, 503, `{"error":"Projects table not found. Please run the SQL schema.","setupRequired":true}`)
	})
	_, err := c.ListProjects(context.Background())
	var ae *APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 503, ae.Status)
	assert.Equal(t, "Projects table not found. Please run the SQL schema.", ae.Error())
	assert.True(t, IsSetupRequired(err))
}

func TestAPIErrorFallbackMessages(t *testing.T) {
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == prefix+"/projects" {
			reply(w, 502, `<html>bad gateway</html>`)
			return
		}
		reply(w, 418, `{}`)
	})
	_, err := c.ListProjects(context.Background())
	assert.EqualError(t, err, "Bad Gateway")
	assert.False(t, IsSetupRequired(err))

	_, err = c.GetProject(context.Background(), "x")
	assert.EqualError(t, err, "HTTP 418")
}

func TestListProjectsEmpty(t *testing.T) {
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) { reply(w, 200, `{}`) })
	got, err := c.ListProjects(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestProjectCRUD(t *testing.T) {
	c, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			reply(w, 200, `{"success":true,"projectId":"project-1"}`)
		case http.MethodPut:
			reply(w, 200, `{"success":true,"project":{"id":"a-b","title":"New"}}`)
		case http.MethodDelete:
			reply(w, 200, `{"success":true}`)
		default:
			reply(w, 200, `{"project":{"id":"a-b","title":"Old","galleryImages":null}}`)
		}
	})
	ctx := context.Background()

	id, err := c.CreateProject(ctx, models.ProjectInput{Title: "T", Location: "L", Tagline: "G", Description: "D"})
	require.NoError(t, err)
	assert.Equal(t, "project-1", id)

	p, err := c.GetProject(ctx, "a-b")
	require.NoError(t, err)
	assert.Equal(t, "Old", p.Title)
	assert.NotNil(t, p.GalleryImages)

	title := "New"
	p, err = c.UpdateProject(ctx, "a-b", models.ProjectPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New", p.Title)

	require.NoError(t, c.DeleteProject(ctx, "a-b"))

	require.Len(t, *calls, 4)
	create, get, update, del := (*calls)[0], (*calls)[1], (*calls)[2], (*calls)[3]
	assert.Equal(t, "Bearer user-token", create.auth)
	assert.Equal(t, "application/json", create.ctype)
	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(create.body), &sent))
	assert.Equal(t, "T", sent["title"])
	assert.NotContains(t, sent, "id")

	assert.Equal(t, "Bearer anon", get.auth)
	assert.Equal(t, "/projects/a-b", get.path)
	assert.JSONEq(t, `{"title":"New"}`, update.body)
	assert.Equal(t, http.MethodDelete, del.method)
	assert.Equal(t, "Bearer user-token", del.auth)
}

func TestHomepageSettings(t *testing.T) {
	c, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			var in struct{ FeaturedProjects []string }
			_ = json.NewDecoder(r.Body).Decode(&in)
			b, _ := json.Marshal(map[string]any{"success": true, "settings": map[string]any{"featuredProjects": in.FeaturedProjects}})
			reply(w, 200, string(b))
			return
		}
		reply(w, 200, `{"settings":{}}`)
	})
	ctx := context.Background()

	st, err := c.GetHomepageSettings(ctx)
	require.NoError(t, err)
	assert.Empty(t, st.FeaturedProjects)
	assert.NotNil(t, st.FeaturedProjects)

	st, err = c.UpdateHomepageSettings(ctx, []string{"b", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, []string(st.FeaturedProjects))
	assert.JSONEq(t, `{"featuredProjects":["b","a"]}`, (*calls)[1].body)
}

func TestUploadImage(t *testing.T) {
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		file, hdr, err := r.FormFile("file")
		if err != nil {
			reply(w, 400, `{"error":"No file provided"}`)
			return
		}
		defer file.Close()
		b, _ := io.ReadAll(file)
		if hdr.Filename != "cover.png" || hdr.Header.Get("Content-Type") != "image/png" || string(b) != "png" {
			reply(w, 400, `{"error":"bad part"}`)
			return
		}
		reply(w, 200, `{"success":true,"url":"http://h/files/uploads/1-x.png","path":"uploads/1-x.png"}`)
	})
	url, err := c.UploadImage(context.Background(), "/tmp/cover.png", strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, "http://h/files/uploads/1-x.png", url)
}

func TestLoginAndToken(t *testing.T) {
	c, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == prefix+"/admin/login" {
			reply(w, 200, `{"access_token":"jwt","token_type":"bearer","expires_in":3600,"user":{"email":"a@b.co"}}`)
			return
		}
		reply(w, 200, `{"success":true}`)
	})
	sess, err := c.Login(context.Background(), "a@b.co", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt", sess.AccessToken)

	authed := c.WithAccessToken(sess.AccessToken)
	require.NoError(t, authed.DeleteProject(context.Background(), "p"))
	assert.Equal(t, "Bearer jwt", (*calls)[1].auth)
	assert.Equal(t, "user-token", c.AccessToken(), "original client is unchanged")
}
