// Package navigation maps site paths to pages and back, and tells
// subscribers when the current page changes.
package navigation

import (
	"strings"
)

// Page is one of the site's top-level views.
type Page string

const (
	PageHome    Page = "home"
	PageWork    Page = "work"
	PageAbout   Page = "about"
	PageContact Page = "contact"
	PageProject Page = "project"
	PageAdmin   Page = "admin"
)

const projectPrefix = "/project/"

// Route is the page being shown. ProjectID is only set for PageProject.
type Route struct {
	Page      Page   `json:"page"`
	ProjectID string `json:"projectId,omitempty"`
}

// Resolver converts between paths and routes under a base path.
type Resolver struct {
	base string
}

// NewResolver returns a Resolver for a site served under basePath. An empty
// base or "/" means the site root.
func NewResolver(basePath string) Resolver {
	return Resolver{base: strings.TrimRight(basePath, "/")}
}

// Parse maps path to a route. Known pages must match exactly. Anything after
// /project/ is taken as the project id without decoding. Everything else is
// home.
func (r Resolver) Parse(path string) Route {
	if r.base != "" {
		rest, ok := strings.CutPrefix(path, r.base)
		if !ok || (rest != "" && !strings.HasPrefix(rest, "/")) {
			return Route{Page: PageHome}
		}
		path = rest
	}

	switch path {
	case "/contact":
		return Route{Page: PageContact}
	case "/work":
		return Route{Page: PageWork}
	case "/about":
		return Route{Page: PageAbout}
	case "/admin":
		return Route{Page: PageAdmin}
	}
	if id, ok := strings.CutPrefix(path, projectPrefix); ok {
		return Route{Page: PageProject, ProjectID: id}
	}
	return Route{Page: PageHome}
}

// Path builds the path for page. A project page without an id falls back to
// /project, which parses as home.
func (r Resolver) Path(page Page, projectID string) string {
	switch {
	case page == PageHome:
		return r.base + "/"
	case page == PageProject && projectID != "":
		return r.base + projectPrefix + projectID
	default:
		return r.base + "/" + string(page)
	}
}
