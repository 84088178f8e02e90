package client

import (
	"context"

	"github.com/onebluedot/site/internal/api/types"
	"github.com/onebluedot/site/internal/models"
)

// ids are sent verbatim; a malformed id simply fails with not found
func projectPath(id string) string { return "/projects/" + id }

// ListProjects returns every project, never nil.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var body types.ProjectsResponse
	if err := c.get(ctx, "/projects", &body); err != nil {
		return nil, err
	}
	if body.Projects == nil {
		return []models.Project{}, nil
	}
	for i := range body.Projects {
		body.Projects[i].Normalize()
	}
	return body.Projects, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var body types.ProjectResponse
	if err := c.get(ctx, projectPath(id), &body); err != nil {
		return nil, err
	}
	body.Project.Normalize()
	return &body.Project, nil
}

// CreateProject stores in and returns the id the server assigned.
func (c *Client) CreateProject(ctx context.Context, in models.ProjectInput) (string, error) {
	var body types.CreateProjectResponse
	if err := c.sendJSON(ctx, "POST", "/projects", in, &body); err != nil {
		return "", err
	}
	return body.ProjectID, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	var body types.UpdateProjectResponse
	if err := c.sendJSON(ctx, "PUT", projectPath(id), patch, &body); err != nil {
		return nil, err
	}
	body.Project.Normalize()
	return &body.Project, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return do(c.http.DELETE(projectPath(id)).
		Context().Set(ctx).
		Header().Add("Authorization", c.userAuth()), nil)
}
