package client

import (
	"context"

	"github.com/onebluedot/site/internal/api/types"
	"github.com/onebluedot/site/internal/models"
)

// GetHomepageSettings returns an empty featured list when none is stored.
func (c *Client) GetHomepageSettings(ctx context.Context) (models.HomepageSettings, error) {
	var body types.SettingsResponse
	if err := c.get(ctx, "/settings/homepage", &body); err != nil {
		return models.HomepageSettings{}, err
	}
	return models.NewHomepageSettings(body.Settings.FeaturedProjects...), nil
}

func (c *Client) UpdateHomepageSettings(ctx context.Context, featured []string) (models.HomepageSettings, error) {
	if featured == nil {
		featured = []string{}
	}
	var body types.UpdateSettingsResponse
	req := types.SettingsUpdateRequest{FeaturedProjects: featured}
	if err := c.sendJSON(ctx, "PUT", "/settings/homepage", req, &body); err != nil {
		return models.HomepageSettings{}, err
	}
	return models.NewHomepageSettings(body.Settings.FeaturedProjects...), nil
}
