package client

import (
	"context"

	"github.com/onebluedot/site/internal/api/types"
	"github.com/onebluedot/site/internal/models"
)

// Signup creates an admin account. It needs no access token.
func (c *Client) Signup(ctx context.Context, email, password, name string) (*models.AdminUser, error) {
	var body types.SignupResponse
	req := types.SignupRequest{Email: email, Password: password, Name: name}
	if err := do(c.http.POST("/admin/signup").
		Context().Set(ctx).
		Header().Add("Authorization", c.publicAuth()).
		Header().Add("Content-Type", "application/json").
		Body().AsJSON(req), &body); err != nil {
		return nil, err
	}
	return &body.User, nil
}

// Login exchanges credentials for a session. Use WithAccessToken to send the
// returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*types.LoginResponse, error) {
	var body types.LoginResponse
	req := types.LoginRequest{Email: email, Password: password}
	if err := do(c.http.POST("/admin/login").
		Context().Set(ctx).
		Header().Add("Authorization", c.publicAuth()).
		Header().Add("Content-Type", "application/json").
		Body().AsJSON(req), &body); err != nil {
		return nil, err
	}
	return &body, nil
}
