package client

import (
	"context"

	"github.com/onebluedot/site/internal/models"
	"github.com/onebluedot/site/pkg/logger"
	"go.uber.org/zap"
)

// ConnectionStatus is the result of one health probe.
type ConnectionStatus struct {
	Connected     bool                   `json:"connected"`
	SetupRequired bool                   `json:"setupRequired,omitempty"`
	SetupStatus   *models.DatabaseStatus `json:"setupStatus,omitempty"`
}

// TestConnection probes /health once. It never fails: any error reports a
// disconnected backend.
func (c *Client) TestConnection(ctx context.Context) ConnectionStatus {
	var body struct {
		Database *models.DatabaseStatus `json:"database"`
	}
	if err := c.get(ctx, "/health", &body); err != nil {
		logger.L().Debug("health probe failed", zap.Error(err))
		return ConnectionStatus{Connected: false}
	}
	return ConnectionStatus{
		Connected:     true,
		SetupRequired: body.Database == nil || !body.Database.IsSetup,
		SetupStatus:   body.Database,
	}
}

// SetupStatus fetches /setup-status. Failures report nothing as set up.
func (c *Client) SetupStatus(ctx context.Context) models.DatabaseStatus {
	var st models.DatabaseStatus
	if err := c.get(ctx, "/setup-status", &st); err != nil {
		logger.L().Debug("setup status failed", zap.Error(err))
		return models.DatabaseStatus{}
	}
	return st
}
