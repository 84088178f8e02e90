package types

import (
	"time"

	"github.com/onebluedot/site/internal/models"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error         string                 `json:"error"`
	SetupRequired bool                   `json:"setupRequired,omitempty"`
	SetupStatus   *models.DatabaseStatus `json:"setupStatus,omitempty"`
}

type HealthResponse struct {
	Status    string                `json:"status"`
	Timestamp time.Time             `json:"timestamp"`
	Message   string                `json:"message"`
	Database  models.DatabaseStatus `json:"database"`
}

type ServiceResponse struct {
	Status    string                `json:"status"`
	Service   string                `json:"service"`
	Version   string                `json:"version"`
	Database  string                `json:"database"`
	Storage   string                `json:"storage"`
	Timestamp time.Time             `json:"timestamp"`
	Setup     models.DatabaseStatus `json:"setup"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type SignupResponse struct {
	Success bool             `json:"success"`
	User    models.AdminUser `json:"user"`
}

type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	ExpiresIn   int64            `json:"expires_in"`
	User        models.AdminUser `json:"user"`
}

type ProjectsResponse struct {
	Projects []models.Project `json:"projects"`
}

type ProjectResponse struct {
	Project models.Project `json:"project"`
}

type CreateProjectResponse struct {
	Success   bool   `json:"success"`
	ProjectID string `json:"projectId"`
}

type UpdateProjectResponse struct {
	Success bool           `json:"success"`
	Project models.Project `json:"project"`
}

type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Path    string `json:"path"`
}

type SettingsResponse struct {
	Settings models.HomepageSettings `json:"settings"`
}

type UpdateSettingsResponse struct {
	Success  bool                    `json:"success"`
	Settings models.HomepageSettings `json:"settings"`
}
