package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrConnectivity marks failures to reach the backend at all.
var ErrConnectivity = errors.New("server not reachable")

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Message       string
	Status        int
	SetupRequired bool
}

func (e *APIError) Error() string { return e.Message }

// IsSetupRequired reports whether err says the backend database is not set up.
func IsSetupRequired(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.SetupRequired
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}

func connectivity(err error) error {
	return fmt.Errorf("%w: %w", ErrConnectivity, err)
}
