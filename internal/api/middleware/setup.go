package middleware

import (
	"context"
	"net/http"

	"github.com/onebluedot/site/internal/api/types"
	"github.com/onebluedot/site/internal/models"
)

// SetupChecker reports whether the database schema is ready.
type SetupChecker interface {
	Check(ctx context.Context) models.DatabaseStatus
}

// SetupGate answers 503 with the setup status until the schema is ready.
// message turns a status into the error text.
func SetupGate(checker SetupChecker, message func(models.DatabaseStatus) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st := checker.Check(r.Context())
			if !st.IsSetup {
				types.WriteJSON(w, http.StatusServiceUnavailable, types.ErrorResponse{
					Error:         message(st),
					SetupRequired: true,
					SetupStatus:   &st,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
