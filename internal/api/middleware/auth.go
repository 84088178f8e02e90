package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/onebluedot/site/internal/api/types"
	"github.com/onebluedot/site/pkg/logger"
	"go.uber.org/zap"
)

type userKeyType string

const UserIDKey userKeyType = "user_id"

// Auth validates a Bearer JWT using the provided HMAC secret and adds the user
// id to the context.
func Auth(hmacSecret []byte) func(http.Handler) http.Handler {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r.Header.Get("Authorization"))
			// browsers send the literal "undefined" when no session exists
			if tokenStr == "" || tokenStr == "undefined" {
				types.WriteErrorStr(w, http.StatusUnauthorized, "Authorization token required")
				return
			}
			var claims jwt.RegisteredClaims
			token, err := parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
				return hmacSecret, nil
			})
			if err != nil || !token.Valid || claims.Subject == "" {
				logger.L().Debug("rejected token", zap.String("id", GetRequestID(r.Context())), zap.Error(err))
				types.WriteErrorStr(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func GetUserID(ctx context.Context) string {
	if s, ok := ctx.Value(UserIDKey).(string); ok {
		return s
	}
	return ""
}
