package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/onebluedot/site/internal/api/types"
	"github.com/onebluedot/site/pkg/logger"
	"go.uber.org/zap"
)

// Recovery logs panics and answers 500 with the generic error body.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.L().Error("panic recovered",
					zap.String("id", GetRequestID(r.Context())),
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
				)
				types.WriteErrorStr(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
