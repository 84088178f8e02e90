package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/onebluedot/site/internal/api/middleware"
	"github.com/onebluedot/site/internal/api/types"
	appErr "github.com/onebluedot/site/pkg/errors"
	"github.com/onebluedot/site/pkg/logger"
	"go.uber.org/zap"
)

const maxJSONBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	types.WriteJSON(w, status, v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if appErr.HTTPStatus(err) >= http.StatusInternalServerError {
		logger.L().Error("request failed", zap.String("id", middleware.GetRequestID(r.Context())), zap.Error(err))
	}
	types.WriteError(w, err)
}

func writeErrorStr(w http.ResponseWriter, status int, msg string) {
	types.WriteErrorStr(w, status, msg)
}

// decodeJSON reads a JSON body into dst, answering 400 itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody)).Decode(dst)
	if err == nil {
		return true
	}
	if errors.Is(err, io.EOF) {
		writeErrorStr(w, http.StatusBadRequest, "Request body required")
	} else {
		writeErrorStr(w, http.StatusBadRequest, "Invalid JSON body")
	}
	return false
}
