package types

import (
	"encoding/json"
	"errors"
	"net/http"

	appErr "github.com/onebluedot/site/pkg/errors"
)

// FromAppError builds the error body for err. Errors that are not AppErrors
// never leak their text.
func FromAppError(err error) ErrorResponse {
	var ae *appErr.AppError
	if !errors.As(err, &ae) {
		return ErrorResponse{Error: "Internal server error"}
	}
	return ErrorResponse{Error: ae.Message}
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError answers with the status and body derived from err.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, appErr.HTTPStatus(err), FromAppError(err))
}

// WriteErrorStr answers with a plain error message.
func WriteErrorStr(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{Error: msg})
}
