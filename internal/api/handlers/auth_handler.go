package handlers

import (
	"net/http"

	"github.com/onebluedot/site/internal/api/types"
	"github.com/onebluedot/site/internal/services"
	"github.com/onebluedot/site/internal/validators"
	"github.com/onebluedot/site/pkg/logger"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth services.AuthService
}

func NewAuthHandler(auth services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req types.SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	logger.L().Info("admin signup attempt", zap.String("email", req.Email))

	u, err := h.auth.Register(r.Context(), services.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.SignupResponse{Success: true, User: *u})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	sess, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.LoginResponse{
		AccessToken: sess.AccessToken,
		TokenType:   sess.TokenType,
		ExpiresIn:   sess.ExpiresIn,
		User:        sess.User,
	})
}
