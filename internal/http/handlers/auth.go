package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/luminainteriors/lumina-be/internal/auth"
	"github.com/luminainteriors/lumina-be/internal/http/respond"
	"github.com/luminainteriors/lumina-be/internal/middleware"
	"github.com/luminainteriors/lumina-be/internal/models/dto"
	"github.com/luminainteriors/lumina-be/internal/storage"
)

// AuthHandler owns login and self-service profile endpoints.
type AuthHandler struct {
	store  storage.UserStore
	tokens *auth.TokenManager
	logger *slog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens, logger: logger}
}

// Login verifies credentials and issues a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.store.FindUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.Error("login: fetch user failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !user.Active || !auth.CheckPassword(req.Password, user.PasswordHash) {
		respond.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		h.logger.Error("login: token generation failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	if err := h.store.TouchLastLogin(r.Context(), user.ID); err != nil {
		h.logger.Warn("login: last-login update failed", "user_id", user.ID, "error", err)
	}

	respond.JSON(w, http.StatusOK, "login successful", dto.LoginResponse{Token: token, User: user})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	user, err := h.store.FindUserByID(r.Context(), claims.UserID)
	if err != nil {
		storeError(w, h.logger, err, "user")
		return
	}
	respond.JSON(w, http.StatusOK, "profile", user)
}

// UpdateMe changes the authenticated user's name and email.
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	user, err := h.store.FindUserByID(r.Context(), claims.UserID)
	if err != nil {
		storeError(w, h.logger, err, "user")
		return
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		user.Email = email
	}

	updated, err := h.store.UpdateUser(r.Context(), user)
	if err != nil {
		storeError(w, h.logger, err, "user")
		return
	}
	respond.JSON(w, http.StatusOK, "profile updated", updated)
}

// ChangePassword verifies the current password and stores a new hash.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	var req dto.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if len(req.NewPassword) < 8 {
		respond.Error(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	user, err := h.store.FindUserByID(r.Context(), claims.UserID)
	if err != nil {
		storeError(w, h.logger, err, "user")
		return
	}
	if !auth.CheckPassword(req.CurrentPassword, user.PasswordHash) {
		respond.Error(w, http.StatusUnauthorized, "current password is incorrect")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		h.logger.Error("change password: hash failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to hash password")
		return
	}
	user.PasswordHash = hash
	if _, err := h.store.UpdateUser(r.Context(), user); err != nil {
		storeError(w, h.logger, err, "user")
		return
	}
	respond.JSON(w, http.StatusOK, "password changed", nil)
}
