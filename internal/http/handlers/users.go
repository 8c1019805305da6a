package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/luminainteriors/lumina-be/internal/auth"
	"github.com/luminainteriors/lumina-be/internal/http/respond"
	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/models/dto"
	"github.com/luminainteriors/lumina-be/internal/storage"
)

// UsersHandler owns the admin user-management endpoints.
type UsersHandler struct {
	store  storage.UserStore
	logger *slog.Logger
}

// NewUsersHandler constructs the handler.
func NewUsersHandler(store storage.UserStore, logger *slog.Logger) *UsersHandler {
	return &UsersHandler{store: store, logger: logger}
}

// List returns all accounts.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		storeError(w, h.logger, err, "user")
		return
	}
	respond.JSON(w, http.StatusOK, "users", users)
}

// Get returns one account by id.
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}
	user, err := h.store.FindUserByID(r.Context(), id)
	if err != nil {
		storeError(w, h.logger, err, "user")
		return
	}
	respond.JSON(w, http.StatusOK, "user", user)
}

// Create adds a new account.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		respond.Error(w, http.StatusBadRequest, "name and email are required")
		return
	}
	if len(req.Password) < 8 {
		respond.Error(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		respond.Error(w, http.StatusBadRequest, "invalid role")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("create user: hash failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	created, err := h.store.CreateUser(r.Context(), models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Permissions:  req.Permissions,
		Active:       true,
	})
	if err != nil {
		storeError(w, h.logger, err, "user")
		return
	}
	respond.JSON(w, http.StatusCreated, "user created", created)
}

// Update mutates role, permissions, active state, or identity fields.
// Demoting or deactivating the last superadmin is refused.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	user, err := h.store.FindUserByID(r.Context(), id)
	if err != nil {
		storeError(w, h.logger, err, "user")
		return
	}

	losesSuperadmin := user.Role == models.RoleSuperadmin &&
		((req.Role != nil && *req.Role != models.RoleSuperadmin) ||
			(req.Active != nil && !*req.Active))
	if losesSuperadmin {
		count, err := h.store.CountSuperadmins(r.Context())
		if err != nil {
			storeError(w, h.logger, err, "user")
			return
		}
		if count <= 1 {
			respond.Error(w, http.StatusBadRequest, "at least one superadmin must remain")
			return
		}
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.Role != nil {
		if !models.ValidRole(*req.Role) {
			respond.Error(w, http.StatusBadRequest, "invalid role")
			return
		}
		user.Role = *req.Role
	}
	if req.Permissions != nil {
		user.Permissions = *req.Permissions
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	updated, err := h.store.UpdateUser(r.Context(), user)
	if err != nil {
		storeError(w, h.logger, err, "user")
		return
	}
	respond.JSON(w, http.StatusOK, "user updated", updated)
}

// Delete removes an account; removing the last superadmin is refused.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if err := h.store.DeleteUser(r.Context(), id); err != nil {
		storeError(w, h.logger, err, "user")
		return
	}
	respond.JSON(w, http.StatusOK, "user deleted", nil)
}
