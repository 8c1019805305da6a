package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/luminainteriors/lumina-be/internal/http/respond"
	"github.com/luminainteriors/lumina-be/internal/storage"
)

// idParam parses the {id} route parameter.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// storeError maps storage sentinels onto HTTP statuses; anything else is a
// generic 500 with the cause logged.
func storeError(w http.ResponseWriter, logger *slog.Logger, err error, what string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		respond.Error(w, http.StatusNotFound, what+" not found")
	case errors.Is(err, storage.ErrAlreadyExists):
		respond.Error(w, http.StatusConflict, what+" already exists")
	case errors.Is(err, storage.ErrLastSuperadmin):
		respond.Error(w, http.StatusBadRequest, "at least one superadmin must remain")
	default:
		logger.Error(what+" operation failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
