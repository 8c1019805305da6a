package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/luminainteriors/lumina-be/internal/http/respond"
	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/storage/filestore"
)

// SiteHandler serves the flat-file display lists without touching the
// database, plus the admin endpoints that replace the editable ones.
type SiteHandler struct {
	files  *filestore.Store
	logger *slog.Logger
}

// NewSiteHandler constructs the handler.
func NewSiteHandler(files *filestore.Store, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{files: files, logger: logger}
}

// Portfolio returns the denormalized public portfolio list.
func (h *SiteHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	var entries []models.PortfolioEntry
	if err := h.files.Read(filestore.PortfolioFile, &entries); err != nil {
		h.logger.Error("portfolio file read failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respond.JSON(w, http.StatusOK, "portfolio", entries)
}

// Services returns the ordered services list.
func (h *SiteHandler) Services(w http.ResponseWriter, r *http.Request) {
	var entries []models.ServiceEntry
	if err := h.files.Read(filestore.ServicesFile, &entries); err != nil {
		h.logger.Error("services file read failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respond.JSON(w, http.StatusOK, "services", entries)
}

// Slideshow returns the ordered slideshow list.
func (h *SiteHandler) Slideshow(w http.ResponseWriter, r *http.Request) {
	var entries []models.SlideshowEntry
	if err := h.files.Read(filestore.SlideshowFile, &entries); err != nil {
		h.logger.Error("slideshow file read failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respond.JSON(w, http.StatusOK, "slideshow", entries)
}

// ReplaceServices overwrites the services list (admin).
func (h *SiteHandler) ReplaceServices(w http.ResponseWriter, r *http.Request) {
	var entries []models.ServiceEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := h.files.Write(filestore.ServicesFile, entries); err != nil {
		h.logger.Error("services file write failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respond.JSON(w, http.StatusOK, "services updated", entries)
}

// ReplaceSlideshow overwrites the slideshow list (admin).
func (h *SiteHandler) ReplaceSlideshow(w http.ResponseWriter, r *http.Request) {
	var entries []models.SlideshowEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := h.files.Write(filestore.SlideshowFile, entries); err != nil {
		h.logger.Error("slideshow file write failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respond.JSON(w, http.StatusOK, "slideshow updated", entries)
}
