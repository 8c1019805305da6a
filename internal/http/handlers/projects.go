package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/luminainteriors/lumina-be/internal/http/respond"
	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/models/dto"
	"github.com/luminainteriors/lumina-be/internal/storage"
	"github.com/luminainteriors/lumina-be/internal/storage/filestore"
)

// ProjectsHandler owns public portfolio reads and admin project CRUD. Every
// mutation write-throughs the denormalized portfolio.json used by the
// unauthenticated site; file failures are logged, never surfaced.
type ProjectsHandler struct {
	store  storage.ProjectStore
	files  *filestore.Store
	logger *slog.Logger
}

// NewProjectsHandler constructs the handler.
func NewProjectsHandler(store storage.ProjectStore, files *filestore.Store, logger *slog.Logger) *ProjectsHandler {
	return &ProjectsHandler{store: store, files: files, logger: logger}
}

// ListPublic returns published projects in display order.
func (h *ProjectsHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.ListProjects(r.Context(), true)
	if err != nil {
		storeError(w, h.logger, err, "project")
		return
	}
	respond.JSON(w, http.StatusOK, "projects", projects)
}

// GetPublic returns one published project and bumps its view counter.
func (h *ProjectsHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid project id")
		return
	}
	project, err := h.store.FindProjectByID(r.Context(), id)
	if err != nil {
		storeError(w, h.logger, err, "project")
		return
	}
	if !project.Published {
		respond.Error(w, http.StatusNotFound, "project not found")
		return
	}
	if err := h.store.IncrementProjectViews(r.Context(), id); err != nil {
		h.logger.Warn("project view count update failed", "project_id", id, "error", err)
	}
	project.ViewCount++
	respond.JSON(w, http.StatusOK, "project", project)
}

// Like bumps the public like counter.
func (h *ProjectsHandler) Like(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid project id")
		return
	}
	if err := h.store.IncrementProjectLikes(r.Context(), id); err != nil {
		storeError(w, h.logger, err, "project")
		return
	}
	respond.JSON(w, http.StatusOK, "liked", nil)
}

// ListAdmin returns every project, drafts included.
func (h *ProjectsHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.ListProjects(r.Context(), false)
	if err != nil {
		storeError(w, h.logger, err, "project")
		return
	}
	respond.JSON(w, http.StatusOK, "projects", projects)
}

// Create adds a project and syncs the portfolio file.
func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	project, ok := h.decodeProject(w, r)
	if !ok {
		return
	}
	created, err := h.store.CreateProject(r.Context(), project)
	if err != nil {
		storeError(w, h.logger, err, "project")
		return
	}
	h.syncPortfolio(created, false)
	respond.JSON(w, http.StatusCreated, "project created", created)
}

// Update mutates a project and syncs the portfolio file.
func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid project id")
		return
	}
	project, ok := h.decodeProject(w, r)
	if !ok {
		return
	}
	project.ID = id
	updated, err := h.store.UpdateProject(r.Context(), project)
	if err != nil {
		storeError(w, h.logger, err, "project")
		return
	}
	h.syncPortfolio(updated, false)
	respond.JSON(w, http.StatusOK, "project updated", updated)
}

// UpdateSequence changes the display order of one project.
func (h *ProjectsHandler) UpdateSequence(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid project id")
		return
	}
	var req dto.SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := h.store.UpdateProjectSequence(r.Context(), id, req.Sequence); err != nil {
		storeError(w, h.logger, err, "project")
		return
	}
	project, err := h.store.FindProjectByID(r.Context(), id)
	if err == nil {
		h.syncPortfolio(project, false)
	}
	respond.JSON(w, http.StatusOK, "sequence updated", nil)
}

// Delete removes a project and its portfolio entry.
func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid project id")
		return
	}
	if err := h.store.DeleteProject(r.Context(), id); err != nil {
		storeError(w, h.logger, err, "project")
		return
	}
	h.syncPortfolio(models.Project{ID: id}, true)
	respond.JSON(w, http.StatusOK, "project deleted", nil)
}

func (h *ProjectsHandler) decodeProject(w http.ResponseWriter, r *http.Request) (models.Project, bool) {
	var req dto.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return models.Project{}, false
	}
	if strings.TrimSpace(req.Title) == "" {
		respond.Error(w, http.StatusBadRequest, "title is required")
		return models.Project{}, false
	}
	project := models.Project{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Category:    req.Category,
		Images:      req.Images,
		Area:        req.Area,
		BudgetRange: req.BudgetRange,
		Duration:    req.Duration,
		Location:    req.Location,
		Published:   req.Published,
		Featured:    req.Featured,
		Sequence:    req.Sequence,
	}
	project.NormalizeImages()
	return project, true
}

// syncPortfolio rewrites the project's entry in portfolio.json (or removes
// it). Unpublished projects are kept out of the public file.
func (h *ProjectsHandler) syncPortfolio(project models.Project, remove bool) {
	err := filestore.Update(h.files, filestore.PortfolioFile, func(entries []models.PortfolioEntry) []models.PortfolioEntry {
		kept := entries[:0]
		for _, entry := range entries {
			if entry.ID != project.ID {
				kept = append(kept, entry)
			}
		}
		if !remove && project.Published {
			kept = append(kept, project.PortfolioView())
		}
		return kept
	})
	if err != nil {
		h.logger.Error("portfolio file sync failed", "project_id", project.ID, "error", err)
	}
}
