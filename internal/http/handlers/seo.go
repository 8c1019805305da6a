package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/luminainteriors/lumina-be/internal/http/respond"
	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/models/dto"
	"github.com/luminainteriors/lumina-be/internal/seo"
	"github.com/luminainteriors/lumina-be/internal/storage"
)

// SEOHandler serves page metadata, the sitemap, and robots.txt.
type SEOHandler struct {
	store    storage.SEOStore
	projects storage.ProjectStore
	posts    storage.PostStore
	siteURL  string
	logger   *slog.Logger
}

// NewSEOHandler constructs the handler.
func NewSEOHandler(store storage.SEOStore, projects storage.ProjectStore, posts storage.PostStore, siteURL string, logger *slog.Logger) *SEOHandler {
	return &SEOHandler{store: store, projects: projects, posts: posts, siteURL: siteURL, logger: logger}
}

// GetPage returns the SEO record for one logical page (public).
func (h *SEOHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.store.FindSEOPage(r.Context(), chi.URLParam(r, "page"))
	if err != nil {
		storeError(w, h.logger, err, "seo page")
		return
	}
	respond.JSON(w, http.StatusOK, "seo page", page)
}

// List returns every SEO record (admin).
func (h *SEOHandler) List(w http.ResponseWriter, r *http.Request) {
	pages, err := h.store.ListSEOPages(r.Context())
	if err != nil {
		storeError(w, h.logger, err, "seo page")
		return
	}
	respond.JSON(w, http.StatusOK, "seo pages", pages)
}

// Upsert creates or replaces the record for one logical page (admin).
func (h *SEOHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req dto.SEOPageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	page, err := h.store.UpsertSEOPage(r.Context(), models.SEOPage{
		Page:              chi.URLParam(r, "page"),
		Title:             req.Title,
		Description:       req.Description,
		Keywords:          req.Keywords,
		OGTitle:           req.OGTitle,
		OGDescription:     req.OGDescription,
		OGImage:           req.OGImage,
		TwitterCard:       req.TwitterCard,
		SitemapPriority:   req.SitemapPriority,
		SitemapChangeFreq: req.SitemapChangeFreq,
	})
	if err != nil {
		storeError(w, h.logger, err, "seo page")
		return
	}
	respond.JSON(w, http.StatusOK, "seo page saved", page)
}

// Delete removes one logical page's record (admin).
func (h *SEOHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteSEOPage(r.Context(), chi.URLParam(r, "page")); err != nil {
		storeError(w, h.logger, err, "seo page")
		return
	}
	respond.JSON(w, http.StatusOK, "seo page deleted", nil)
}

// Sitemap generates sitemap.xml from the SEO records plus published content.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	builder := seo.NewSitemapBuilder(h.siteURL)

	pages, err := h.store.ListSEOPages(r.Context())
	if err != nil {
		h.logger.Error("sitemap: listing seo pages failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	for _, page := range pages {
		path := "/" + page.Page
		if page.Page == "home" {
			path = "/"
		}
		builder.AddPage(path, page.SitemapChangeFreq, page.SitemapPriority, page.UpdatedAt)
	}

	projects, err := h.projects.ListProjects(r.Context(), true)
	if err == nil {
		for _, project := range projects {
			builder.AddEntry("/projects/"+formatID(project.ID), project.UpdatedAt)
		}
	}
	posts, err := h.posts.ListPosts(r.Context(), true)
	if err == nil {
		for _, post := range posts {
			builder.AddEntry("/blog/"+post.Slug, post.UpdatedAt)
		}
	}

	body, err := builder.Build()
	if err != nil {
		h.logger.Error("sitemap: build failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(body)
}

// Robots serves robots.txt.
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(seo.BuildRobots(seo.RobotsConfig{SiteURL: h.siteURL})))
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
