package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/luminainteriors/lumina-be/internal/http/respond"
	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/models/dto"
	"github.com/luminainteriors/lumina-be/internal/slug"
	"github.com/luminainteriors/lumina-be/internal/storage"
)

// PostsHandler owns the public blog surface and admin post CRUD.
type PostsHandler struct {
	store  storage.PostStore
	logger *slog.Logger
}

// NewPostsHandler constructs the handler.
func NewPostsHandler(store storage.PostStore, logger *slog.Logger) *PostsHandler {
	return &PostsHandler{store: store, logger: logger}
}

// ListPublic returns published posts, newest first.
func (h *PostsHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.ListPosts(r.Context(), true)
	if err != nil {
		storeError(w, h.logger, err, "post")
		return
	}
	respond.JSON(w, http.StatusOK, "posts", posts)
}

// GetPublic returns one published post by slug and bumps its view counter.
func (h *PostsHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	post, err := h.store.FindPostBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		storeError(w, h.logger, err, "post")
		return
	}
	if !post.Published {
		respond.Error(w, http.StatusNotFound, "post not found")
		return
	}
	if err := h.store.IncrementPostViews(r.Context(), post.ID); err != nil {
		h.logger.Warn("post view count update failed", "post_id", post.ID, "error", err)
	}
	post.ViewCount++
	respond.JSON(w, http.StatusOK, "post", post)
}

// Like bumps the public like counter.
func (h *PostsHandler) Like(w http.ResponseWriter, r *http.Request) {
	post, err := h.store.FindPostBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil || !post.Published {
		respond.Error(w, http.StatusNotFound, "post not found")
		return
	}
	if err := h.store.IncrementPostLikes(r.Context(), post.ID); err != nil {
		storeError(w, h.logger, err, "post")
		return
	}
	respond.JSON(w, http.StatusOK, "liked", nil)
}

// ListAdmin returns all posts, drafts included.
func (h *PostsHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.ListPosts(r.Context(), false)
	if err != nil {
		storeError(w, h.logger, err, "post")
		return
	}
	respond.JSON(w, http.StatusOK, "posts", posts)
}

// Create adds a post, deriving the slug from the title when absent.
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	post, ok := h.decodePost(w, r)
	if !ok {
		return
	}
	if post.Published {
		now := time.Now()
		post.PublishedAt = &now
	}
	created, err := h.store.CreatePost(r.Context(), post)
	if err != nil {
		storeError(w, h.logger, err, "post")
		return
	}
	respond.JSON(w, http.StatusCreated, "post created", created)
}

// Update mutates a post; published_at is set the first time it goes live.
func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}
	existing, err := h.store.FindPostByID(r.Context(), id)
	if err != nil {
		storeError(w, h.logger, err, "post")
		return
	}

	post, ok := h.decodePost(w, r)
	if !ok {
		return
	}
	post.ID = id
	post.PublishedAt = existing.PublishedAt
	if post.Published && existing.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	updated, err := h.store.UpdatePost(r.Context(), post)
	if err != nil {
		storeError(w, h.logger, err, "post")
		return
	}
	respond.JSON(w, http.StatusOK, "post updated", updated)
}

// Delete removes a post.
func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}
	if err := h.store.DeletePost(r.Context(), id); err != nil {
		storeError(w, h.logger, err, "post")
		return
	}
	respond.JSON(w, http.StatusOK, "post deleted", nil)
}

func (h *PostsHandler) decodePost(w http.ResponseWriter, r *http.Request) (models.BlogPost, bool) {
	var req dto.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return models.BlogPost{}, false
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		respond.Error(w, http.StatusBadRequest, "title is required")
		return models.BlogPost{}, false
	}

	postSlug := strings.TrimSpace(req.Slug)
	if postSlug == "" {
		postSlug = slug.Make(title)
	} else if !slug.IsValid(postSlug) {
		respond.Error(w, http.StatusBadRequest, "invalid slug")
		return models.BlogPost{}, false
	}
	if postSlug == "" {
		respond.Error(w, http.StatusBadRequest, "title yields an empty slug")
		return models.BlogPost{}, false
	}

	return models.BlogPost{
		Title:           title,
		Slug:            postSlug,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		CoverImage:      req.CoverImage,
		Tags:            req.Tags,
		Published:       req.Published,
		ReadingMinutes:  models.EstimateReadingMinutes(req.Content),
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
	}, true
}
