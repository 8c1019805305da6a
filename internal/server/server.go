package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/luminainteriors/lumina-be/internal/auth"
	"github.com/luminainteriors/lumina-be/internal/config"
	"github.com/luminainteriors/lumina-be/internal/http/handlers"
	"github.com/luminainteriors/lumina-be/internal/intake"
	"github.com/luminainteriors/lumina-be/internal/media"
	"github.com/luminainteriors/lumina-be/internal/middleware"
	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/storage"
	"github.com/luminainteriors/lumina-be/internal/storage/filestore"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// Deps carries everything the router needs.
type Deps struct {
	Store    storage.Store
	Files    *filestore.Store
	Tokens   *auth.TokenManager
	Intake   *intake.Service
	Uploader *media.Uploader
	Logger   *slog.Logger
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, deps Deps) *Server {
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           Router(cfg, deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Router builds the full route tree. Exposed separately for handler tests.
func Router(cfg config.Config, deps Deps) http.Handler {
	authH := handlers.NewAuthHandler(deps.Store, deps.Tokens, deps.Logger)
	usersH := handlers.NewUsersHandler(deps.Store, deps.Logger)
	contactsH := handlers.NewContactsHandler(deps.Store, deps.Intake, deps.Logger)
	projectsH := handlers.NewProjectsHandler(deps.Store, deps.Files, deps.Logger)
	postsH := handlers.NewPostsHandler(deps.Store, deps.Logger)
	notificationsH := handlers.NewNotificationsHandler(deps.Store, deps.Logger)
	seoH := handlers.NewSEOHandler(deps.Store, deps.Store, deps.Store, cfg.SiteURL, deps.Logger)
	uploadsH := handlers.NewUploadsHandler(deps.Uploader, deps.Logger)
	siteH := handlers.NewSiteHandler(deps.Files, deps.Logger)
	healthH := handlers.NewHealthHandler(time.Now())

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logging(deps.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(limiter.Handler)

	r.Get("/health", healthH.Handle)
	r.Get("/sitemap.xml", seoH.Sitemap)
	r.Get("/robots.txt", seoH.Robots)

	r.Route("/api", func(r chi.Router) {
		// Public surface.
		r.Post("/auth/login", authH.Login)
		r.Post("/contact", contactsH.Submit)
		r.Get("/projects", projectsH.ListPublic)
		r.Get("/projects/{id}", projectsH.GetPublic)
		r.Post("/projects/{id}/like", projectsH.Like)
		r.Get("/blog", postsH.ListPublic)
		r.Get("/blog/{slug}", postsH.GetPublic)
		r.Post("/blog/{slug}/like", postsH.Like)
		r.Get("/seo/{page}", seoH.GetPage)
		r.Get("/site/portfolio", siteH.Portfolio)
		r.Get("/site/services", siteH.Services)
		r.Get("/site/slideshow", siteH.Slideshow)

		// Authenticated surface.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(deps.Tokens))

			r.Get("/auth/me", authH.Me)
			r.Put("/auth/me", authH.UpdateMe)
			r.Put("/auth/me/password", authH.ChangePassword)

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationsH.List)
				r.Get("/unread-count", notificationsH.UnreadCount)
				r.Put("/{id}/read", notificationsH.MarkRead)
				r.Put("/read-all", notificationsH.MarkAllRead)
				r.Delete("/{id}", notificationsH.Delete)
			})

			// Admin surface.
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", usersH.List)
					r.Get("/{id}", usersH.Get)
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(models.PermManageUsers))
						r.Post("/", usersH.Create)
						r.Put("/{id}", usersH.Update)
						r.Delete("/{id}", usersH.Delete)
					})
				})

				r.Route("/contacts", func(r chi.Router) {
					r.Get("/", contactsH.List)
					r.With(middleware.RequirePermission(models.PermExportData)).
						Get("/export", contactsH.Export)
					r.Get("/{id}", contactsH.Get)
					r.Put("/{id}/status", contactsH.UpdateStatus)
					r.Delete("/{id}", contactsH.Delete)
				})

				r.Route("/projects", func(r chi.Router) {
					r.Get("/", projectsH.ListAdmin)
					r.Post("/", projectsH.Create)
					r.Put("/{id}", projectsH.Update)
					r.Put("/{id}/sequence", projectsH.UpdateSequence)
					r.Delete("/{id}", projectsH.Delete)
				})

				r.Route("/posts", func(r chi.Router) {
					r.Get("/", postsH.ListAdmin)
					r.Post("/", postsH.Create)
					r.Put("/{id}", postsH.Update)
					r.Delete("/{id}", postsH.Delete)
				})

				r.Route("/seo", func(r chi.Router) {
					r.Get("/", seoH.List)
					r.Put("/{page}", seoH.Upsert)
					r.Delete("/{page}", seoH.Delete)
				})

				r.With(middleware.RequirePermission(models.PermManageMedia)).
					Post("/uploads", uploadsH.Upload)

				r.Route("/site", func(r chi.Router) {
					r.Use(middleware.RequirePermission(models.PermManageContent))
					r.Put("/services", siteH.ReplaceServices)
					r.Put("/slideshow", siteH.ReplaceSlideshow)
				})
			})
		})
	})

	return r
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
