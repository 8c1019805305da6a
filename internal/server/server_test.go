package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminainteriors/lumina-be/internal/auth"
	"github.com/luminainteriors/lumina-be/internal/config"
	"github.com/luminainteriors/lumina-be/internal/intake"
	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/secrets"
	"github.com/luminainteriors/lumina-be/internal/server"
	"github.com/luminainteriors/lumina-be/internal/storage/filestore"
	"github.com/luminainteriors/lumina-be/internal/storage/storagetest"
)

const testPassword = "correct-horse-battery"

type env struct {
	store   *storagetest.Fake
	files   *filestore.Store
	tokens  *auth.TokenManager
	handler http.Handler
}

func newEnv(t *testing.T) *env {
	t.Helper()

	store := storagetest.New()
	files, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	sealer, err := secrets.NewSealer("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	tokens := auth.NewTokenManager("router-test-secret", "lumina-test", time.Hour)

	cfg := config.Config{
		SiteURL:        "https://example.com",
		CORSOrigins:    []string{"*"},
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}
	handler := server.Router(cfg, server.Deps{
		Store:  store,
		Files:  files,
		Tokens: tokens,
		Intake: intake.New(store, sealer, nil, nil, logger),
		Logger: logger,
	})

	return &env{store: store, files: files, tokens: tokens, handler: handler}
}

// seedUser creates an active account and returns it with a valid token.
func (e *env) seedUser(t *testing.T, email, role string, perms ...string) (models.User, string) {
	t.Helper()
	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)
	user, err := e.store.CreateUser(t.Context(), models.User{
		Name:         "Test " + role,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Permissions:  perms,
		Active:       true,
	})
	require.NoError(t, err)
	token, err := e.tokens.Generate(user)
	require.NoError(t, err)
	return user, token
}

func (e *env) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}

func TestHealth(t *testing.T) {
	e := newEnv(t)
	rec := e.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin(t *testing.T) {
	e := newEnv(t)
	user, _ := e.seedUser(t, "admin@example.com", models.RoleAdmin)

	t.Run("valid credentials", func(t *testing.T) {
		rec := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    user.Email,
			"password": testPassword,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Token string      `json:"token"`
			User  models.User `json:"user"`
		}
		decode(t, rec, &resp)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.Email, resp.User.Email)

		// The issued token must work against the authenticated surface.
		me := e.do(t, http.MethodGet, "/api/auth/me", resp.Token, nil)
		assert.Equal(t, http.StatusOK, me.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    user.Email,
			"password": "not-the-password",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deactivated account", func(t *testing.T) {
		inactive, _ := e.seedUser(t, "former@example.com", models.RoleAdmin)
		inactive.Active = false
		_, err := e.store.UpdateUser(t.Context(), inactive)
		require.NoError(t, err)

		rec := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    inactive.Email,
			"password": testPassword,
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminAccessControl(t *testing.T) {
	e := newEnv(t)
	_, userToken := e.seedUser(t, "viewer@example.com", models.RoleUser)
	_, adminToken := e.seedUser(t, "admin@example.com", models.RoleAdmin)

	t.Run("missing token", func(t *testing.T) {
		rec := e.do(t, http.MethodGet, "/api/admin/users", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := e.do(t, http.MethodGet, "/api/admin/users", "not.a.jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-admin role", func(t *testing.T) {
		rec := e.do(t, http.MethodGet, "/api/admin/users", userToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin role", func(t *testing.T) {
		rec := e.do(t, http.MethodGet, "/api/admin/users", adminToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUserManagementPermissions(t *testing.T) {
	e := newEnv(t)
	_, plainAdmin := e.seedUser(t, "plain@example.com", models.RoleAdmin)
	_, superToken := e.seedUser(t, "root@example.com", models.RoleSuperadmin)

	payload := map[string]any{
		"name":     "New Staffer",
		"email":    "staff@example.com",
		"password": "long-enough-pw",
		"role":     models.RoleUser,
	}

	// Admin without manage_users cannot create accounts.
	rec := e.do(t, http.MethodPost, "/api/admin/users", plainAdmin, payload)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Superadmin passes every permission check.
	rec = e.do(t, http.MethodPost, "/api/admin/users", superToken, payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Duplicate email is a conflict.
	rec = e.do(t, http.MethodPost, "/api/admin/users", superToken, payload)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// An admin granted the permission explicitly also passes.
	_, granted := e.seedUser(t, "hr@example.com", models.RoleAdmin, models.PermManageUsers)
	payload["email"] = "staff2@example.com"
	rec = e.do(t, http.MethodPost, "/api/admin/users", granted, payload)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLastSuperadminProtected(t *testing.T) {
	e := newEnv(t)
	root, rootToken := e.seedUser(t, "root@example.com", models.RoleSuperadmin)

	rootID := formatID(root.ID)

	// Deleting the only superadmin is refused.
	rec := e.do(t, http.MethodDelete, "/api/admin/users/"+rootID, rootToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Demoting the only superadmin is refused too.
	rec = e.do(t, http.MethodPut, "/api/admin/users/"+rootID, rootToken, map[string]any{
		"role": models.RoleAdmin,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// With a second superadmin in place, the first can go.
	e.seedUser(t, "root2@example.com", models.RoleSuperadmin)
	rec = e.do(t, http.MethodDelete, "/api/admin/users/"+rootID, rootToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContactSubmission(t *testing.T) {
	e := newEnv(t)
	_, superToken := e.seedUser(t, "root@example.com", models.RoleSuperadmin)

	t.Run("missing fields rejected", func(t *testing.T) {
		rec := e.do(t, http.MethodPost, "/api/contact", "", map[string]string{
			"name":  "Dana",
			"email": "dana@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid submission sealed at rest", func(t *testing.T) {
		rec := e.do(t, http.MethodPost, "/api/contact", "", map[string]string{
			"name":    "Dana Lee",
			"email":   "dana@example.com",
			"phone":   "555-0100",
			"message": "We would like a quote for a two bedroom apartment.",
			"service": "residential",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var created struct {
			ID int64 `json:"id"`
		}
		decode(t, rec, &created)

		// The stored row holds only placeholders.
		stored, err := e.store.FindContactByID(t.Context(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, models.EncryptedPlaceholder, stored.Name)
		assert.Equal(t, models.EncryptedPlaceholder, stored.Email)
		assert.Equal(t, models.EncryptedPlaceholder, stored.Message)
		assert.NotEmpty(t, stored.Encrypted)
		assert.False(t, stored.IsSpam)

		// The admin view decrypts transparently.
		adminRec := e.do(t, http.MethodGet, "/api/admin/contacts/"+formatID(created.ID), superToken, nil)
		require.Equal(t, http.StatusOK, adminRec.Code)
		var contact models.Contact
		decode(t, adminRec, &contact)
		assert.Equal(t, "Dana Lee", contact.Name)
		assert.Equal(t, "dana@example.com", contact.Email)
	})
}

func TestContactSpamClassification(t *testing.T) {
	e := newEnv(t)
	_, superToken := e.seedUser(t, "root@example.com", models.RoleSuperadmin)

	rec := e.do(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name":    "Totally Real",
		"email":   "win@example.com",
		"message": "FREE MONEY CLICK HERE NOW",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	list := e.do(t, http.MethodGet, "/api/admin/contacts/?spam=true", superToken, nil)
	require.Equal(t, http.StatusOK, list.Code)
	var contacts []models.Contact
	decode(t, list, &contacts)
	require.Len(t, contacts, 1)
	assert.True(t, contacts[0].IsSpam)
	assert.GreaterOrEqual(t, contacts[0].SpamScore, 5)

	// The non-spam filter must come back empty.
	clean := e.do(t, http.MethodGet, "/api/admin/contacts/?spam=false", superToken, nil)
	require.Equal(t, http.StatusOK, clean.Code)
	contacts = nil
	decode(t, clean, &contacts)
	assert.Empty(t, contacts)
}

func TestProjectPortfolioSync(t *testing.T) {
	e := newEnv(t)
	_, superToken := e.seedUser(t, "root@example.com", models.RoleSuperadmin)

	rec := e.do(t, http.MethodPost, "/api/admin/projects/", superToken, map[string]any{
		"title":     "Harbor Loft",
		"category":  "residential",
		"published": true,
		"images": []map[string]any{
			{"url": "https://cdn.example.com/loft.jpg", "is_primary": true},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var project models.Project
	decode(t, rec, &project)

	// The public flat file now carries the entry.
	var entries []models.PortfolioEntry
	require.NoError(t, e.files.Read(filestore.PortfolioFile, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Harbor Loft", entries[0].Title)
	assert.Equal(t, "https://cdn.example.com/loft.jpg", entries[0].Image)

	// And the public endpoint serves it.
	pub := e.do(t, http.MethodGet, "/api/site/portfolio", "", nil)
	require.Equal(t, http.StatusOK, pub.Code)
	entries = nil
	decode(t, pub, &entries)
	assert.Len(t, entries, 1)

	// Unpublishing removes the entry from the file.
	upd := e.do(t, http.MethodPut, "/api/admin/projects/"+formatID(project.ID), superToken, map[string]any{
		"title":     "Harbor Loft",
		"category":  "residential",
		"published": false,
	})
	require.Equal(t, http.StatusOK, upd.Code)
	entries = nil
	require.NoError(t, e.files.Read(filestore.PortfolioFile, &entries))
	assert.Empty(t, entries)

	// Deleting keeps the file consistent.
	del := e.do(t, http.MethodDelete, "/api/admin/projects/"+formatID(project.ID), superToken, nil)
	require.Equal(t, http.StatusOK, del.Code)
	entries = nil
	require.NoError(t, e.files.Read(filestore.PortfolioFile, &entries))
	assert.Empty(t, entries)
}

func TestUnpublishedProjectHidden(t *testing.T) {
	e := newEnv(t)
	draft, err := e.store.CreateProject(t.Context(), models.Project{Title: "Draft", Published: false})
	require.NoError(t, err)

	rec := e.do(t, http.MethodGet, "/api/projects/"+formatID(draft.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	list := e.do(t, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusOK, list.Code)
	var projects []models.Project
	decode(t, list, &projects)
	assert.Empty(t, projects)
}

func TestPostSlugs(t *testing.T) {
	e := newEnv(t)
	_, superToken := e.seedUser(t, "root@example.com", models.RoleSuperadmin)

	rec := e.do(t, http.MethodPost, "/api/admin/posts/", superToken, map[string]any{
		"title":     "Lighting a Scandinavian Räum",
		"content":   strings.Repeat("warm minimal light ", 50),
		"published": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var post models.BlogPost
	decode(t, rec, &post)
	assert.Equal(t, "lighting-a-scandinavian-raum", post.Slug)
	assert.NotNil(t, post.PublishedAt)
	assert.GreaterOrEqual(t, post.ReadingMinutes, 1)

	// Same derived slug conflicts.
	dup := e.do(t, http.MethodPost, "/api/admin/posts/", superToken, map[string]any{
		"title": "Lighting a Scandinavian Räum",
	})
	assert.Equal(t, http.StatusConflict, dup.Code)

	// The public read resolves by slug and bumps views.
	pub := e.do(t, http.MethodGet, "/api/blog/"+post.Slug, "", nil)
	require.Equal(t, http.StatusOK, pub.Code)
	var got models.BlogPost
	decode(t, pub, &got)
	assert.Equal(t, int64(1), got.ViewCount)
}

func TestDraftPostHiddenFromPublic(t *testing.T) {
	e := newEnv(t)
	_, err := e.store.CreatePost(t.Context(), models.BlogPost{
		Title: "Draft", Slug: "draft", Published: false,
	})
	require.NoError(t, err)

	rec := e.do(t, http.MethodGet, "/api/blog/draft", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotifications(t *testing.T) {
	e := newEnv(t)
	user, token := e.seedUser(t, "admin@example.com", models.RoleAdmin)

	_, err := e.store.CreateNotification(t.Context(), models.Notification{
		UserID: user.ID, Type: "contact", Title: "first",
	})
	require.NoError(t, err)
	past := time.Now().Add(-time.Hour)
	_, err = e.store.CreateNotification(t.Context(), models.Notification{
		UserID: user.ID, Type: "contact", Title: "stale", ExpiresAt: &past,
	})
	require.NoError(t, err)

	// Expired rows are invisible.
	rec := e.do(t, http.MethodGet, "/api/notifications/", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var feed []models.Notification
	decode(t, rec, &feed)
	require.Len(t, feed, 1)
	assert.Equal(t, "first", feed[0].Title)

	unread := func() int {
		rec := e.do(t, http.MethodGet, "/api/notifications/unread-count", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var count struct {
			Unread int `json:"unread"`
		}
		decode(t, rec, &count)
		return count.Unread
	}
	assert.Equal(t, 1, unread())

	rec = e.do(t, http.MethodPut, "/api/notifications/read-all", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, unread())

	// Another user's feed cannot be touched.
	other, _ := e.seedUser(t, "other@example.com", models.RoleAdmin)
	theirs, err := e.store.CreateNotification(t.Context(), models.Notification{
		UserID: other.ID, Type: "contact", Title: "not yours",
	})
	require.NoError(t, err)
	rec = e.do(t, http.MethodDelete, "/api/notifications/"+formatID(theirs.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSitemapAndRobots(t *testing.T) {
	e := newEnv(t)
	_, superToken := e.seedUser(t, "root@example.com", models.RoleSuperadmin)

	rec := e.do(t, http.MethodPut, "/api/admin/seo/home", superToken, map[string]any{
		"title":              "Lumina Interiors",
		"description":        "Interior design studio",
		"sitemap_priority":   "1.0",
		"sitemap_changefreq": "weekly",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	_, err := e.store.CreatePost(t.Context(), models.BlogPost{
		Title: "Published", Slug: "published-post", Published: true,
	})
	require.NoError(t, err)

	sitemap := e.do(t, http.MethodGet, "/sitemap.xml", "", nil)
	require.Equal(t, http.StatusOK, sitemap.Code)
	body := sitemap.Body.String()
	assert.Contains(t, body, "<loc>https://example.com</loc>")
	assert.Contains(t, body, "https://example.com/blog/published-post")

	robots := e.do(t, http.MethodGet, "/robots.txt", "", nil)
	require.Equal(t, http.StatusOK, robots.Code)
	assert.Contains(t, robots.Body.String(), "Disallow: /api/admin")
	assert.Contains(t, robots.Body.String(), "Sitemap: https://example.com/sitemap.xml")
}

func TestUploadsUnavailableWithoutObjectStorage(t *testing.T) {
	e := newEnv(t)
	_, superToken := e.seedUser(t, "root@example.com", models.RoleSuperadmin)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", strings.NewReader(""))
	req.Header.Set("Authorization", "Bearer "+superToken)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
