package storage

import (
	"context"
	"errors"

	"github.com/luminainteriors/lumina-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// ErrLastSuperadmin indicates an operation would remove the final superadmin.
var ErrLastSuperadmin = errors.New("at least one superadmin must remain")

// ContactFilter narrows admin contact listings.
type ContactFilter struct {
	Status string
	// Spam filters by classification when non-nil.
	Spam *bool
}

// UserStore captures user persistence operations needed by handlers.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	// DeleteUser refuses to remove the last superadmin with ErrLastSuperadmin.
	DeleteUser(ctx context.Context, id int64) error
	TouchLastLogin(ctx context.Context, id int64) error
	CountSuperadmins(ctx context.Context) (int, error)
}

// ContactStore persists contact submissions.
type ContactStore interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	ListContacts(ctx context.Context, filter ContactFilter) ([]models.Contact, error)
	FindContactByID(ctx context.Context, id int64) (models.Contact, error)
	UpdateContactStatus(ctx context.Context, id int64, status string) (models.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}

// ProjectStore persists portfolio projects.
type ProjectStore interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	ListProjects(ctx context.Context, publishedOnly bool) ([]models.Project, error)
	FindProjectByID(ctx context.Context, id int64) (models.Project, error)
	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)
	UpdateProjectSequence(ctx context.Context, id int64, sequence int) error
	DeleteProject(ctx context.Context, id int64) error
	IncrementProjectViews(ctx context.Context, id int64) error
	IncrementProjectLikes(ctx context.Context, id int64) error
}

// PostStore persists blog posts.
type PostStore interface {
	CreatePost(ctx context.Context, post models.BlogPost) (models.BlogPost, error)
	ListPosts(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error)
	FindPostByID(ctx context.Context, id int64) (models.BlogPost, error)
	FindPostBySlug(ctx context.Context, slug string) (models.BlogPost, error)
	UpdatePost(ctx context.Context, post models.BlogPost) (models.BlogPost, error)
	DeletePost(ctx context.Context, id int64) error
	IncrementPostViews(ctx context.Context, id int64) error
	IncrementPostLikes(ctx context.Context, id int64) error
}

// NotificationStore persists per-user notifications. Listing and counting
// exclude expired rows.
type NotificationStore interface {
	CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error)
	ListNotifications(ctx context.Context, userID int64) ([]models.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int, error)
	MarkRead(ctx context.Context, userID, id int64) error
	MarkAllRead(ctx context.Context, userID int64) error
	DeleteNotification(ctx context.Context, userID, id int64) error
	PurgeExpired(ctx context.Context) (int64, error)
}

// SEOStore persists per-page SEO records keyed by logical page name.
type SEOStore interface {
	ListSEOPages(ctx context.Context) ([]models.SEOPage, error)
	FindSEOPage(ctx context.Context, page string) (models.SEOPage, error)
	UpsertSEOPage(ctx context.Context, p models.SEOPage) (models.SEOPage, error)
	DeleteSEOPage(ctx context.Context, page string) error
}

// Store aggregates every collection the handlers need.
type Store interface {
	UserStore
	ContactStore
	ProjectStore
	PostStore
	NotificationStore
	SEOStore
}
