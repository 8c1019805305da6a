// Package storagetest provides an in-memory storage.Store for handler and
// service tests.
package storagetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/storage"
)

// Fake is a mutex-guarded in-memory implementation of storage.Store.
type Fake struct {
	mu sync.Mutex

	users         map[int64]models.User
	contacts      map[int64]models.Contact
	projects      map[int64]models.Project
	posts         map[int64]models.BlogPost
	notifications map[int64]models.Notification
	seoPages      map[string]models.SEOPage

	nextID int64
}

var _ storage.Store = (*Fake)(nil)

// New returns an empty fake store.
func New() *Fake {
	return &Fake{
		users:         make(map[int64]models.User),
		contacts:      make(map[int64]models.Contact),
		projects:      make(map[int64]models.Project),
		posts:         make(map[int64]models.BlogPost),
		notifications: make(map[int64]models.Notification),
		seoPages:      make(map[string]models.SEOPage),
	}
}

func (f *Fake) id() int64 {
	f.nextID++
	return f.nextID
}

// --- users ---

func (f *Fake) CreateUser(_ context.Context, user models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	user.ID = f.id()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user
	return user, nil
}

func (f *Fake) ListUsers(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *Fake) FindUserByID(_ context.Context, id int64) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (f *Fake) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (f *Fake) UpdateUser(_ context.Context, user models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return models.User{}, storage.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	f.users[user.ID] = user
	return user, nil
}

func (f *Fake) DeleteUser(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	if user.Role == models.RoleSuperadmin {
		count := 0
		for _, u := range f.users {
			if u.Role == models.RoleSuperadmin {
				count++
			}
		}
		if count <= 1 {
			return storage.ErrLastSuperadmin
		}
	}
	delete(f.users, id)
	return nil
}

func (f *Fake) TouchLastLogin(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	now := time.Now()
	user.LastLoginAt = &now
	f.users[id] = user
	return nil
}

func (f *Fake) CountSuperadmins(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, u := range f.users {
		if u.Role == models.RoleSuperadmin {
			count++
		}
	}
	return count, nil
}

// --- contacts ---

func (f *Fake) CreateContact(_ context.Context, contact models.Contact) (models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	contact.ID = f.id()
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = contact.CreatedAt
	f.contacts[contact.ID] = contact
	return contact, nil
}

func (f *Fake) ListContacts(_ context.Context, filter storage.ContactFilter) ([]models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Contact
	for _, c := range f.contacts {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.Spam != nil && c.IsSpam != *filter.Spam {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *Fake) FindContactByID(_ context.Context, id int64) (models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.contacts[id]
	if !ok {
		return models.Contact{}, storage.ErrNotFound
	}
	return c, nil
}

func (f *Fake) UpdateContactStatus(_ context.Context, id int64, status string) (models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.contacts[id]
	if !ok {
		return models.Contact{}, storage.ErrNotFound
	}
	c.Status = status
	c.UpdatedAt = time.Now()
	f.contacts[id] = c
	return c, nil
}

func (f *Fake) DeleteContact(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.contacts[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.contacts, id)
	return nil
}

// --- projects ---

func (f *Fake) CreateProject(_ context.Context, project models.Project) (models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	project.ID = f.id()
	project.CreatedAt = time.Now()
	project.UpdatedAt = project.CreatedAt
	f.projects[project.ID] = project
	return project, nil
}

func (f *Fake) ListProjects(_ context.Context, publishedOnly bool) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Project
	for _, p := range f.projects {
		if publishedOnly && !p.Published {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sequence != out[j].Sequence {
			return out[i].Sequence < out[j].Sequence
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *Fake) FindProjectByID(_ context.Context, id int64) (models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.projects[id]
	if !ok {
		return models.Project{}, storage.ErrNotFound
	}
	return p, nil
}

func (f *Fake) UpdateProject(_ context.Context, project models.Project) (models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.projects[project.ID]; !ok {
		return models.Project{}, storage.ErrNotFound
	}
	project.UpdatedAt = time.Now()
	f.projects[project.ID] = project
	return project, nil
}

func (f *Fake) UpdateProjectSequence(_ context.Context, id int64, sequence int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.projects[id]
	if !ok {
		return storage.ErrNotFound
	}
	p.Sequence = sequence
	f.projects[id] = p
	return nil
}

func (f *Fake) DeleteProject(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.projects[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.projects, id)
	return nil
}

func (f *Fake) IncrementProjectViews(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.projects[id]
	if !ok {
		return storage.ErrNotFound
	}
	p.ViewCount++
	f.projects[id] = p
	return nil
}

func (f *Fake) IncrementProjectLikes(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.projects[id]
	if !ok {
		return storage.ErrNotFound
	}
	p.LikeCount++
	f.projects[id] = p
	return nil
}

// --- posts ---

func (f *Fake) CreatePost(_ context.Context, post models.BlogPost) (models.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.posts {
		if p.Slug == post.Slug {
			return models.BlogPost{}, storage.ErrAlreadyExists
		}
	}
	post.ID = f.id()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	f.posts[post.ID] = post
	return post, nil
}

func (f *Fake) ListPosts(_ context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.BlogPost
	for _, p := range f.posts {
		if publishedOnly && !p.Published {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *Fake) FindPostByID(_ context.Context, id int64) (models.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return models.BlogPost{}, storage.ErrNotFound
	}
	return p, nil
}

func (f *Fake) FindPostBySlug(_ context.Context, slug string) (models.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return models.BlogPost{}, storage.ErrNotFound
}

func (f *Fake) UpdatePost(_ context.Context, post models.BlogPost) (models.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[post.ID]; !ok {
		return models.BlogPost{}, storage.ErrNotFound
	}
	for _, p := range f.posts {
		if p.Slug == post.Slug && p.ID != post.ID {
			return models.BlogPost{}, storage.ErrAlreadyExists
		}
	}
	post.UpdatedAt = time.Now()
	f.posts[post.ID] = post
	return post, nil
}

func (f *Fake) DeletePost(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *Fake) IncrementPostViews(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return storage.ErrNotFound
	}
	p.ViewCount++
	f.posts[id] = p
	return nil
}

func (f *Fake) IncrementPostLikes(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return storage.ErrNotFound
	}
	p.LikeCount++
	f.posts[id] = p
	return nil
}

// --- notifications ---

func (f *Fake) CreateNotification(_ context.Context, n models.Notification) (models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n.ID = f.id()
	n.CreatedAt = time.Now()
	if n.Priority == "" {
		n.Priority = models.NotificationPriorityNormal
	}
	f.notifications[n.ID] = n
	return n, nil
}

func expired(n models.Notification) bool {
	return n.ExpiresAt != nil && !n.ExpiresAt.After(time.Now())
}

func (f *Fake) ListNotifications(_ context.Context, userID int64) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Notification
	for _, n := range f.notifications {
		if n.UserID != userID || expired(n) {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *Fake) CountUnread(_ context.Context, userID int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, n := range f.notifications {
		if n.UserID == userID && !n.Read && !expired(n) {
			count++
		}
	}
	return count, nil
}

func (f *Fake) MarkRead(_ context.Context, userID, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notifications[id]
	if !ok || n.UserID != userID {
		return storage.ErrNotFound
	}
	now := time.Now()
	n.Read = true
	n.ReadAt = &now
	f.notifications[id] = n
	return nil
}

func (f *Fake) MarkAllRead(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	for id, n := range f.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			n.ReadAt = &now
			f.notifications[id] = n
		}
	}
	return nil
}

func (f *Fake) DeleteNotification(_ context.Context, userID, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notifications[id]
	if !ok || n.UserID != userID {
		return storage.ErrNotFound
	}
	delete(f.notifications, id)
	return nil
}

func (f *Fake) PurgeExpired(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var purged int64
	for id, n := range f.notifications {
		if expired(n) {
			delete(f.notifications, id)
			purged++
		}
	}
	return purged, nil
}

// --- seo ---

func (f *Fake) ListSEOPages(_ context.Context) ([]models.SEOPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.SEOPage, 0, len(f.seoPages))
	for _, p := range f.seoPages {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Page < out[j].Page })
	return out, nil
}

func (f *Fake) FindSEOPage(_ context.Context, page string) (models.SEOPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.seoPages[page]
	if !ok {
		return models.SEOPage{}, storage.ErrNotFound
	}
	return p, nil
}

func (f *Fake) UpsertSEOPage(_ context.Context, p models.SEOPage) (models.SEOPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.seoPages[p.Page]
	if ok {
		p.ID = existing.ID
	} else {
		p.ID = f.id()
	}
	p.UpdatedAt = time.Now()
	f.seoPages[p.Page] = p
	return p, nil
}

func (f *Fake) DeleteSEOPage(_ context.Context, page string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.seoPages[page]; !ok {
		return storage.ErrNotFound
	}
	delete(f.seoPages, page)
	return nil
}
