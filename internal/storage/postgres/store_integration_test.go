package postgres

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/storage"
)

// TestStoreIntegration exercises the live database end to end: user CRUD,
// contact lifecycle, and the seo upsert path.
func TestStoreIntegration(t *testing.T) {
	if os.Getenv("RUN_DB_INTEGRATION") != "true" {
		t.Skip("set RUN_DB_INTEGRATION=true to run this integration test")
	}

	loadDotEnv()
	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		t.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	store, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	defer store.Close()

	stamp := time.Now().UnixNano()
	email := fmt.Sprintf("itest_%d@example.com", stamp)

	user, err := store.CreateUser(ctx, models.User{
		Name:         "Integration Test",
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleAdmin,
		Permissions:  []string{models.PermManageContent},
		Active:       true,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	defer func() {
		if err := store.DeleteUser(ctx, user.ID); err != nil {
			t.Errorf("cleanup user %d: %v", user.ID, err)
		}
	}()

	if _, err := store.CreateUser(ctx, models.User{Name: "Dup", Email: email, PasswordHash: "x", Role: models.RoleUser}); err != storage.ErrAlreadyExists {
		t.Fatalf("duplicate email: want ErrAlreadyExists, got %v", err)
	}

	found, err := store.FindUserByEmail(ctx, email)
	if err != nil {
		t.Fatalf("find user by email: %v", err)
	}
	if found.ID != user.ID || len(found.Permissions) != 1 {
		t.Fatalf("find user mismatch: %+v", found)
	}

	contact, err := store.CreateContact(ctx, models.Contact{
		Name:      models.EncryptedPlaceholder,
		Email:     models.EncryptedPlaceholder,
		Message:   models.EncryptedPlaceholder,
		Service:   "residential",
		Status:    models.ContactStatusNew,
		Encrypted: []byte("blob"),
	})
	if err != nil {
		t.Fatalf("create contact: %v", err)
	}
	defer func() {
		if err := store.DeleteContact(ctx, contact.ID); err != nil {
			t.Errorf("cleanup contact %d: %v", contact.ID, err)
		}
	}()

	updated, err := store.UpdateContactStatus(ctx, contact.ID, models.ContactStatusReplied)
	if err != nil {
		t.Fatalf("update contact status: %v", err)
	}
	if updated.Status != models.ContactStatusReplied {
		t.Fatalf("contact status = %q", updated.Status)
	}

	page := fmt.Sprintf("itest-%d", stamp)
	if _, err := store.UpsertSEOPage(ctx, models.SEOPage{Page: page, Title: "first"}); err != nil {
		t.Fatalf("upsert seo page: %v", err)
	}
	second, err := store.UpsertSEOPage(ctx, models.SEOPage{Page: page, Title: "second"})
	if err != nil {
		t.Fatalf("re-upsert seo page: %v", err)
	}
	if second.Title != "second" {
		t.Fatalf("upsert did not replace title: %q", second.Title)
	}
	defer func() {
		if err := store.DeleteSEOPage(ctx, page); err != nil {
			t.Errorf("cleanup seo page %q: %v", page, err)
		}
	}()

	t.Logf("integration round trip complete (user=%d contact=%d)", user.ID, contact.ID)
}

func loadDotEnv() {
	paths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
		"../../../../.env",
	}
	for _, path := range paths {
		_ = godotenv.Overload(path)
	}
}
