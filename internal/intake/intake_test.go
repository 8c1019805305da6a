package intake

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/models/dto"
	"github.com/luminainteriors/lumina-be/internal/secrets"
	"github.com/luminainteriors/lumina-be/internal/storage/storagetest"
)

type fakeSheets struct {
	appended []models.ContactDetails
	err      error
}

func (f *fakeSheets) AppendContact(_ context.Context, details models.ContactDetails, _, _ string, _ time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, details)
	return nil
}

type fakeMailer struct {
	sent []models.ContactDetails
	err  error
}

func (f *fakeMailer) SendContactNotice(_ context.Context, details models.ContactDetails, _, _ string, _ bool) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, details)
	return nil
}

func newTestService(t *testing.T, store *storagetest.Fake, sheets SheetAppender, mailer MailSender) *Service {
	t.Helper()
	sealer, err := secrets.NewSealer("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	return New(store, sealer, sheets, mailer, slog.New(slog.DiscardHandler))
}

func TestSubmitPersistsSealedRecord(t *testing.T) {
	store := storagetest.New()
	svc := newTestService(t, store, nil, nil)

	saved, err := svc.Submit(context.Background(), dto.ContactRequest{
		Name:    "Elena Ortiz",
		Email:   "elena@example.com",
		Phone:   "+34 600 000 000",
		Message: "Looking for a full apartment redesign.",
		Service: "residential",
		Budget:  "25-50k",
	})
	require.NoError(t, err)

	assert.Equal(t, models.EncryptedPlaceholder, saved.Name)
	assert.Equal(t, models.EncryptedPlaceholder, saved.Email)
	assert.Equal(t, models.EncryptedPlaceholder, saved.Phone)
	assert.Equal(t, models.EncryptedPlaceholder, saved.Message)
	assert.Equal(t, "residential", saved.Service)
	assert.Equal(t, models.ContactStatusNew, saved.Status)
	assert.False(t, saved.IsSpam)
	assert.NotEmpty(t, saved.Encrypted)

	details, ok := svc.Decrypt(saved)
	require.True(t, ok)
	assert.Equal(t, "Elena Ortiz", details.Name)
	assert.Equal(t, "elena@example.com", details.Email)
	assert.Equal(t, "Looking for a full apartment redesign.", details.Message)
}

func TestSubmitFlagsSpam(t *testing.T) {
	store := storagetest.New()
	svc := newTestService(t, store, nil, nil)

	saved, err := svc.Submit(context.Background(), dto.ContactRequest{
		Name:    "Spammer",
		Email:   "winner@tempmail.net",
		Message: "hi",
	})
	require.NoError(t, err)
	assert.True(t, saved.IsSpam)
	assert.GreaterOrEqual(t, saved.SpamScore, 5)
}

func TestFanOutSkipsSheetsForSpam(t *testing.T) {
	store := storagetest.New()
	sheets := &fakeSheets{}
	mailer := &fakeMailer{}
	svc := newTestService(t, store, sheets, mailer)

	details := models.ContactDetails{Name: "S", Email: "s@tempmail.net", Message: "hi"}
	svc.fanOut(context.Background(), models.Contact{ID: 1, IsSpam: true}, details)

	assert.Empty(t, sheets.appended)
	assert.Len(t, mailer.sent, 1)
}

func TestFanOutDeliversAllChannels(t *testing.T) {
	store := storagetest.New()
	_, err := store.CreateUser(context.Background(), models.User{
		Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin, Active: true,
	})
	require.NoError(t, err)
	_, err = store.CreateUser(context.Background(), models.User{
		Name: "Visitor", Email: "visitor@example.com", Role: models.RoleUser, Active: true,
	})
	require.NoError(t, err)

	sheets := &fakeSheets{}
	mailer := &fakeMailer{}
	svc := newTestService(t, store, sheets, mailer)

	details := models.ContactDetails{Name: "Jo", Email: "jo@example.com", Message: "A real inquiry about our loft."}
	svc.fanOut(context.Background(), models.Contact{ID: 9, Service: "residential"}, details)

	assert.Len(t, sheets.appended, 1)
	assert.Len(t, mailer.sent, 1)

	admins, err := store.ListUsers(context.Background())
	require.NoError(t, err)
	var adminID int64
	for _, u := range admins {
		if u.Role == models.RoleAdmin {
			adminID = u.ID
		}
	}
	notifications, err := store.ListNotifications(context.Background(), adminID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "contact", notifications[0].Type)
	assert.Equal(t, int64(9), notifications[0].EntityID)

	// Non-admin recipients get nothing.
	for _, u := range admins {
		if u.Role == models.RoleUser {
			none, err := store.ListNotifications(context.Background(), u.ID)
			require.NoError(t, err)
			assert.Empty(t, none)
		}
	}
}

func TestFanOutFailuresAreIndependent(t *testing.T) {
	store := storagetest.New()
	_, err := store.CreateUser(context.Background(), models.User{
		Name: "Admin", Email: "admin@example.com", Role: models.RoleSuperadmin, Active: true,
	})
	require.NoError(t, err)

	sheets := &fakeSheets{err: errors.New("sheets quota exceeded")}
	mailer := &fakeMailer{}
	svc := newTestService(t, store, sheets, mailer)

	details := models.ContactDetails{Name: "K", Email: "k@example.com", Message: "A genuine message here."}
	svc.fanOut(context.Background(), models.Contact{ID: 3}, details)

	// The sheets failure must not block mail or the admin notification.
	assert.Len(t, mailer.sent, 1)
	admins, err := store.ListUsers(context.Background())
	require.NoError(t, err)
	notifications, err := store.ListNotifications(context.Background(), admins[0].ID)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}
