// Package intake runs the contact submission pipeline: spam scoring,
// PII sealing, persistence, and best-effort fan-out to the side channels.
package intake

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/models/dto"
	"github.com/luminainteriors/lumina-be/internal/secrets"
	"github.com/luminainteriors/lumina-be/internal/spam"
	"github.com/luminainteriors/lumina-be/internal/storage"
)

// SheetAppender logs non-spam submissions to an external spreadsheet.
type SheetAppender interface {
	AppendContact(ctx context.Context, details models.ContactDetails, service, budget string, submittedAt time.Time) error
}

// MailSender notifies the studio inbox.
type MailSender interface {
	SendContactNotice(ctx context.Context, details models.ContactDetails, service, budget string, isSpam bool) error
}

// Service orchestrates the pipeline. Sheets and Mailer may be nil when the
// corresponding channel is not configured.
type Service struct {
	store  storage.Store
	sealer *secrets.Sealer
	sheets SheetAppender
	mailer MailSender
	logger *slog.Logger
}

// New wires the pipeline.
func New(store storage.Store, sealer *secrets.Sealer, sheets SheetAppender, mailer MailSender, logger *slog.Logger) *Service {
	return &Service{store: store, sealer: sealer, sheets: sheets, mailer: mailer, logger: logger}
}

// Submit scores, seals, and persists a submission, then kicks off the
// detached fan-out. It returns once the primary record is durably saved;
// side-channel outcomes never influence the result.
func (s *Service) Submit(ctx context.Context, req dto.ContactRequest) (models.Contact, error) {
	details := models.ContactDetails{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	result := spam.Score(req.Message, req.Email)

	blob, err := s.sealer.Seal(details)
	if err != nil {
		return models.Contact{}, fmt.Errorf("seal contact details: %w", err)
	}

	contact := models.Contact{
		Name:      models.EncryptedPlaceholder,
		Email:     models.EncryptedPlaceholder,
		Phone:     models.EncryptedPlaceholder,
		Message:   models.EncryptedPlaceholder,
		Service:   req.Service,
		Budget:    req.Budget,
		IsSpam:    result.IsSpam,
		SpamScore: result.Score,
		Status:    models.ContactStatusNew,
		Encrypted: blob,
	}

	saved, err := s.store.CreateContact(ctx, contact)
	if err != nil {
		return models.Contact{}, fmt.Errorf("persist contact: %w", err)
	}

	// Detached from the request: no cancellation, no retry, failures logged.
	go s.fanOut(context.Background(), saved, details)

	return saved, nil
}

// fanOut dispatches the three independent side effects. Each failure is
// logged and absorbed; none affects the others.
func (s *Service) fanOut(ctx context.Context, contact models.Contact, details models.ContactDetails) {
	if s.sheets != nil && !contact.IsSpam {
		if err := s.sheets.AppendContact(ctx, details, contact.Service, contact.Budget, contact.CreatedAt); err != nil {
			s.logger.Error("contact fan-out: spreadsheet append failed",
				"contact_id", contact.ID, "error", err)
		}
	}

	if s.mailer != nil {
		if err := s.mailer.SendContactNotice(ctx, details, contact.Service, contact.Budget, contact.IsSpam); err != nil {
			s.logger.Error("contact fan-out: email notification failed",
				"contact_id", contact.ID, "error", err)
		}
	}

	s.notifyAdmins(ctx, contact, details)
}

// notifyAdmins inserts an in-app notification for every admin account.
func (s *Service) notifyAdmins(ctx context.Context, contact models.Contact, details models.ContactDetails) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		s.logger.Error("contact fan-out: listing admins failed",
			"contact_id", contact.ID, "error", err)
		return
	}

	priority := models.NotificationPriorityNormal
	title := "New contact request"
	if contact.IsSpam {
		priority = models.NotificationPriorityLow
		title = "New contact request (flagged as spam)"
	}

	for _, user := range users {
		if !user.IsAdmin() {
			continue
		}
		_, err := s.store.CreateNotification(ctx, models.Notification{
			UserID:     user.ID,
			Type:       "contact",
			Category:   "intake",
			Priority:   priority,
			Title:      title,
			Message:    fmt.Sprintf("%s asked about %s", details.Name, orUnspecified(contact.Service)),
			EntityID:   contact.ID,
			EntityType: "contact",
		})
		if err != nil {
			s.logger.Error("contact fan-out: admin notification failed",
				"contact_id", contact.ID, "user_id", user.ID, "error", err)
		}
	}
}

func orUnspecified(s string) string {
	if s == "" {
		return "a project"
	}
	return s
}

// Decrypt opens a contact's sealed blob. Failures surface as an absent
// result, never an error.
func (s *Service) Decrypt(contact models.Contact) (models.ContactDetails, bool) {
	return s.sealer.Open(contact.Encrypted)
}
