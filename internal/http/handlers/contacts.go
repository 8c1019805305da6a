package handlers

import (
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/luminainteriors/lumina-be/internal/http/respond"
	"github.com/luminainteriors/lumina-be/internal/intake"
	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/models/dto"
	"github.com/luminainteriors/lumina-be/internal/storage"
)

// ContactsHandler owns the public submission endpoint and the admin surface.
type ContactsHandler struct {
	store  storage.ContactStore
	intake *intake.Service
	logger *slog.Logger
}

// NewContactsHandler constructs the handler.
func NewContactsHandler(store storage.ContactStore, intakeSvc *intake.Service, logger *slog.Logger) *ContactsHandler {
	return &ContactsHandler{store: store, intake: intakeSvc, logger: logger}
}

// Submit accepts a public contact-form submission. It responds as soon as
// the record is saved; the side channels run detached.
func (h *ContactsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		respond.Error(w, http.StatusBadRequest, "name, email, and message are required")
		return
	}

	saved, err := h.intake.Submit(r.Context(), req)
	if err != nil {
		h.logger.Error("contact submission failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to save submission")
		return
	}
	respond.JSON(w, http.StatusCreated, "thank you, we will be in touch", map[string]int64{"id": saved.ID})
}

// List returns contacts with plaintext restored for the admin view.
// Filters: ?status=new|read|replied|archived and ?spam=true|false.
func (h *ContactsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := storage.ContactFilter{Status: r.URL.Query().Get("status")}
	if raw := r.URL.Query().Get("spam"); raw != "" {
		isSpam, err := strconv.ParseBool(raw)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid spam filter")
			return
		}
		filter.Spam = &isSpam
	}

	contacts, err := h.store.ListContacts(r.Context(), filter)
	if err != nil {
		storeError(w, h.logger, err, "contact")
		return
	}
	for i := range contacts {
		h.reveal(&contacts[i])
	}
	respond.JSON(w, http.StatusOK, "contacts", contacts)
}

// Get returns one contact, decrypted.
func (h *ContactsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid contact id")
		return
	}
	contact, err := h.store.FindContactByID(r.Context(), id)
	if err != nil {
		storeError(w, h.logger, err, "contact")
		return
	}
	h.reveal(&contact)
	respond.JSON(w, http.StatusOK, "contact", contact)
}

// UpdateStatus moves a contact through its lifecycle.
func (h *ContactsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid contact id")
		return
	}
	var req dto.ContactStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if !models.ValidContactStatus(req.Status) {
		respond.Error(w, http.StatusBadRequest, "invalid status")
		return
	}

	contact, err := h.store.UpdateContactStatus(r.Context(), id, req.Status)
	if err != nil {
		storeError(w, h.logger, err, "contact")
		return
	}
	h.reveal(&contact)
	respond.JSON(w, http.StatusOK, "status updated", contact)
}

// Delete removes a contact.
func (h *ContactsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid contact id")
		return
	}
	if err := h.store.DeleteContact(r.Context(), id); err != nil {
		storeError(w, h.logger, err, "contact")
		return
	}
	respond.JSON(w, http.StatusOK, "contact deleted", nil)
}

// Export streams a CSV of the decrypted contact projection.
func (h *ContactsHandler) Export(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.store.ListContacts(r.Context(), storage.ContactFilter{})
	if err != nil {
		storeError(w, h.logger, err, "contact")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="contacts.csv"`)
	writer := csv.NewWriter(w)
	defer writer.Flush()

	_ = writer.Write([]string{"id", "created_at", "name", "email", "phone", "service", "budget", "status", "spam", "message"})
	for i := range contacts {
		h.reveal(&contacts[i])
		c := contacts[i]
		_ = writer.Write([]string{
			strconv.FormatInt(c.ID, 10),
			c.CreatedAt.Format(time.RFC3339),
			c.Name,
			c.Email,
			c.Phone,
			c.Service,
			c.Budget,
			c.Status,
			strconv.FormatBool(c.IsSpam),
			c.Message,
		})
	}
}

// reveal swaps placeholders for decrypted values. A failed decryption leaves
// the placeholders in place.
func (h *ContactsHandler) reveal(contact *models.Contact) {
	details, ok := h.intake.Decrypt(*contact)
	if !ok {
		return
	}
	contact.Name = details.Name
	contact.Email = details.Email
	contact.Phone = details.Phone
	contact.Message = details.Message
}
