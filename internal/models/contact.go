package models

import "time"

// Contact lifecycle statuses.
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

// EncryptedPlaceholder replaces plaintext PII columns once a contact is sealed.
const EncryptedPlaceholder = "[encrypted]"

// Contact is a contact-form submission. After the first save the Name, Email,
// Phone, and Message columns hold EncryptedPlaceholder and the originals live
// only in the Encrypted blob.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Service   string    `json:"service,omitempty"`
	Budget    string    `json:"budget,omitempty"`
	IsSpam    bool      `json:"is_spam"`
	SpamScore int       `json:"spam_score"`
	Status    string    `json:"status"`
	Encrypted []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactDetails are the sensitive submitter-provided fields sealed at rest.
type ContactDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// ValidContactStatus reports whether the status is one of the lifecycle states.
func ValidContactStatus(status string) bool {
	switch status {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	}
	return false
}
