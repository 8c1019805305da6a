// Package secrets seals contact PII at rest with AES-256-GCM. Each record
// gets its own random nonce, stored as the blob prefix.
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"

	"github.com/luminainteriors/lumina-be/internal/models"
)

// Sealer encrypts and decrypts contact details with a fixed server key.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer builds a sealer from a 32-byte key.
func NewSealer(key string) (*Sealer, error) {
	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

// Seal encrypts the sensitive contact fields into one opaque blob:
// nonce || ciphertext.
func (s *Sealer) Seal(details models.ContactDetails) ([]byte, error) {
	plaintext, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("encode details: %w", err)
	}
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return s.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a sealed blob. The boolean is false for any malformed or
// tamper-failed blob; callers surface that as an absent result, never an
// error.
func (s *Sealer) Open(blob []byte) (models.ContactDetails, bool) {
	nonceSize := s.aead.NonceSize()
	if len(blob) < nonceSize {
		return models.ContactDetails{}, false
	}
	plaintext, err := s.aead.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
	if err != nil {
		return models.ContactDetails{}, false
	}
	var details models.ContactDetails
	if err := json.Unmarshal(plaintext, &details); err != nil {
		return models.ContactDetails{}, false
	}
	return details, true
}
