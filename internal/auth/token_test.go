package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminainteriors/lumina-be/internal/models"
)

func newTestManager(ttl time.Duration) *TokenManager {
	return NewTokenManager("test-secret-which-is-long-enough", "lumina-test", ttl)
}

func TestGenerateAndParseRoundTrip(t *testing.T) {
	manager := newTestManager(time.Hour)
	user := models.User{
		ID:          42,
		Email:       "studio@example.com",
		Role:        models.RoleAdmin,
		Permissions: []string{models.PermManageUsers, models.PermExportData},
	}

	token, err := manager.Generate(user)
	require.NoError(t, err)

	claims, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "studio@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.True(t, claims.HasPermission(models.PermManageUsers))
	assert.False(t, claims.HasPermission(models.PermManageMedia))
}

func TestParseRejectsExpiredToken(t *testing.T) {
	manager := newTestManager(-time.Minute)
	token, err := manager.Generate(models.User{ID: 1, Role: models.RoleUser})
	require.NoError(t, err)

	_, err = manager.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	token, err := newTestManager(time.Hour).Generate(models.User{ID: 1})
	require.NoError(t, err)

	other := NewTokenManager("a-completely-different-secret-key", "lumina-test", time.Hour)
	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSuperadminHasEveryPermission(t *testing.T) {
	claims := Claims{Role: models.RoleSuperadmin}
	assert.True(t, claims.HasPermission(models.PermManageUsers))
	assert.True(t, claims.HasPermission("anything-at-all"))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("orchid-velvet-9")
	require.NoError(t, err)
	assert.True(t, CheckPassword("orchid-velvet-9", hash))
	assert.False(t, CheckPassword("orchid-velvet-8", hash))
}
