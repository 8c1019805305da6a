package models

import "time"

// User captures application-facing fields for an authenticated identity.
type User struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	Permissions  []string   `json:"permissions"`
	Active       bool       `json:"active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// HasPermission reports whether the user holds the named permission.
// Superadmins hold every permission implicitly.
func (u User) HasPermission(perm string) bool {
	if u.Role == RoleSuperadmin {
		return true
	}
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user may access the admin surface.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperadmin
}
