package models

// Roles, lowest to highest privilege.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// Fine-grained permissions checked on top of the coarse role gate.
const (
	PermManageUsers   = "manage_users"
	PermManageContent = "manage_content"
	PermManageMedia   = "manage_media"
	PermExportData    = "export_data"
)

// ValidRole reports whether the role name is one the API accepts.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}
