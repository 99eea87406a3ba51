package enums

import "strings"

type Role string

const (
	RoleSuperAdmin Role = "SUPERADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleOwner      Role = "OWNER"
	RoleManager    Role = "MANAGER"
	RoleStaff      Role = "STAFF"
	RoleNone       Role = "NONE"
)

func ParseRole(raw string) Role {
	switch role := Role(strings.ToUpper(strings.TrimSpace(raw))); role {
	case RoleSuperAdmin, RoleAdmin, RoleOwner, RoleManager, RoleStaff:
		return role
	default:
		return RoleNone
	}
}

// StoreRoles are the roles a system user may hold inside a store.
var StoreRoles = []Role{RoleAdmin, RoleOwner, RoleManager, RoleStaff}
