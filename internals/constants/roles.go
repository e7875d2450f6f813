package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleMember  = "member"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyManagersCanAccess = "❌ Hanya manager atau admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleMember,
		RoleManager,
		RoleAdmin,
	}

	ManagerAndAbove = []string{
		RoleManager,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
