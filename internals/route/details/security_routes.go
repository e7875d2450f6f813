// file: internals/route/details/security_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agencehub_backend/internals/constants"
	securityRoute "agencehub_backend/internals/features/security/audit/route"
	authMiddleware "agencehub_backend/internals/middlewares/auth"
)

// Audit log hanya untuk admin.
func SecurityAdminMountRoutes(r fiber.Router, db *gorm.DB) {
	adminOnly := r.Group("",
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("audit log"),
			constants.AdminOnly...,
		),
	)
	securityRoute.SecurityAdminRoutes(adminOnly, db)
}
