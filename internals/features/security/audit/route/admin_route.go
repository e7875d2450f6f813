// file: internals/features/security/audit/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "agencehub_backend/internals/features/security/audit/controller"
)

func SecurityAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSecurityEventController(db)

	events := r.Group("/security-events")
	events.Get("/", ctl.List)
}
