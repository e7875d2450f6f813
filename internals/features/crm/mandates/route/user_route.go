// file: internals/features/crm/mandates/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "agencehub_backend/internals/features/crm/mandates/controller"
)

func MandateUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewMandateController(db)

	mandates := r.Group("/mandates")
	mandates.Get("/", ctl.List)
	mandates.Get("/:id", ctl.GetByID)
}

func MandateAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewMandateController(db)

	mandates := r.Group("/mandates")
	mandates.Post("/", ctl.Create)
	mandates.Patch("/:id", ctl.Patch)
	mandates.Delete("/:id", ctl.Delete)
}
