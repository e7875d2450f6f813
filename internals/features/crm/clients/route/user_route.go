// file: internals/features/crm/clients/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "agencehub_backend/internals/features/crm/clients/controller"
)

// ClientUserRoutes: baca untuk semua user login.
func ClientUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewClientController(db)

	clients := r.Group("/clients")
	clients.Get("/", ctl.List)
	clients.Get("/:id", ctl.GetByID)
}

// ClientAdminRoutes: mutasi hanya untuk manager/admin.
func ClientAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewClientController(db)

	clients := r.Group("/clients")
	clients.Post("/", ctl.Create)
	clients.Patch("/:id", ctl.Patch)
	clients.Delete("/:id", ctl.Delete)
}
