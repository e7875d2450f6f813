// file: internals/features/crm/packages/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "agencehub_backend/internals/features/crm/packages/controller"
)

func PackageUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewPackageController(db)

	packages := r.Group("/packages")
	packages.Get("/", ctl.List)
	packages.Get("/:id", ctl.GetByID)
}

func PackageAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewPackageController(db)

	packages := r.Group("/packages")
	packages.Post("/", ctl.Create)
	packages.Patch("/:id", ctl.Patch)
	packages.Delete("/:id", ctl.Delete)
}
