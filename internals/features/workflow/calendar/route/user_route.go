// file: internals/features/workflow/calendar/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calController "agencehub_backend/internals/features/workflow/calendar/controller"
)

// CalendarUserRoutes: kalender editorial untuk semua anggota tim.
func CalendarUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := calController.NewContentItemController(db, validator.New())

	r := api.Group("/calendar")
	r.Get("/", ctrl.List)
	r.Get("/:id", ctrl.GetByID)
	r.Post("/", ctrl.Create)
	r.Patch("/:id", ctrl.Patch)
	r.Delete("/:id", ctrl.Delete)
}
