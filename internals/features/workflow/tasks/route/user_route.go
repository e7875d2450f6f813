// file: internals/features/workflow/tasks/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	taskController "agencehub_backend/internals/features/workflow/tasks/controller"
)

// TaskUserRoutes: semua anggota tim boleh mengelola board.
func TaskUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := taskController.NewTaskController(db, validator.New())

	r := api.Group("/tasks")
	r.Get("/", ctrl.List)
	r.Get("/board", ctrl.Board)
	r.Get("/:id", ctrl.GetByID)
	r.Post("/", ctrl.Create)
	r.Patch("/:id", ctrl.Patch)
	r.Patch("/:id/move", ctrl.Move)
	r.Delete("/:id", ctrl.Delete)
}
