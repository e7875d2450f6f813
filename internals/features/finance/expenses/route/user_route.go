// file: internals/features/finance/expenses/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	expenseController "agencehub_backend/internals/features/finance/expenses/controller"
)

// ExpenseUserRoutes: baca untuk semua user login.
func ExpenseUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := expenseController.NewExpenseController(db, validator.New())

	r := api.Group("/expenses")
	r.Get("/", ctrl.List)
	r.Get("/:id", ctrl.GetByID)
}

// ExpenseAdminRoutes: mutasi hanya untuk manager/admin.
func ExpenseAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := expenseController.NewExpenseController(db, validator.New())

	r := api.Group("/expenses")
	r.Post("/", ctrl.Create)
	r.Patch("/:id", ctrl.Patch)
	r.Delete("/:id", ctrl.Delete)
}
