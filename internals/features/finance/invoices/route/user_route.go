// file: internals/features/finance/invoices/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agencehub_backend/internals/constants"
	invoiceController "agencehub_backend/internals/features/finance/invoices/controller"
	authMiddleware "agencehub_backend/internals/middlewares/auth"
)

// InvoiceUserRoutes: baca + unduh PDF untuk semua user login.
func InvoiceUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := invoiceController.NewInvoiceController(db, validator.New())

	r := api.Group("/invoices")
	r.Get("/", ctrl.List)
	r.Get("/:id", ctrl.GetByID)
	r.Get("/:id/pdf", ctrl.ExportPDF)
}

// InvoiceAdminRoutes: mutasi dokumen untuk manager/admin; operasi
// recurring (generate + toggle) hanya untuk admin.
func InvoiceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := invoiceController.NewInvoiceController(db, validator.New())

	adminOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("operasi recurring"),
		constants.AdminOnly...,
	)

	r := api.Group("/invoices")
	r.Post("/", ctrl.Create)
	r.Post("/recurring/generate", adminOnly, ctrl.GenerateRecurring)
	r.Post("/:id/recurring/toggle", adminOnly, ctrl.ToggleRecurring)
	r.Patch("/:id", ctrl.Patch)
	r.Delete("/:id", ctrl.Delete)
}
