// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	expenseRoute "agencehub_backend/internals/features/finance/expenses/route"
	invoiceRoute "agencehub_backend/internals/features/finance/invoices/route"
)

func FinanceUserRoutes(r fiber.Router, db *gorm.DB) {
	invoiceRoute.InvoiceUserRoutes(r, db)
	expenseRoute.ExpenseUserRoutes(r, db)
}

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	invoiceRoute.InvoiceAdminRoutes(r, db)
	expenseRoute.ExpenseAdminRoutes(r, db)
}
