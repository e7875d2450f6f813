// file: internals/route/details/crm_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clientRoute "agencehub_backend/internals/features/crm/clients/route"
	mandateRoute "agencehub_backend/internals/features/crm/mandates/route"
	packageRoute "agencehub_backend/internals/features/crm/packages/route"
)

func CRMUserRoutes(r fiber.Router, db *gorm.DB) {
	clientRoute.ClientUserRoutes(r, db)
	mandateRoute.MandateUserRoutes(r, db)
	packageRoute.PackageUserRoutes(r, db)
}

func CRMAdminRoutes(r fiber.Router, db *gorm.DB) {
	clientRoute.ClientAdminRoutes(r, db)
	mandateRoute.MandateAdminRoutes(r, db)
	packageRoute.PackageAdminRoutes(r, db)
}
