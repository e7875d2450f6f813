// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "agencehub_backend/internals/features/users/user/route"
)

// UserAdminRoutes sudah mengunci dirinya admin-only di dalam.
func UserAdminMountRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(r, db)
}
