// file: internals/features/users/user/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agencehub_backend/internals/constants"
	controller "agencehub_backend/internals/features/users/user/controller"
	authMiddleware "agencehub_backend/internals/middlewares/auth"
)

// UserAdminRoutes: manajemen user hanya untuk admin.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	users := r.Group("/users",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manajemen user"), constants.AdminOnly...),
	)
	users.Get("/", ctl.List)
	users.Get("/:id", ctl.GetByID)
	users.Patch("/:id", ctl.Patch)
	users.Delete("/:id", ctl.Delete)
}
