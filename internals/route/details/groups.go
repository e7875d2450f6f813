// file: internals/route/details/groups.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agencehub_backend/internals/constants"
	authMiddleware "agencehub_backend/internals/middlewares/auth"
)

// BuildAPIGroups menyiapkan dua prefix utama:
//   /api/u → butuh JWT valid (member ke atas)
//   /api/a → JWT valid + role manager/admin
func BuildAPIGroups(app *fiber.App, db *gorm.DB) (userGroup fiber.Router, adminGroup fiber.Router) {
	api := app.Group("/api")

	userGroup = api.Group("/u", authMiddleware.AuthMiddleware(db))

	adminGroup = api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorManager("manajemen data"),
			constants.ManagerAndAbove...,
		),
	)
	return userGroup, adminGroup
}
