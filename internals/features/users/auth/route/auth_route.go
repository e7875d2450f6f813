// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "agencehub_backend/internals/features/users/auth/controller"
	"agencehub_backend/internals/middlewares"
	authMiddleware "agencehub_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/google", middlewares.LoginRateLimiter(), ctl.GoogleLogin)
	auth.Post("/refresh-token", ctl.RefreshToken)

	// butuh token valid
	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ctl.Logout)
	auth.Get("/me", authMiddleware.AuthMiddleware(db), ctl.Me)
}
