// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "agencehub_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================
	// /api/u  → semua user login
	// /api/a  → manager/admin (mutasi data bisnis)
	// user management & audit log dikunci admin-only di dalam mount-nya
	userGroup, adminGroup := routeDetails.BuildAPIGroups(app, db)

	log.Println("[INFO] Mounting CRM routes...")
	routeDetails.CRMUserRoutes(userGroup, db)
	routeDetails.CRMAdminRoutes(adminGroup, db)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinanceUserRoutes(userGroup, db)
	routeDetails.FinanceAdminRoutes(adminGroup, db)

	log.Println("[INFO] Mounting Workflow routes...")
	routeDetails.WorkflowUserRoutes(userGroup, db)

	log.Println("[INFO] Mounting User & Security routes...")
	routeDetails.UserAdminMountRoutes(adminGroup, db)
	routeDetails.SecurityAdminMountRoutes(adminGroup, db)
}
