// file: internals/route/details/workflow_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calendarRoute "agencehub_backend/internals/features/workflow/calendar/route"
	taskRoute "agencehub_backend/internals/features/workflow/tasks/route"
)

// Board & kalender terbuka untuk semua anggota tim login.
func WorkflowUserRoutes(r fiber.Router, db *gorm.DB) {
	taskRoute.TaskUserRoutes(r, db)
	calendarRoute.CalendarUserRoutes(r, db)
}
