// file: internals/features/security/audit/controller/security_event_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "agencehub_backend/internals/features/security/audit/model"
	helpers "agencehub_backend/internals/helpers"
)

type SecurityEventController struct {
	DB *gorm.DB
}

func NewSecurityEventController(db *gorm.DB) *SecurityEventController {
	return &SecurityEventController{DB: db}
}

// ========== List (admin only, append-only jadi cuma GET) ==========
// GET /security-events?action=&actor_id=&page=&per_page=
func (ctl *SecurityEventController) List(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 50, 500)

	q := ctl.DB.Model(&model.SecurityEvent{})

	if action := strings.TrimSpace(c.Query("action")); action != "" {
		q = q.Where("security_event_action = ?", action)
	}
	if actorStr := strings.TrimSpace(c.Query("actor_id")); actorStr != "" {
		actorID, err := uuid.Parse(actorStr)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "actor_id invalid")
		}
		q = q.Where("security_event_actor_id = ?", actorID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var events []model.SecurityEvent
	if err := q.
		Order("security_event_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&events).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helpers.JsonList(c, "security events", events,
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
