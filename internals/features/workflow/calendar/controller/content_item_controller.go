// file: internals/features/workflow/calendar/controller/content_item_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helpers "agencehub_backend/internals/helpers"

	calDTO "agencehub_backend/internals/features/workflow/calendar/dto"
	calModel "agencehub_backend/internals/features/workflow/calendar/model"
)

type ContentItemController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewContentItemController(db *gorm.DB, v *validator.Validate) *ContentItemController {
	return &ContentItemController{DB: db, Validator: v}
}

// =============================
// POST /calendar
// =============================
func (ctrl *ContentItemController) Create(c *fiber.Ctx) error {
	var req calDTO.CreateContentItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] create content item: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat konten")
	}
	return helpers.JsonCreated(c, "Konten berhasil dibuat", calDTO.FromModelContentItem(m))
}

// =============================
// GET /calendar
// Query: month (YYYY-MM), client_id, platform, status, page, per_page
// =============================
func (ctrl *ContentItemController) List(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 50, 200)

	tx := ctrl.DB.Model(&calModel.ContentItem{})

	// filter jendela satu bulan pada jadwal tayang
	if raw := strings.TrimSpace(c.Query("month")); raw != "" {
		start, err := time.Parse("2006-01", raw)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Format month harus YYYY-MM")
		}
		end := start.AddDate(0, 1, 0)
		tx = tx.Where("content_scheduled_at >= ? AND content_scheduled_at < ?", start, end)
	}
	if raw := strings.TrimSpace(c.Query("client_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "client_id tidak valid")
		}
		tx = tx.Where("content_client_id = ?", id)
	}
	if p := strings.TrimSpace(c.Query("platform")); p != "" {
		if !calModel.ContentPlatform(p).Valid() {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Platform tidak dikenal")
		}
		tx = tx.Where("content_platform = ?", p)
	}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !calModel.ContentStatus(s).Valid() {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Status tidak dikenal")
		}
		tx = tx.Where("content_status = ?", s)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung konten")
	}

	var rows []calModel.ContentItem
	if err := tx.
		Order("content_scheduled_at ASC NULLS LAST, content_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konten")
	}

	return helpers.JsonList(c, "calendar", calDTO.FromModelContentItems(rows),
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// GET /calendar/:id
// =============================
func (ctrl *ContentItemController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m calModel.ContentItem
	if err := ctrl.DB.First(&m, "content_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Konten tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konten")
	}
	return helpers.JsonOK(c, "OK", calDTO.FromModelContentItem(&m))
}

// =============================
// PATCH /calendar/:id
// =============================
func (ctrl *ContentItemController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req calDTO.PatchContentItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var m calModel.ContentItem
	if err := ctrl.DB.First(&m, "content_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Konten tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konten")
	}

	req.ApplyTo(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		log.Printf("[ERROR] update content item %s: %v", id, err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan konten")
	}
	return helpers.JsonUpdated(c, "Konten berhasil diperbarui", calDTO.FromModelContentItem(&m))
}

// =============================
// DELETE /calendar/:id (soft delete)
// =============================
func (ctrl *ContentItemController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&calModel.ContentItem{}, "content_id = ?", id)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus konten")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Konten tidak ditemukan")
	}
	return helpers.JsonDeleted(c, "Konten berhasil dihapus", fiber.Map{"content_id": id})
}
