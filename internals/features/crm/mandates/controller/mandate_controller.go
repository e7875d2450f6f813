// file: internals/features/crm/mandates/controller/mandate_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	clientModel "agencehub_backend/internals/features/crm/clients/model"
	dto "agencehub_backend/internals/features/crm/mandates/dto"
	model "agencehub_backend/internals/features/crm/mandates/model"
	helpers "agencehub_backend/internals/helpers"
)

type MandateController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMandateController(db *gorm.DB) *MandateController {
	return &MandateController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *MandateController) Create(c *fiber.Ctx) error {
	var req dto.CreateMandateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Client harus ada & alive
	var count int64
	if err := ctl.DB.Model(&clientModel.Client{}).
		Where("client_id = ?", req.MandateClientID).
		Count(&count).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if count == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Client tidak ditemukan"})
	}

	m, err := req.ToModel()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ctl.DB.Create(m).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromModelMandate(m))
}

// ========== List ==========
// GET /mandates?client_id=&status=&page=&per_page=
func (ctl *MandateController) List(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 25, 200)

	q := ctl.DB.Model(&model.Mandate{})

	if clientStr := strings.TrimSpace(c.Query("client_id")); clientStr != "" {
		clientID, err := uuid.Parse(clientStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "client_id invalid"})
		}
		q = q.Where("mandate_client_id = ?", clientID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.MandateStatus(status).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status invalid"})
		}
		q = q.Where("mandate_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var mandates []model.Mandate
	if err := q.
		Order("mandate_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&mandates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return helpers.JsonList(c, "mandates", dto.FromModelMandates(mandates),
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ========== Detail ==========
func (ctl *MandateController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "mandate_id invalid"})
	}

	var m model.Mandate
	if err := ctl.DB.First(&m, "mandate_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(dto.FromModelMandate(&m))
}

// ========== Patch ==========
func (ctl *MandateController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "mandate_id invalid"})
	}

	var m model.Mandate
	if err := ctl.DB.First(&m, "mandate_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var req dto.PatchMandateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := req.ApplyTo(&m); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(dto.FromModelMandate(&m))
}

// ========== Delete (soft delete) ==========
func (ctl *MandateController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "mandate_id invalid"})
	}

	tx := ctl.DB.Model(&model.Mandate{}).
		Where("mandate_id = ? AND mandate_deleted_at IS NULL", id).
		Update("mandate_deleted_at", gorm.Expr("NOW()"))

	if tx.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": tx.Error.Error()})
	}
	if tx.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data tidak ditemukan"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
