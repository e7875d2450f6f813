// file: internals/features/crm/clients/controller/client_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "agencehub_backend/internals/features/crm/clients/dto"
	model "agencehub_backend/internals/features/crm/clients/model"
	helpers "agencehub_backend/internals/helpers"
)

type ClientController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{
		DB:        db,
		Validator: validator.New(),
	}
}

// kolom yang boleh dipakai sort di list
var clientSortColumns = map[string]string{
	"name":       "client_name",
	"created_at": "client_created_at",
}

// ========== Create ==========
func (ctl *ClientController) Create(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cl := req.ToModel()
	if err := ctl.DB.Create(cl).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromModelClient(cl))
}

// ========== List ==========
// GET /clients?search=&active=&sort_by=&order=&page=&per_page=
func (ctl *ClientController) List(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 25, 200)

	q := ctl.DB.Model(&model.Client{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(client_name) LIKE ? OR LOWER(COALESCE(client_company,'')) LIKE ?", like, like)
	}
	if active := strings.TrimSpace(c.Query("active")); active == "true" {
		q = q.Where("client_is_active = TRUE")
	} else if active == "false" {
		q = q.Where("client_is_active = FALSE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	orderCol, ok := clientSortColumns[strings.TrimSpace(c.Query("sort_by"))]
	if !ok {
		orderCol = "client_created_at"
	}
	dir := "DESC"
	if strings.EqualFold(c.Query("order"), "asc") {
		dir = "ASC"
	}

	var clients []model.Client
	if err := q.
		Order(orderCol + " " + dir).
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&clients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return helpers.JsonList(c, "clients", dto.FromModelClients(clients),
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ========== Detail ==========
func (ctl *ClientController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "client_id invalid"})
	}

	var cl model.Client
	if err := ctl.DB.First(&cl, "client_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(dto.FromModelClient(&cl))
}

// ========== Patch ==========
func (ctl *ClientController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "client_id invalid"})
	}

	var cl model.Client
	if err := ctl.DB.First(&cl, "client_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var req dto.PatchClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	req.ApplyTo(&cl)

	if err := ctl.DB.Save(&cl).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(dto.FromModelClient(&cl))
}

// ========== Delete (soft delete) ==========
func (ctl *ClientController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "client_id invalid"})
	}

	tx := ctl.DB.Model(&model.Client{}).
		Where("client_id = ? AND client_deleted_at IS NULL", id).
		Update("client_deleted_at", gorm.Expr("NOW()"))

	if tx.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": tx.Error.Error()})
	}
	if tx.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data tidak ditemukan"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
