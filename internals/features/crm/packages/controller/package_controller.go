// file: internals/features/crm/packages/controller/package_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "agencehub_backend/internals/features/crm/packages/dto"
	model "agencehub_backend/internals/features/crm/packages/model"
	helpers "agencehub_backend/internals/helpers"
)

type PackageController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPackageController(db *gorm.DB) *PackageController {
	return &PackageController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *PackageController) Create(c *fiber.Ctx) error {
	var req dto.CreatePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	p := req.ToModel()
	if err := ctl.DB.Create(p).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromModelPackage(p))
}

// ========== List ==========
func (ctl *PackageController) List(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 25, 200)

	q := ctl.DB.Model(&model.ServicePackage{})
	if active := strings.TrimSpace(c.Query("active")); active == "true" {
		q = q.Where("package_is_active = TRUE")
	} else if active == "false" {
		q = q.Where("package_is_active = FALSE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var pkgs []model.ServicePackage
	if err := q.
		Order("package_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&pkgs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return helpers.JsonList(c, "packages", dto.FromModelPackages(pkgs),
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ========== Detail ==========
func (ctl *PackageController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "package_id invalid"})
	}

	var p model.ServicePackage
	if err := ctl.DB.First(&p, "package_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(dto.FromModelPackage(&p))
}

// ========== Patch ==========
func (ctl *PackageController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "package_id invalid"})
	}

	var p model.ServicePackage
	if err := ctl.DB.First(&p, "package_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var req dto.PatchPackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	req.ApplyTo(&p)

	if err := ctl.DB.Save(&p).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(dto.FromModelPackage(&p))
}

// ========== Delete (soft delete) ==========
func (ctl *PackageController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "package_id invalid"})
	}

	tx := ctl.DB.Model(&model.ServicePackage{}).
		Where("package_id = ? AND package_deleted_at IS NULL", id).
		Update("package_deleted_at", gorm.Expr("NOW()"))

	if tx.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": tx.Error.Error()})
	}
	if tx.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data tidak ditemukan"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
