// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditModel "agencehub_backend/internals/features/security/audit/model"
	audit "agencehub_backend/internals/features/security/audit/service"
	dto "agencehub_backend/internals/features/users/user/dto"
	model "agencehub_backend/internals/features/users/user/model"
	helpers "agencehub_backend/internals/helpers"
	helperAuth "agencehub_backend/internals/helpers/auth"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== List ==========
// GET /users?search=&role=&page=&per_page=
func (ctl *UserController) List(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 25, 200)

	q := ctl.DB.Model(&model.User{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(user_email) LIKE ?", like, like)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("user_role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var users []model.User
	if err := q.
		Order("user_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helpers.JsonList(c, "users", dto.FromModelUsers(users),
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ========== Detail ==========
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "user_id invalid")
	}

	var u model.User
	if err := ctl.DB.First(&u, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helpers.JsonOK(c, "user", dto.FromModelUser(&u))
}

// ========== Patch ==========
func (ctl *UserController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "user_id invalid")
	}

	var u model.User
	if err := ctl.DB.First(&u, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.PatchUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	roleChanged := req.UserRole != nil && *req.UserRole != u.UserRole
	deactivated := req.UserIsActive != nil && !*req.UserIsActive && u.UserIsActive

	req.ApplyTo(&u)

	if err := ctl.DB.Save(&u).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if actorID, err := helperAuth.GetUserIDFromToken(c); err == nil {
		target := u.UserID
		if roleChanged {
			audit.Record(ctl.DB, &actorID, auditModel.ActionUserRoleChanged, "user", &target, c.IP(), u.UserRole)
		}
		if deactivated {
			audit.Record(ctl.DB, &actorID, auditModel.ActionUserDeactivated, "user", &target, c.IP(), "")
		}
	}

	return helpers.JsonUpdated(c, "user diperbarui", dto.FromModelUser(&u))
}

// ========== Delete (soft delete) ==========
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "user_id invalid")
	}

	// jangan hapus diri sendiri
	if actorID, errTok := helperAuth.GetUserIDFromToken(c); errTok == nil && actorID == id {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Tidak bisa menghapus akun sendiri")
	}

	tx := ctl.DB.Where("user_id = ?", id).Delete(&model.User{})
	if tx.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helpers.JsonDeleted(c, "user dihapus", fiber.Map{"user_id": id})
}
