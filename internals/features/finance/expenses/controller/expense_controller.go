// file: internals/features/finance/expenses/controller/expense_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	helpers "agencehub_backend/internals/helpers"

	expenseDTO "agencehub_backend/internals/features/finance/expenses/dto"
	expenseModel "agencehub_backend/internals/features/finance/expenses/model"
)

type ExpenseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewExpenseController(db *gorm.DB, v *validator.Validate) *ExpenseController {
	return &ExpenseController{DB: db, Validator: v}
}

// =============================
// POST /expenses
// =============================
func (ctrl *ExpenseController) Create(c *fiber.Ctx) error {
	var req expenseDTO.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Nominal atau tanggal tidak valid")
	}
	if m.ExpenseAmountHT.IsNegative() {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Nominal HT tidak boleh negatif")
	}

	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] create expense: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat pengeluaran")
	}
	return helpers.JsonCreated(c, "Pengeluaran berhasil dicatat", expenseDTO.FromModelExpense(m))
}

// =============================
// GET /expenses
// Query: month (YYYY-MM), category, mandate_id, page, per_page
// Meta tambahan: total HT/TTC dari hasil filter.
// =============================
func (ctrl *ExpenseController) List(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 25, 100)

	tx := ctrl.DB.Model(&expenseModel.Expense{})

	if raw := strings.TrimSpace(c.Query("month")); raw != "" {
		start, err := time.Parse("2006-01", raw)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Format month harus YYYY-MM")
		}
		end := start.AddDate(0, 1, 0)
		tx = tx.Where("expense_date >= ? AND expense_date < ?", start, end)
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		if !expenseModel.ExpenseCategory(cat).Valid() {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Kategori tidak dikenal")
		}
		tx = tx.Where("expense_category = ?", cat)
	}
	if raw := strings.TrimSpace(c.Query("mandate_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "mandate_id tidak valid")
		}
		tx = tx.Where("expense_mandate_id = ?", id)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengeluaran")
	}

	// agregat untuk ringkasan keuangan
	var sums struct {
		SumHT  decimal.Decimal
		SumTTC decimal.Decimal
	}
	if err := tx.Session(&gorm.Session{}).
		Select("COALESCE(SUM(expense_amount_ht),0) AS sum_ht, COALESCE(SUM(expense_amount_ttc),0) AS sum_ttc").
		Scan(&sums).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total")
	}

	var rows []expenseModel.Expense
	if err := tx.
		Order("expense_date DESC, expense_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengeluaran")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "OK",
		"data":    expenseDTO.FromModelExpenses(rows),
		"meta": fiber.Map{
			"pagination": helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
			"total_ht":   sums.SumHT.StringFixed(2),
			"total_ttc":  sums.SumTTC.StringFixed(2),
		},
	})
}

// =============================
// GET /expenses/:id
// =============================
func (ctrl *ExpenseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m expenseModel.Expense
	if err := ctrl.DB.First(&m, "expense_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Pengeluaran tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengeluaran")
	}
	return helpers.JsonOK(c, "OK", expenseDTO.FromModelExpense(&m))
}

// =============================
// PATCH /expenses/:id
// =============================
func (ctrl *ExpenseController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req expenseDTO.PatchExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var m expenseModel.Expense
	if err := ctrl.DB.First(&m, "expense_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Pengeluaran tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengeluaran")
	}

	if err := req.ApplyTo(&m); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Nominal atau tanggal tidak valid")
	}
	if m.ExpenseAmountHT.IsNegative() {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Nominal HT tidak boleh negatif")
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		log.Printf("[ERROR] update expense %s: %v", id, err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengeluaran")
	}
	return helpers.JsonUpdated(c, "Pengeluaran berhasil diperbarui", expenseDTO.FromModelExpense(&m))
}

// =============================
// DELETE /expenses/:id (soft delete)
// =============================
func (ctrl *ExpenseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&expenseModel.Expense{}, "expense_id = ?", id)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengeluaran")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Pengeluaran tidak ditemukan")
	}
	return helpers.JsonDeleted(c, "Pengeluaran berhasil dihapus", fiber.Map{"expense_id": id})
}
