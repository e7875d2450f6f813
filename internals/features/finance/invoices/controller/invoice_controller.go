// file: internals/features/finance/invoices/controller/invoice_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	helpers "agencehub_backend/internals/helpers"
	helperAuth "agencehub_backend/internals/helpers/auth"

	clientModel "agencehub_backend/internals/features/crm/clients/model"
	auditModel "agencehub_backend/internals/features/security/audit/model"
	auditService "agencehub_backend/internals/features/security/audit/service"
	invoiceDTO "agencehub_backend/internals/features/finance/invoices/dto"
	invoiceModel "agencehub_backend/internals/features/finance/invoices/model"
	invoiceService "agencehub_backend/internals/features/finance/invoices/service"
)

type InvoiceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Recurring *invoiceService.RecurringService
}

func NewInvoiceController(db *gorm.DB, v *validator.Validate) *InvoiceController {
	return &InvoiceController{
		DB:        db,
		Validator: v,
		Recurring: invoiceService.NewRecurringService(db),
	}
}

// =============================
// POST /invoices
// =============================
func (ctrl *InvoiceController) Create(c *fiber.Ctx) error {
	var req invoiceDTO.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	// klien harus ada; sekalian diambil untuk snapshot
	var client clientModel.Client
	if err := ctrl.DB.First(&client, "client_id = ?", req.InvoiceClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Klien tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa klien")
	}

	m, err := req.ToModel()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Nominal atau tanggal tidak valid")
	}

	snapshot, err := sonicMarshalClient(&client)
	if err == nil {
		m.InvoiceClientSnapshot = snapshot
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		number, err := invoiceService.NextInvoiceNumber(tx, time.Now())
		if err != nil {
			return err
		}
		m.InvoiceNumber = number
		return tx.Create(m).Error
	})
	if err != nil {
		log.Printf("[ERROR] create invoice: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat invoice")
	}

	return helpers.JsonCreated(c, "Invoice berhasil dibuat", invoiceDTO.FromModelInvoice(m, time.Now()))
}

// =============================
// GET /invoices
// Query: status, client_id, recurring_only, template_id, page, per_page
// =============================
func (ctrl *InvoiceController) List(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 25, 100)

	tx := ctrl.DB.Model(&invoiceModel.Invoice{})

	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !invoiceModel.InvoiceStatus(s).Valid() {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Status tidak dikenal")
		}
		tx = tx.Where("invoice_status = ?", s)
	}
	if raw := strings.TrimSpace(c.Query("client_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "client_id tidak valid")
		}
		tx = tx.Where("invoice_client_id = ?", id)
	}
	if c.QueryBool("recurring_only") {
		tx = tx.Where("invoice_recurring <> ?", invoiceModel.CadenceOneShot)
	}
	if raw := strings.TrimSpace(c.Query("template_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "template_id tidak valid")
		}
		tx = tx.Where("invoice_template_id = ?", id)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung invoice")
	}

	var rows []invoiceModel.Invoice
	if err := tx.
		Order("invoice_issue_date DESC, invoice_number DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil invoice")
	}

	return helpers.JsonList(c, "invoices", invoiceDTO.FromModelInvoices(rows, time.Now()),
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// GET /invoices/:id (dengan baris)
// =============================
func (ctrl *InvoiceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m invoiceModel.Invoice
	if err := ctrl.DB.
		Preload("InvoiceLines", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoice_line_position ASC")
		}).
		First(&m, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Invoice tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil invoice")
	}
	return helpers.JsonOK(c, "OK", invoiceDTO.FromModelInvoice(&m, time.Now()))
}

// =============================
// PATCH /invoices/:id
// =============================
func (ctrl *InvoiceController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req invoiceDTO.PatchInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var m invoiceModel.Invoice
	if err := ctrl.DB.
		Preload("InvoiceLines", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoice_line_position ASC")
		}).
		First(&m, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Invoice tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil invoice")
	}

	if req.InvoiceStatus != nil {
		next := invoiceModel.InvoiceStatus(*req.InvoiceStatus)
		if !validStatusTransition(m.InvoiceStatus, next) {
			return helpers.JsonError(c, fiber.StatusConflict, "Transisi status tidak diizinkan")
		}
		if next == invoiceModel.InvoiceStatusPaid && m.InvoiceStatus != invoiceModel.InvoiceStatusPaid {
			now := time.Now()
			m.InvoicePaidAt = &now
		}
		m.InvoiceStatus = next
	}
	if req.InvoiceRecurring != nil {
		m.InvoiceRecurring = invoiceModel.Cadence(*req.InvoiceRecurring)
		if m.InvoiceRecurring == invoiceModel.CadenceOneShot {
			// recurrence dimatikan lewat patch: jadwal berikutnya dikosongkan
			m.InvoiceNextGenerationDate = nil
		}
	}
	if req.InvoiceIssueDate != nil {
		d, err := helpers.ParseDateYMD(*req.InvoiceIssueDate)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		m.InvoiceIssueDate = d
		m.InvoiceDueDate = d.AddDate(0, 0, m.InvoicePaymentTermDays)
	}
	if req.InvoicePaymentTermDays != nil {
		m.InvoicePaymentTermDays = *req.InvoicePaymentTermDays
		m.InvoiceDueDate = m.InvoiceIssueDate.AddDate(0, 0, m.InvoicePaymentTermDays)
	}
	if req.InvoiceNextGeneration != nil {
		d, err := helpers.ParseDateYMD(*req.InvoiceNextGeneration)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		m.InvoiceNextGenerationDate = &d
	}
	if req.InvoiceMaxOccurrences != nil {
		m.InvoiceMaxOccurrences = req.InvoiceMaxOccurrences
	}
	if req.InvoiceNotes != nil {
		m.InvoiceNotes = req.InvoiceNotes
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if req.InvoiceLines != nil {
			// baris diganti utuh, bukan merge per item
			if err := tx.Where("invoice_line_invoice_id = ?", m.InvoiceID).
				Delete(&invoiceModel.InvoiceLine{}).Error; err != nil {
				return err
			}
			m.InvoiceLines = m.InvoiceLines[:0]
			for i, lr := range req.InvoiceLines {
				l, err := lr.ToModel(i)
				if err != nil {
					return err
				}
				l.InvoiceLineInvoiceID = m.InvoiceID
				m.InvoiceLines = append(m.InvoiceLines, l)
			}
			if err := tx.Create(&m.InvoiceLines).Error; err != nil {
				return err
			}
			m.RecomputeTotals()
		}
		return tx.Omit("InvoiceLines").Save(&m).Error
	})
	if err != nil {
		log.Printf("[ERROR] update invoice %s: %v", id, err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan invoice")
	}

	return helpers.JsonUpdated(c, "Invoice berhasil diperbarui", invoiceDTO.FromModelInvoice(&m, time.Now()))
}

// =============================
// DELETE /invoices/:id (soft delete)
// =============================
func (ctrl *InvoiceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&invoiceModel.Invoice{}, "invoice_id = ?", id)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus invoice")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Invoice tidak ditemukan")
	}
	return helpers.JsonDeleted(c, "Invoice berhasil dihapus", fiber.Map{"invoice_id": id})
}

// =============================
// POST /invoices/recurring/generate
// Body: {"invoice_id": "<uuid>"}
// =============================
func (ctrl *InvoiceController) GenerateRecurring(c *fiber.Ctx) error {
	var req invoiceDTO.GenerateRecurringRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	id, err := uuid.Parse(req.InvoiceID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "invoice_id tidak valid")
	}

	occ, err := ctrl.Recurring.Generate(c.UserContext(), id, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, invoiceService.ErrInvoiceNotFound):
			return helpers.JsonError(c, fiber.StatusNotFound, "Invoice tidak ditemukan")
		case errors.Is(err, invoiceService.ErrCannotGenerate):
			return helpers.JsonError(c, fiber.StatusConflict, "Template tidak bisa digenerate (non-recurring atau kuota habis)")
		default:
			log.Printf("[ERROR] generate recurring %s: %v", id, err)
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menggenerate invoice")
		}
	}

	var actor *uuid.UUID
	if actorID, err := helperAuth.GetUserIDFromToken(c); err == nil {
		actor = &actorID
	}
	auditService.Record(ctrl.DB, actor, auditModel.ActionInvoiceGenerated,
		"invoice", &occ.InvoiceID, c.IP(), "generated from template "+id.String())

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Invoice " + occ.InvoiceNumber + " berhasil digenerate",
		"data":    invoiceDTO.FromModelInvoice(occ, time.Now()),
	})
}

// =============================
// POST /invoices/:id/recurring/toggle
// =============================
func (ctrl *InvoiceController) ToggleRecurring(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	inv, err := ctrl.Recurring.ToggleRecurring(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, invoiceService.ErrInvoiceNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Invoice tidak ditemukan")
		}
		log.Printf("[ERROR] toggle recurring %s: %v", id, err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah recurrence")
	}

	var actor *uuid.UUID
	if actorID, err := helperAuth.GetUserIDFromToken(c); err == nil {
		actor = &actorID
	}
	auditService.Record(ctrl.DB, actor, auditModel.ActionRecurringToggled,
		"invoice", &inv.InvoiceID, c.IP(), "recurring set to "+string(inv.InvoiceRecurring))

	return helpers.JsonUpdated(c, "Recurrence berhasil diubah", invoiceDTO.FromModelInvoice(inv, time.Now()))
}

// =============================
// Helpers
// =============================

// validStatusTransition: draft→sent→paid, draft/sent→cancelled.
func validStatusTransition(from, to invoiceModel.InvoiceStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case invoiceModel.InvoiceStatusDraft:
		return to == invoiceModel.InvoiceStatusSent || to == invoiceModel.InvoiceStatusCancelled
	case invoiceModel.InvoiceStatusSent:
		return to == invoiceModel.InvoiceStatusPaid || to == invoiceModel.InvoiceStatusCancelled
	default:
		// paid & cancelled final
		return false
	}
}

// snapshot ringkas identitas klien, dibekukan ke JSONB invoice
func sonicMarshalClient(cl *clientModel.Client) (datatypes.JSON, error) {
	raw, err := sonic.Marshal(map[string]interface{}{
		"client_name":    cl.ClientName,
		"client_company": cl.ClientCompany,
		"client_email":   cl.ClientEmail,
		"client_address": cl.ClientAddress,
		"client_siret":   cl.ClientSiret,
	})
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
