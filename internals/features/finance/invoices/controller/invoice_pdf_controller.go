// file: internals/features/finance/invoices/controller/invoice_pdf_controller.go
package controller

import (
	"bytes"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	helpers "agencehub_backend/internals/helpers"

	invoiceModel "agencehub_backend/internals/features/finance/invoices/model"
)

// =============================
// GET /invoices/:id/pdf
// Render faktur jadi PDF A4 untuk diunduh.
// =============================
func (ctrl *InvoiceController) ExportPDF(c *fiber.Ctx) error {
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

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// header
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(120, 10, "FACTURE "+m.InvoiceNumber)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 10, "Date: "+helpers.FormatDateYMD(m.InvoiceIssueDate), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, "Echeance: "+helpers.FormatDateYMD(m.InvoiceDueDate), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// blok klien dari snapshot
	if name, company := clientFromSnapshot(m.InvoiceClientSnapshot); name != "" {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 6, name)
		pdf.Ln(6)
		if company != "" {
			pdf.SetFont("Arial", "", 10)
			pdf.Cell(0, 5, company)
			pdf.Ln(5)
		}
	}
	pdf.Ln(6)

	// tabel baris
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(90, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qte", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "PU HT", "1", 0, "R", true, 0, "")
	pdf.CellFormat(15, 8, "TVA %", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Montant HT", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, l := range m.InvoiceLines {
		pdf.CellFormat(90, 7, l.InvoiceLineDescription, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, l.InvoiceLineQuantity.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, l.InvoiceLineUnitPriceHT.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(15, 7, l.InvoiceLineVATRate.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, l.InvoiceLineAmountHT.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	// total
	pdf.Ln(2)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(155, 7, "Total HT", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, m.InvoiceTotalHT.StringFixed(2)+" EUR", "1", 1, "R", false, 0, "")
	pdf.CellFormat(155, 7, "TVA", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, m.InvoiceTotalTVA.StringFixed(2)+" EUR", "1", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(155, 8, "Total TTC", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, m.InvoiceTotalTTC.StringFixed(2)+" EUR", "1", 1, "R", false, 0, "")

	if m.InvoiceNotes != nil && *m.InvoiceNotes != "" {
		pdf.Ln(8)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(0, 5, *m.InvoiceNotes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("[ERROR] render pdf %s: %v", id, err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat PDF")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+m.InvoiceNumber+`.pdf"`)
	return c.Send(buf.Bytes())
}

func clientFromSnapshot(raw []byte) (name, company string) {
	if len(raw) == 0 {
		return "", ""
	}
	var snap struct {
		ClientName    string  `json:"client_name"`
		ClientCompany *string `json:"client_company"`
	}
	if err := sonic.Unmarshal(raw, &snap); err != nil {
		return "", ""
	}
	if snap.ClientCompany != nil {
		company = *snap.ClientCompany
	}
	return snap.ClientName, company
}
