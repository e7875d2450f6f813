// file: internals/features/finance/invoices/model/invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// ENUM
// =========================================================

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// Cadence: one_shot berarti bukan template recurring.
type Cadence string

const (
	CadenceOneShot   Cadence = "one_shot"
	CadenceMonthly   Cadence = "monthly"
	CadenceQuarterly Cadence = "quarterly"
	CadenceYearly    Cadence = "yearly"
)

func (c Cadence) Valid() bool {
	switch c {
	case CadenceOneShot, CadenceMonthly, CadenceQuarterly, CadenceYearly:
		return true
	}
	return false
}

// IsRecurring true untuk cadence aktif (bukan one_shot).
func (c Cadence) IsRecurring() bool {
	return c.Valid() && c != CadenceOneShot
}

// =========================================================
// MODEL — satu tabel untuk template dan occurrence
// =========================================================

type Invoice struct {
	InvoiceID     uuid.UUID `gorm:"column:invoice_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_id"`
	InvoiceNumber string    `gorm:"column:invoice_number;type:varchar(20);not null;uniqueIndex:uq_invoice_number,where:invoice_deleted_at IS NULL" json:"invoice_number"`

	InvoiceClientID uuid.UUID `gorm:"column:invoice_client_id;type:uuid;not null;index" json:"invoice_client_id"`
	// snapshot identitas klien saat faktur dibuat (nama, alamat, dsb.)
	InvoiceClientSnapshot datatypes.JSON `gorm:"column:invoice_client_snapshot;type:jsonb" json:"invoice_client_snapshot,omitempty"`

	InvoiceStatus InvoiceStatus `gorm:"column:invoice_status;type:varchar(12);not null;default:'draft';index" json:"invoice_status"`
	InvoicePaidAt *time.Time    `gorm:"column:invoice_paid_at" json:"invoice_paid_at,omitempty"`

	// ---- Recurrence ----
	InvoiceRecurring          Cadence    `gorm:"column:invoice_recurring;type:varchar(12);not null;default:'one_shot';index" json:"invoice_recurring"`
	InvoiceNextGenerationDate *time.Time `gorm:"column:invoice_next_generation_date;type:date;index" json:"invoice_next_generation_date,omitempty"`
	InvoiceOccurrencesCount   int        `gorm:"column:invoice_occurrences_count;not null;default:0" json:"invoice_occurrences_count"`
	InvoiceMaxOccurrences     *int       `gorm:"column:invoice_max_occurrences" json:"invoice_max_occurrences,omitempty"`
	// cadence terakhir sebelum recurrence dimatikan, dipakai saat toggle on lagi
	InvoicePausedCadence *Cadence `gorm:"column:invoice_paused_cadence;type:varchar(12)" json:"invoice_paused_cadence,omitempty"`
	// occurrence menunjuk balik ke template asalnya
	InvoiceTemplateID *uuid.UUID `gorm:"column:invoice_template_id;type:uuid;index" json:"invoice_template_id,omitempty"`

	InvoiceIssueDate       time.Time `gorm:"column:invoice_issue_date;type:date;not null" json:"invoice_issue_date"`
	InvoiceDueDate         time.Time `gorm:"column:invoice_due_date;type:date;not null" json:"invoice_due_date"`
	InvoicePaymentTermDays int       `gorm:"column:invoice_payment_term_days;not null;default:30" json:"invoice_payment_term_days"`

	InvoiceTotalHT  decimal.Decimal `gorm:"column:invoice_total_ht;type:numeric(12,2);not null;default:0" json:"invoice_total_ht"`
	InvoiceTotalTVA decimal.Decimal `gorm:"column:invoice_total_tva;type:numeric(12,2);not null;default:0" json:"invoice_total_tva"`
	InvoiceTotalTTC decimal.Decimal `gorm:"column:invoice_total_ttc;type:numeric(12,2);not null;default:0" json:"invoice_total_ttc"`

	InvoiceNotes *string `gorm:"column:invoice_notes;type:text" json:"invoice_notes,omitempty"`

	InvoiceLines []InvoiceLine `gorm:"foreignKey:InvoiceLineInvoiceID;references:InvoiceID" json:"invoice_lines,omitempty"`

	InvoiceCreatedAt time.Time      `gorm:"column:invoice_created_at;not null;default:now()" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time      `gorm:"column:invoice_updated_at;not null;default:now()" json:"invoice_updated_at"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;index" json:"-"`
}

func (Invoice) TableName() string {
	return "invoices"
}

func (m *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.InvoiceCreatedAt.IsZero() {
		m.InvoiceCreatedAt = now
	}
	m.InvoiceUpdatedAt = now
	return nil
}

func (m *Invoice) BeforeUpdate(tx *gorm.DB) (err error) {
	m.InvoiceUpdatedAt = time.Now()
	return nil
}

// RecomputeTotals menjumlahkan ulang HT/TVA/TTC dari baris.
func (m *Invoice) RecomputeTotals() {
	ht := decimal.Zero
	tva := decimal.Zero
	for i := range m.InvoiceLines {
		m.InvoiceLines[i].Recompute()
		ht = ht.Add(m.InvoiceLines[i].InvoiceLineAmountHT)
		tva = tva.Add(m.InvoiceLines[i].InvoiceLineAmountTVA)
	}
	m.InvoiceTotalHT = ht.Round(2)
	m.InvoiceTotalTVA = tva.Round(2)
	m.InvoiceTotalTTC = ht.Add(tva).Round(2)
}

// =========================================================
// MODEL — baris faktur (dimiliki, bukan direferensikan)
// =========================================================

type InvoiceLine struct {
	InvoiceLineID        uuid.UUID `gorm:"column:invoice_line_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_line_id"`
	InvoiceLineInvoiceID uuid.UUID `gorm:"column:invoice_line_invoice_id;type:uuid;not null;index" json:"invoice_line_invoice_id"`

	InvoiceLineDescription string          `gorm:"column:invoice_line_description;type:varchar(255);not null" json:"invoice_line_description"`
	InvoiceLineQuantity    decimal.Decimal `gorm:"column:invoice_line_quantity;type:numeric(10,2);not null;default:1" json:"invoice_line_quantity"`
	InvoiceLineUnitPriceHT decimal.Decimal `gorm:"column:invoice_line_unit_price_ht;type:numeric(12,2);not null" json:"invoice_line_unit_price_ht"`
	InvoiceLineVATRate     decimal.Decimal `gorm:"column:invoice_line_vat_rate;type:numeric(5,2);not null;default:20.00" json:"invoice_line_vat_rate"`

	InvoiceLineAmountHT  decimal.Decimal `gorm:"column:invoice_line_amount_ht;type:numeric(12,2);not null" json:"invoice_line_amount_ht"`
	InvoiceLineAmountTVA decimal.Decimal `gorm:"column:invoice_line_amount_tva;type:numeric(12,2);not null" json:"invoice_line_amount_tva"`

	InvoiceLinePosition int `gorm:"column:invoice_line_position;not null;default:0" json:"invoice_line_position"`

	InvoiceLineCreatedAt time.Time `gorm:"column:invoice_line_created_at;not null;default:now()" json:"invoice_line_created_at"`
}

func (InvoiceLine) TableName() string {
	return "invoice_lines"
}

func (l *InvoiceLine) BeforeCreate(tx *gorm.DB) (err error) {
	if l.InvoiceLineCreatedAt.IsZero() {
		l.InvoiceLineCreatedAt = time.Now()
	}
	return nil
}

// Recompute mengisi amount HT/TVA dari quantity * unit price.
func (l *InvoiceLine) Recompute() {
	hundred := decimal.NewFromInt(100)
	l.InvoiceLineAmountHT = l.InvoiceLineQuantity.Mul(l.InvoiceLineUnitPriceHT).Round(2)
	l.InvoiceLineAmountTVA = l.InvoiceLineAmountHT.Mul(l.InvoiceLineVATRate).Div(hundred).Round(2)
}

// CloneForOccurrence menyalin baris apa adanya untuk occurrence baru.
func (l InvoiceLine) CloneForOccurrence() InvoiceLine {
	return InvoiceLine{
		InvoiceLineDescription: l.InvoiceLineDescription,
		InvoiceLineQuantity:    l.InvoiceLineQuantity,
		InvoiceLineUnitPriceHT: l.InvoiceLineUnitPriceHT,
		InvoiceLineVATRate:     l.InvoiceLineVATRate,
		InvoiceLineAmountHT:    l.InvoiceLineAmountHT,
		InvoiceLineAmountTVA:   l.InvoiceLineAmountTVA,
		InvoiceLinePosition:    l.InvoiceLinePosition,
	}
}
