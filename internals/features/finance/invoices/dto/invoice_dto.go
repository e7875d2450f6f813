// file: internals/features/finance/invoices/dto/invoice_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	helpers "agencehub_backend/internals/helpers"

	invoiceModel "agencehub_backend/internals/features/finance/invoices/model"
	invoiceService "agencehub_backend/internals/features/finance/invoices/service"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type InvoiceLineRequest struct {
	Description string  `json:"description" validate:"required,min=1,max=255"`
	Quantity    *string `json:"quantity" validate:"omitempty"`
	UnitPriceHT string  `json:"unit_price_ht" validate:"required"`
	VATRate     *string `json:"vat_rate" validate:"omitempty"`
}

func (r InvoiceLineRequest) ToModel(position int) (invoiceModel.InvoiceLine, error) {
	qty := decimal.NewFromInt(1)
	var err error
	if r.Quantity != nil {
		qty, err = decimal.NewFromString(*r.Quantity)
		if err != nil {
			return invoiceModel.InvoiceLine{}, err
		}
	}
	unit, err := decimal.NewFromString(r.UnitPriceHT)
	if err != nil {
		return invoiceModel.InvoiceLine{}, err
	}
	rate := decimal.NewFromInt(20)
	if r.VATRate != nil {
		rate, err = decimal.NewFromString(*r.VATRate)
		if err != nil {
			return invoiceModel.InvoiceLine{}, err
		}
	}

	l := invoiceModel.InvoiceLine{
		InvoiceLineDescription: r.Description,
		InvoiceLineQuantity:    qty,
		InvoiceLineUnitPriceHT: unit,
		InvoiceLineVATRate:     rate,
		InvoiceLinePosition:    position,
	}
	l.Recompute()
	return l, nil
}

type CreateInvoiceRequest struct {
	InvoiceClientID        uuid.UUID            `json:"invoice_client_id" validate:"required"`
	InvoiceStatus          *string              `json:"invoice_status" validate:"omitempty,oneof=draft sent"`
	InvoiceRecurring       *string              `json:"invoice_recurring" validate:"omitempty,oneof=one_shot monthly quarterly yearly"`
	InvoiceIssueDate       string               `json:"invoice_issue_date" validate:"required,datetime=2006-01-02"`
	InvoicePaymentTermDays *int                 `json:"invoice_payment_term_days" validate:"omitempty,gte=0,lte=365"`
	InvoiceNextGeneration  *string              `json:"invoice_next_generation_date" validate:"omitempty,datetime=2006-01-02"`
	InvoiceMaxOccurrences  *int                 `json:"invoice_max_occurrences" validate:"omitempty,gte=1"`
	InvoiceNotes           *string              `json:"invoice_notes" validate:"omitempty"`
	InvoiceLines           []InvoiceLineRequest `json:"invoice_lines" validate:"required,min=1,dive"`
}

func (r CreateInvoiceRequest) ToModel() (*invoiceModel.Invoice, error) {
	issue, err := helpers.ParseDateYMD(r.InvoiceIssueDate)
	if err != nil {
		return nil, err
	}

	term := 30
	if r.InvoicePaymentTermDays != nil {
		term = *r.InvoicePaymentTermDays
	}

	m := &invoiceModel.Invoice{
		InvoiceClientID:        r.InvoiceClientID,
		InvoiceStatus:          invoiceModel.InvoiceStatusDraft,
		InvoiceRecurring:       invoiceModel.CadenceOneShot,
		InvoiceIssueDate:       issue,
		InvoiceDueDate:         issue.AddDate(0, 0, term),
		InvoicePaymentTermDays: term,
		InvoiceMaxOccurrences:  r.InvoiceMaxOccurrences,
		InvoiceNotes:           r.InvoiceNotes,
	}
	if r.InvoiceStatus != nil {
		m.InvoiceStatus = invoiceModel.InvoiceStatus(*r.InvoiceStatus)
	}
	if r.InvoiceRecurring != nil {
		m.InvoiceRecurring = invoiceModel.Cadence(*r.InvoiceRecurring)
	}
	if r.InvoiceNextGeneration != nil {
		d, err := helpers.ParseDateYMD(*r.InvoiceNextGeneration)
		if err != nil {
			return nil, err
		}
		m.InvoiceNextGenerationDate = &d
	}

	for i, lr := range r.InvoiceLines {
		l, err := lr.ToModel(i)
		if err != nil {
			return nil, err
		}
		m.InvoiceLines = append(m.InvoiceLines, l)
	}
	m.RecomputeTotals()
	return m, nil
}

type PatchInvoiceRequest struct {
	InvoiceStatus          *string              `json:"invoice_status" validate:"omitempty,oneof=draft sent paid cancelled"`
	InvoiceRecurring       *string              `json:"invoice_recurring" validate:"omitempty,oneof=one_shot monthly quarterly yearly"`
	InvoiceIssueDate       *string              `json:"invoice_issue_date" validate:"omitempty,datetime=2006-01-02"`
	InvoicePaymentTermDays *int                 `json:"invoice_payment_term_days" validate:"omitempty,gte=0,lte=365"`
	InvoiceNextGeneration  *string              `json:"invoice_next_generation_date" validate:"omitempty,datetime=2006-01-02"`
	InvoiceMaxOccurrences  *int                 `json:"invoice_max_occurrences" validate:"omitempty,gte=1"`
	InvoiceNotes           *string              `json:"invoice_notes" validate:"omitempty"`
	InvoiceLines           []InvoiceLineRequest `json:"invoice_lines" validate:"omitempty,min=1,dive"`
}

/* =========================================================
   REQUEST DTO — recurrence
========================================================= */

// GenerateRecurringRequest: body POST /invoices/recurring/generate.
type GenerateRecurringRequest struct {
	InvoiceID string `json:"invoice_id" validate:"required,uuid4"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type InvoiceLineResponse struct {
	InvoiceLineID uuid.UUID `json:"invoice_line_id"`
	Description   string    `json:"description"`
	Quantity      string    `json:"quantity"`
	UnitPriceHT   string    `json:"unit_price_ht"`
	VATRate       string    `json:"vat_rate"`
	AmountHT      string    `json:"amount_ht"`
	AmountTVA     string    `json:"amount_tva"`
	Position      int       `json:"position"`
}

type InvoiceResponse struct {
	InvoiceID     uuid.UUID `json:"invoice_id"`
	InvoiceNumber string    `json:"invoice_number"`

	InvoiceClientID uuid.UUID  `json:"invoice_client_id"`
	InvoiceStatus   string     `json:"invoice_status"`
	InvoicePaidAt   *time.Time `json:"invoice_paid_at,omitempty"`

	InvoiceRecurring          string     `json:"invoice_recurring"`
	InvoiceRecurringStatus    string     `json:"invoice_recurring_status"`
	InvoiceNextGenerationDate *string    `json:"invoice_next_generation_date,omitempty"`
	InvoiceOccurrencesCount   int        `json:"invoice_occurrences_count"`
	InvoiceMaxOccurrences     *int       `json:"invoice_max_occurrences,omitempty"`
	InvoiceTemplateID         *uuid.UUID `json:"invoice_template_id,omitempty"`

	InvoiceIssueDate       string `json:"invoice_issue_date"`
	InvoiceDueDate         string `json:"invoice_due_date"`
	InvoicePaymentTermDays int    `json:"invoice_payment_term_days"`

	InvoiceTotalHT  string `json:"invoice_total_ht"`
	InvoiceTotalTVA string `json:"invoice_total_tva"`
	InvoiceTotalTTC string `json:"invoice_total_ttc"`

	InvoiceNotes *string               `json:"invoice_notes,omitempty"`
	InvoiceLines []InvoiceLineResponse `json:"invoice_lines,omitempty"`

	InvoiceCreatedAt time.Time `json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time `json:"invoice_updated_at"`
}

func FromModelInvoiceLine(l *invoiceModel.InvoiceLine) InvoiceLineResponse {
	return InvoiceLineResponse{
		InvoiceLineID: l.InvoiceLineID,
		Description:   l.InvoiceLineDescription,
		Quantity:      l.InvoiceLineQuantity.StringFixed(2),
		UnitPriceHT:   l.InvoiceLineUnitPriceHT.StringFixed(2),
		VATRate:       l.InvoiceLineVATRate.StringFixed(2),
		AmountHT:      l.InvoiceLineAmountHT.StringFixed(2),
		AmountTVA:     l.InvoiceLineAmountTVA.StringFixed(2),
		Position:      l.InvoiceLinePosition,
	}
}

func FromModelInvoice(m *invoiceModel.Invoice, now time.Time) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:                 m.InvoiceID,
		InvoiceNumber:             m.InvoiceNumber,
		InvoiceClientID:           m.InvoiceClientID,
		InvoiceStatus:             string(m.InvoiceStatus),
		InvoicePaidAt:             m.InvoicePaidAt,
		InvoiceRecurring:          string(m.InvoiceRecurring),
		InvoiceRecurringStatus:    string(invoiceService.StatusOf(m, now)),
		InvoiceNextGenerationDate: helpers.FormatDateYMDPtr(m.InvoiceNextGenerationDate),
		InvoiceOccurrencesCount:   m.InvoiceOccurrencesCount,
		InvoiceMaxOccurrences:     m.InvoiceMaxOccurrences,
		InvoiceTemplateID:         m.InvoiceTemplateID,
		InvoiceIssueDate:          helpers.FormatDateYMD(m.InvoiceIssueDate),
		InvoiceDueDate:            helpers.FormatDateYMD(m.InvoiceDueDate),
		InvoicePaymentTermDays:    m.InvoicePaymentTermDays,
		InvoiceTotalHT:            m.InvoiceTotalHT.StringFixed(2),
		InvoiceTotalTVA:           m.InvoiceTotalTVA.StringFixed(2),
		InvoiceTotalTTC:           m.InvoiceTotalTTC.StringFixed(2),
		InvoiceNotes:              m.InvoiceNotes,
		InvoiceCreatedAt:          m.InvoiceCreatedAt,
		InvoiceUpdatedAt:          m.InvoiceUpdatedAt,
	}
	for i := range m.InvoiceLines {
		resp.InvoiceLines = append(resp.InvoiceLines, FromModelInvoiceLine(&m.InvoiceLines[i]))
	}
	return resp
}

func FromModelInvoices(rows []invoiceModel.Invoice, now time.Time) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelInvoice(&rows[i], now))
	}
	return out
}
