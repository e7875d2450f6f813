// file: internals/features/finance/expenses/dto/expense_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	helpers "agencehub_backend/internals/helpers"

	expenseModel "agencehub_backend/internals/features/finance/expenses/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateExpenseRequest struct {
	ExpenseLabel     string     `json:"expense_label" validate:"required,min=1,max=160"`
	ExpenseCategory  *string    `json:"expense_category" validate:"omitempty,oneof=tools ads freelance travel subcontract other"`
	ExpenseSupplier  *string    `json:"expense_supplier" validate:"omitempty,max=160"`
	ExpenseMandateID *uuid.UUID `json:"expense_mandate_id" validate:"omitempty"`
	ExpenseAmountHT  string     `json:"expense_amount_ht" validate:"required"`
	ExpenseVATRate   *string    `json:"expense_vat_rate" validate:"omitempty"`
	ExpenseDate      string     `json:"expense_date" validate:"required,datetime=2006-01-02"`
	ExpenseNotes     *string    `json:"expense_notes" validate:"omitempty"`
}

func (r CreateExpenseRequest) ToModel() (*expenseModel.Expense, error) {
	ht, err := decimal.NewFromString(r.ExpenseAmountHT)
	if err != nil {
		return nil, err
	}
	rate := decimal.NewFromInt(20)
	if r.ExpenseVATRate != nil {
		rate, err = decimal.NewFromString(*r.ExpenseVATRate)
		if err != nil {
			return nil, err
		}
	}
	d, err := helpers.ParseDateYMD(r.ExpenseDate)
	if err != nil {
		return nil, err
	}

	m := &expenseModel.Expense{
		ExpenseLabel:     r.ExpenseLabel,
		ExpenseCategory:  expenseModel.ExpenseCategoryOther,
		ExpenseSupplier:  r.ExpenseSupplier,
		ExpenseMandateID: r.ExpenseMandateID,
		ExpenseAmountHT:  ht,
		ExpenseVATRate:   rate,
		ExpenseDate:      d,
		ExpenseNotes:     r.ExpenseNotes,
	}
	if r.ExpenseCategory != nil {
		m.ExpenseCategory = expenseModel.ExpenseCategory(*r.ExpenseCategory)
	}
	return m, nil
}

type PatchExpenseRequest struct {
	ExpenseLabel     *string    `json:"expense_label" validate:"omitempty,min=1,max=160"`
	ExpenseCategory  *string    `json:"expense_category" validate:"omitempty,oneof=tools ads freelance travel subcontract other"`
	ExpenseSupplier  *string    `json:"expense_supplier" validate:"omitempty,max=160"`
	ExpenseMandateID *uuid.UUID `json:"expense_mandate_id" validate:"omitempty"`
	ExpenseAmountHT  *string    `json:"expense_amount_ht" validate:"omitempty"`
	ExpenseVATRate   *string    `json:"expense_vat_rate" validate:"omitempty"`
	ExpenseDate      *string    `json:"expense_date" validate:"omitempty,datetime=2006-01-02"`
	ExpenseNotes     *string    `json:"expense_notes" validate:"omitempty"`
}

func (r PatchExpenseRequest) ApplyTo(m *expenseModel.Expense) error {
	if r.ExpenseLabel != nil {
		m.ExpenseLabel = *r.ExpenseLabel
	}
	if r.ExpenseCategory != nil {
		m.ExpenseCategory = expenseModel.ExpenseCategory(*r.ExpenseCategory)
	}
	if r.ExpenseSupplier != nil {
		m.ExpenseSupplier = r.ExpenseSupplier
	}
	if r.ExpenseMandateID != nil {
		m.ExpenseMandateID = r.ExpenseMandateID
	}
	if r.ExpenseAmountHT != nil {
		ht, err := decimal.NewFromString(*r.ExpenseAmountHT)
		if err != nil {
			return err
		}
		m.ExpenseAmountHT = ht
	}
	if r.ExpenseVATRate != nil {
		rate, err := decimal.NewFromString(*r.ExpenseVATRate)
		if err != nil {
			return err
		}
		m.ExpenseVATRate = rate
	}
	if r.ExpenseDate != nil {
		d, err := helpers.ParseDateYMD(*r.ExpenseDate)
		if err != nil {
			return err
		}
		m.ExpenseDate = d
	}
	if r.ExpenseNotes != nil {
		m.ExpenseNotes = r.ExpenseNotes
	}
	return nil
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type ExpenseResponse struct {
	ExpenseID        uuid.UUID  `json:"expense_id"`
	ExpenseLabel     string     `json:"expense_label"`
	ExpenseCategory  string     `json:"expense_category"`
	ExpenseSupplier  *string    `json:"expense_supplier,omitempty"`
	ExpenseMandateID *uuid.UUID `json:"expense_mandate_id,omitempty"`
	ExpenseAmountHT  string     `json:"expense_amount_ht"`
	ExpenseVATRate   string     `json:"expense_vat_rate"`
	ExpenseAmountTTC string     `json:"expense_amount_ttc"`
	ExpenseDate      string     `json:"expense_date"`
	ExpenseNotes     *string    `json:"expense_notes,omitempty"`
	ExpenseCreatedAt time.Time  `json:"expense_created_at"`
	ExpenseUpdatedAt time.Time  `json:"expense_updated_at"`
}

func FromModelExpense(m *expenseModel.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:        m.ExpenseID,
		ExpenseLabel:     m.ExpenseLabel,
		ExpenseCategory:  string(m.ExpenseCategory),
		ExpenseSupplier:  m.ExpenseSupplier,
		ExpenseMandateID: m.ExpenseMandateID,
		ExpenseAmountHT:  m.ExpenseAmountHT.StringFixed(2),
		ExpenseVATRate:   m.ExpenseVATRate.StringFixed(2),
		ExpenseAmountTTC: m.ExpenseAmountTTC.StringFixed(2),
		ExpenseDate:      helpers.FormatDateYMD(m.ExpenseDate),
		ExpenseNotes:     m.ExpenseNotes,
		ExpenseCreatedAt: m.ExpenseCreatedAt,
		ExpenseUpdatedAt: m.ExpenseUpdatedAt,
	}
}

func FromModelExpenses(rows []expenseModel.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelExpense(&rows[i]))
	}
	return out
}
