// file: internals/features/finance/expenses/model/expense_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseCategory string

const (
	ExpenseCategoryTools       ExpenseCategory = "tools"
	ExpenseCategoryAds         ExpenseCategory = "ads"
	ExpenseCategoryFreelance   ExpenseCategory = "freelance"
	ExpenseCategoryTravel      ExpenseCategory = "travel"
	ExpenseCategorySubcontract ExpenseCategory = "subcontract"
	ExpenseCategoryOther       ExpenseCategory = "other"
)

func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseCategoryTools, ExpenseCategoryAds, ExpenseCategoryFreelance,
		ExpenseCategoryTravel, ExpenseCategorySubcontract, ExpenseCategoryOther:
		return true
	}
	return false
}

// Expense menyimpan pengeluaran agensi, HT/TVA/TTC ala akuntansi Prancis.
type Expense struct {
	ExpenseID uuid.UUID `gorm:"column:expense_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"expense_id"`

	ExpenseLabel    string          `gorm:"column:expense_label;type:varchar(160);not null" json:"expense_label"`
	ExpenseCategory ExpenseCategory `gorm:"column:expense_category;type:varchar(20);not null;default:'other';index" json:"expense_category"`

	// nama vendor/supplier di invoice pembelian (opsional)
	ExpenseSupplier *string `gorm:"column:expense_supplier;type:varchar(160)" json:"expense_supplier,omitempty"`

	// opsional: pengeluaran yang menempel ke mandat klien
	ExpenseMandateID *uuid.UUID `gorm:"column:expense_mandate_id;type:uuid;index" json:"expense_mandate_id,omitempty"`

	ExpenseAmountHT  decimal.Decimal `gorm:"column:expense_amount_ht;type:numeric(12,2);not null" json:"expense_amount_ht"`
	ExpenseVATRate   decimal.Decimal `gorm:"column:expense_vat_rate;type:numeric(5,2);not null;default:20.00" json:"expense_vat_rate"`
	ExpenseAmountTTC decimal.Decimal `gorm:"column:expense_amount_ttc;type:numeric(12,2);not null" json:"expense_amount_ttc"`

	ExpenseDate time.Time `gorm:"column:expense_date;type:date;not null;index" json:"expense_date"`

	ExpenseNotes *string `gorm:"column:expense_notes;type:text" json:"expense_notes,omitempty"`

	ExpenseCreatedAt time.Time      `gorm:"column:expense_created_at;not null;default:now()" json:"expense_created_at"`
	ExpenseUpdatedAt time.Time      `gorm:"column:expense_updated_at;not null;default:now()" json:"expense_updated_at"`
	ExpenseDeletedAt gorm.DeletedAt `gorm:"column:expense_deleted_at;index" json:"-"`
}

func (Expense) TableName() string {
	return "expenses"
}

func (m *Expense) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ExpenseCreatedAt.IsZero() {
		m.ExpenseCreatedAt = now
	}
	m.ExpenseUpdatedAt = now
	m.recomputeTTC()
	return nil
}

func (m *Expense) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ExpenseUpdatedAt = time.Now()
	m.recomputeTTC()
	return nil
}

// recomputeTTC: TTC = HT * (1 + rate/100), dibulatkan 2 desimal.
func (m *Expense) recomputeTTC() {
	hundred := decimal.NewFromInt(100)
	m.ExpenseAmountTTC = m.ExpenseAmountHT.
		Mul(hundred.Add(m.ExpenseVATRate)).
		Div(hundred).
		Round(2)
}
