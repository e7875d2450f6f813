// file: internals/features/finance/expenses/dto/expense_dto_test.go
package dto

import (
	"testing"
)

func strPtr(s string) *string { return &s }

func TestCreateExpenseCarriesSupplier(t *testing.T) {
	t.Parallel()

	req := CreateExpenseRequest{
		ExpenseLabel:    "Licence Figma",
		ExpenseCategory: strPtr("tools"),
		ExpenseSupplier: strPtr("Figma Inc."),
		ExpenseAmountHT: "144.00",
		ExpenseDate:     "2026-01-05",
	}

	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.ExpenseSupplier == nil || *m.ExpenseSupplier != "Figma Inc." {
		t.Fatalf("supplier = %v, want Figma Inc.", m.ExpenseSupplier)
	}

	resp := FromModelExpense(m)
	if resp.ExpenseSupplier == nil || *resp.ExpenseSupplier != "Figma Inc." {
		t.Fatalf("response supplier = %v, want Figma Inc.", resp.ExpenseSupplier)
	}
}

func TestPatchExpenseSupplier(t *testing.T) {
	t.Parallel()

	req := CreateExpenseRequest{
		ExpenseLabel:    "Sous-traitance montage",
		ExpenseAmountHT: "300.00",
		ExpenseDate:     "2026-02-10",
	}
	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.ExpenseSupplier != nil {
		t.Fatalf("supplier awal = %v, want nil", m.ExpenseSupplier)
	}

	patch := PatchExpenseRequest{ExpenseSupplier: strPtr("Studio B")}
	if err := patch.ApplyTo(m); err != nil {
		t.Fatalf("ApplyTo: %v", err)
	}
	if m.ExpenseSupplier == nil || *m.ExpenseSupplier != "Studio B" {
		t.Fatalf("supplier = %v, want Studio B", m.ExpenseSupplier)
	}

	// patch tanpa field supplier tidak menyentuh nilai lama
	if err := (PatchExpenseRequest{ExpenseLabel: strPtr("Montage vidéo")}).ApplyTo(m); err != nil {
		t.Fatalf("ApplyTo: %v", err)
	}
	if m.ExpenseSupplier == nil || *m.ExpenseSupplier != "Studio B" {
		t.Fatalf("supplier setelah patch lain = %v, want Studio B", m.ExpenseSupplier)
	}
}
