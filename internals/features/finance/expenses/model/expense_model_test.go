package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestExpenseRecomputeTTC(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		ht   string
		rate string
		want string
	}{
		{name: "standard 20%", ht: "100.00", rate: "20.00", want: "120.00"},
		{name: "reduced 10%", ht: "49.90", rate: "10.00", want: "54.89"},
		{name: "zero rate", ht: "15.00", rate: "0.00", want: "15.00"},
		{name: "rounding", ht: "33.33", rate: "20.00", want: "40.00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			e := Expense{
				ExpenseAmountHT: decimal.RequireFromString(tt.ht),
				ExpenseVATRate:  decimal.RequireFromString(tt.rate),
			}
			e.recomputeTTC()
			if got := e.ExpenseAmountTTC.StringFixed(2); got != tt.want {
				t.Fatalf("TTC = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestExpenseCategoryValid(t *testing.T) {
	t.Parallel()
	for _, c := range []ExpenseCategory{
		ExpenseCategoryTools, ExpenseCategoryAds, ExpenseCategoryFreelance,
		ExpenseCategoryTravel, ExpenseCategorySubcontract, ExpenseCategoryOther,
	} {
		if !c.Valid() {
			t.Fatalf("%s should be valid", c)
		}
	}
	if ExpenseCategory("rent").Valid() {
		t.Fatal("unknown category must be invalid")
	}
}
