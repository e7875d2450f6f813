package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func line(desc string, qty, unit, rate string) InvoiceLine {
	return InvoiceLine{
		InvoiceLineDescription: desc,
		InvoiceLineQuantity:    decimal.RequireFromString(qty),
		InvoiceLineUnitPriceHT: decimal.RequireFromString(unit),
		InvoiceLineVATRate:     decimal.RequireFromString(rate),
	}
}

func TestInvoiceLineRecompute(t *testing.T) {
	t.Parallel()
	l := line("SMM forfait", "2", "350.00", "20.00")
	l.Recompute()

	if got := l.InvoiceLineAmountHT.StringFixed(2); got != "700.00" {
		t.Fatalf("amount HT = %s, want 700.00", got)
	}
	if got := l.InvoiceLineAmountTVA.StringFixed(2); got != "140.00" {
		t.Fatalf("amount TVA = %s, want 140.00", got)
	}
}

func TestInvoiceRecomputeTotals(t *testing.T) {
	t.Parallel()
	inv := Invoice{
		InvoiceLines: []InvoiceLine{
			line("Gestion Instagram", "1", "500.00", "20.00"),
			line("Shooting photo", "0.5", "300.00", "20.00"),
			line("Frais refacturés", "1", "42.37", "0.00"),
		},
	}
	inv.RecomputeTotals()

	if got := inv.InvoiceTotalHT.StringFixed(2); got != "692.37" {
		t.Fatalf("total HT = %s, want 692.37", got)
	}
	if got := inv.InvoiceTotalTVA.StringFixed(2); got != "130.00" {
		t.Fatalf("total TVA = %s, want 130.00", got)
	}
	if got := inv.InvoiceTotalTTC.StringFixed(2); got != "822.37" {
		t.Fatalf("total TTC = %s, want 822.37", got)
	}
}

func TestCadenceHelpers(t *testing.T) {
	t.Parallel()
	if CadenceOneShot.IsRecurring() {
		t.Fatal("one_shot must not count as recurring")
	}
	for _, c := range []Cadence{CadenceMonthly, CadenceQuarterly, CadenceYearly} {
		if !c.IsRecurring() {
			t.Fatalf("%s should be recurring", c)
		}
	}
	if Cadence("weekly").Valid() {
		t.Fatal("unknown cadence must be invalid")
	}
}
