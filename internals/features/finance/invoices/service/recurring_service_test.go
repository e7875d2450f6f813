package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	invoiceModel "agencehub_backend/internals/features/finance/invoices/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func datePtr(t time.Time) *time.Time { return &t }

func monthlyTemplate() *invoiceModel.Invoice {
	return &invoiceModel.Invoice{
		InvoiceID:                 uuid.New(),
		InvoiceNumber:             "FAC-2024-0001",
		InvoiceClientID:           uuid.New(),
		InvoiceStatus:             invoiceModel.InvoiceStatusSent,
		InvoiceRecurring:          invoiceModel.CadenceMonthly,
		InvoiceNextGenerationDate: datePtr(date(2024, 3, 1)),
		InvoiceOccurrencesCount:   0,
		InvoiceMaxOccurrences:     intPtr(12),
		InvoiceIssueDate:          date(2024, 2, 1),
		InvoiceDueDate:            date(2024, 3, 2),
		InvoicePaymentTermDays:    30,
		InvoiceLines: []invoiceModel.InvoiceLine{
			{
				InvoiceLineDescription: "Community management",
				InvoiceLineQuantity:    decimal.NewFromInt(1),
				InvoiceLineUnitPriceHT: decimal.RequireFromString("500.00"),
				InvoiceLineVATRate:     decimal.Zero,
				InvoiceLineAmountHT:    decimal.RequireFromString("500.00"),
				InvoiceLineAmountTVA:   decimal.Zero,
				InvoiceLinePosition:    0,
			},
		},
	}
}

func TestAddCadence(t *testing.T) {
	t.Parallel()
	base := date(2024, 1, 15)
	tests := []struct {
		name    string
		cadence invoiceModel.Cadence
		want    time.Time
	}{
		{name: "monthly", cadence: invoiceModel.CadenceMonthly, want: date(2024, 2, 15)},
		{name: "quarterly", cadence: invoiceModel.CadenceQuarterly, want: date(2024, 4, 15)},
		{name: "yearly", cadence: invoiceModel.CadenceYearly, want: date(2025, 1, 15)},
		{name: "one_shot unchanged", cadence: invoiceModel.CadenceOneShot, want: base},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := AddCadence(tt.cadence, base); !got.Equal(tt.want) {
				t.Fatalf("AddCadence(%s) = %v, want %v", tt.cadence, got, tt.want)
			}
		})
	}
}

func TestStatusOf(t *testing.T) {
	t.Parallel()
	now := date(2024, 3, 10)

	tests := []struct {
		name   string
		mutate func(*invoiceModel.Invoice)
		want   RecurringStatus
	}{
		{
			name:   "one_shot is inactive",
			mutate: func(inv *invoiceModel.Invoice) { inv.InvoiceRecurring = invoiceModel.CadenceOneShot },
			want:   RecurringInactive,
		},
		{
			name: "count at cap is completed",
			mutate: func(inv *invoiceModel.Invoice) {
				inv.InvoiceOccurrencesCount = 12
			},
			want: RecurringCompleted,
		},
		{
			name:   "within cadence window is active",
			mutate: func(inv *invoiceModel.Invoice) {},
			want:   RecurringActive,
		},
		{
			name: "more than one interval late is expired",
			mutate: func(inv *invoiceModel.Invoice) {
				inv.InvoiceNextGenerationDate = datePtr(date(2024, 2, 1))
			},
			want: RecurringExpired,
		},
		{
			name: "exactly one interval late is still active",
			mutate: func(inv *invoiceModel.Invoice) {
				// next+1 bulan = 2024-03-10 = now, belum lewat
				inv.InvoiceNextGenerationDate = datePtr(date(2024, 2, 10))
			},
			want: RecurringActive,
		},
		{
			name: "no next date stays active",
			mutate: func(inv *invoiceModel.Invoice) {
				inv.InvoiceNextGenerationDate = nil
			},
			want: RecurringActive,
		},
		{
			name: "completed wins over expired",
			mutate: func(inv *invoiceModel.Invoice) {
				inv.InvoiceOccurrencesCount = 12
				inv.InvoiceNextGenerationDate = datePtr(date(2023, 1, 1))
			},
			want: RecurringCompleted,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			inv := monthlyTemplate()
			tt.mutate(inv)
			got := StatusOf(inv, now)
			if got != tt.want {
				t.Fatalf("StatusOf = %s, want %s", got, tt.want)
			}
			// derivasi murni: panggilan kedua hasilnya sama
			if again := StatusOf(inv, now); again != got {
				t.Fatalf("StatusOf not stable: %s then %s", got, again)
			}
		})
	}
}

func TestCanGenerate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*invoiceModel.Invoice)
		want   bool
	}{
		{name: "active under cap", mutate: func(inv *invoiceModel.Invoice) {}, want: true},
		{
			name:   "unbounded",
			mutate: func(inv *invoiceModel.Invoice) { inv.InvoiceMaxOccurrences = nil },
			want:   true,
		},
		{
			name:   "at cap",
			mutate: func(inv *invoiceModel.Invoice) { inv.InvoiceOccurrencesCount = 12 },
			want:   false,
		},
		{
			name:   "one_shot",
			mutate: func(inv *invoiceModel.Invoice) { inv.InvoiceRecurring = invoiceModel.CadenceOneShot },
			want:   false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			inv := monthlyTemplate()
			tt.mutate(inv)
			if got := CanGenerate(inv); got != tt.want {
				t.Fatalf("CanGenerate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildOccurrenceFromTemplate(t *testing.T) {
	t.Parallel()
	tpl := monthlyTemplate()
	now := date(2024, 3, 10)

	occ := BuildOccurrence(tpl, "FAC-2024-0002", now)

	// issue date mengikuti next_generation_date template, bukan hari ini
	if !occ.InvoiceIssueDate.Equal(date(2024, 3, 1)) {
		t.Fatalf("issue date = %v, want 2024-03-01", occ.InvoiceIssueDate)
	}
	if !occ.InvoiceDueDate.Equal(date(2024, 3, 31)) {
		t.Fatalf("due date = %v, want 2024-03-31", occ.InvoiceDueDate)
	}
	if occ.InvoiceRecurring != invoiceModel.CadenceOneShot {
		t.Fatalf("occurrence recurring = %s, want one_shot", occ.InvoiceRecurring)
	}
	if occ.InvoiceStatus != invoiceModel.InvoiceStatusDraft {
		t.Fatalf("occurrence status = %s, want draft", occ.InvoiceStatus)
	}
	if occ.InvoiceTemplateID == nil || *occ.InvoiceTemplateID != tpl.InvoiceID {
		t.Fatal("occurrence must link back to its template")
	}
	if !occ.InvoiceTotalTTC.Equal(decimal.RequireFromString("500.00")) {
		t.Fatalf("total TTC = %s, want 500.00", occ.InvoiceTotalTTC)
	}

	// baris tersalin value-equal, urutan sama
	if len(occ.InvoiceLines) != len(tpl.InvoiceLines) {
		t.Fatalf("line count = %d, want %d", len(occ.InvoiceLines), len(tpl.InvoiceLines))
	}
	for i := range occ.InvoiceLines {
		got, want := occ.InvoiceLines[i], tpl.InvoiceLines[i]
		if got.InvoiceLineDescription != want.InvoiceLineDescription ||
			!got.InvoiceLineQuantity.Equal(want.InvoiceLineQuantity) ||
			!got.InvoiceLineUnitPriceHT.Equal(want.InvoiceLineUnitPriceHT) ||
			got.InvoiceLinePosition != want.InvoiceLinePosition {
			t.Fatalf("line %d not a faithful copy", i)
		}
	}

	// mutasi salinan tidak boleh menyentuh template
	occ.InvoiceLines[0].InvoiceLineDescription = "changed"
	if tpl.InvoiceLines[0].InvoiceLineDescription == "changed" {
		t.Fatal("template lines mutated through the occurrence copy")
	}
}

func TestBuildOccurrenceWithoutNextDateUsesNow(t *testing.T) {
	t.Parallel()
	tpl := monthlyTemplate()
	tpl.InvoiceNextGenerationDate = nil
	now := date(2024, 5, 20)

	occ := BuildOccurrence(tpl, "FAC-2024-0003", now)
	if !occ.InvoiceIssueDate.Equal(now) {
		t.Fatalf("issue date = %v, want %v", occ.InvoiceIssueDate, now)
	}
}

func TestAdvanceTemplateCadence(t *testing.T) {
	t.Parallel()
	tpl := monthlyTemplate()
	tpl.InvoiceNextGenerationDate = datePtr(date(2024, 1, 15))

	AdvanceTemplate(tpl, date(2024, 1, 15))

	if tpl.InvoiceOccurrencesCount != 1 {
		t.Fatalf("occurrences_count = %d, want 1", tpl.InvoiceOccurrencesCount)
	}
	if tpl.InvoiceNextGenerationDate == nil || !tpl.InvoiceNextGenerationDate.Equal(date(2024, 2, 15)) {
		t.Fatalf("next_generation_date = %v, want 2024-02-15", tpl.InvoiceNextGenerationDate)
	}
}

func TestAdvanceTemplateCompletionBoundary(t *testing.T) {
	t.Parallel()
	tpl := monthlyTemplate()
	tpl.InvoiceOccurrencesCount = 2
	tpl.InvoiceMaxOccurrences = intPtr(3)

	AdvanceTemplate(tpl, date(2024, 3, 1))

	if tpl.InvoiceOccurrencesCount != 3 {
		t.Fatalf("occurrences_count = %d, want 3", tpl.InvoiceOccurrencesCount)
	}
	if tpl.InvoiceNextGenerationDate != nil {
		t.Fatalf("next_generation_date = %v, want nil at cap", tpl.InvoiceNextGenerationDate)
	}
	// cadence tidak diubah, completed murni turunan
	if tpl.InvoiceRecurring != invoiceModel.CadenceMonthly {
		t.Fatalf("recurring = %s, want monthly", tpl.InvoiceRecurring)
	}
	if got := StatusOf(tpl, date(2024, 3, 2)); got != RecurringCompleted {
		t.Fatalf("StatusOf = %s, want completed", got)
	}
	if CanGenerate(tpl) {
		t.Fatal("CanGenerate must be false once the cap is reached")
	}
}

func TestAdvanceTemplateUnbounded(t *testing.T) {
	t.Parallel()
	tpl := monthlyTemplate()
	tpl.InvoiceMaxOccurrences = nil
	tpl.InvoiceNextGenerationDate = datePtr(date(2024, 1, 1))

	for i := 1; i <= 24; i++ {
		AdvanceTemplate(tpl, *tpl.InvoiceNextGenerationDate)
		if tpl.InvoiceNextGenerationDate == nil {
			t.Fatalf("iteration %d: next_generation_date cleared without a cap", i)
		}
		if got := StatusOf(tpl, *tpl.InvoiceNextGenerationDate); got == RecurringCompleted {
			t.Fatalf("iteration %d: unbounded template must never complete", i)
		}
	}
	if tpl.InvoiceOccurrencesCount != 24 {
		t.Fatalf("occurrences_count = %d, want 24", tpl.InvoiceOccurrencesCount)
	}
	if !tpl.InvoiceNextGenerationDate.Equal(date(2026, 1, 1)) {
		t.Fatalf("next_generation_date = %v, want 2026-01-01", tpl.InvoiceNextGenerationDate)
	}
}

// Skenario utuh: template monthly 500 TTC, cap 12, next 2024-03-01.
func TestGenerateScenario(t *testing.T) {
	t.Parallel()
	tpl := monthlyTemplate()
	now := date(2024, 3, 1)

	occ := BuildOccurrence(tpl, "FAC-2024-0002", now)
	AdvanceTemplate(tpl, occ.InvoiceIssueDate)

	if !occ.InvoiceTotalTTC.Equal(decimal.RequireFromString("500.00")) {
		t.Fatalf("occurrence TTC = %s, want 500.00", occ.InvoiceTotalTTC)
	}
	if occ.InvoiceRecurring != invoiceModel.CadenceOneShot {
		t.Fatalf("occurrence recurring = %s, want one_shot", occ.InvoiceRecurring)
	}
	if !occ.InvoiceIssueDate.Equal(date(2024, 3, 1)) {
		t.Fatalf("occurrence issue = %v, want 2024-03-01", occ.InvoiceIssueDate)
	}
	if tpl.InvoiceOccurrencesCount != 1 {
		t.Fatalf("template count = %d, want 1", tpl.InvoiceOccurrencesCount)
	}
	if tpl.InvoiceNextGenerationDate == nil || !tpl.InvoiceNextGenerationDate.Equal(date(2024, 4, 1)) {
		t.Fatalf("template next = %v, want 2024-04-01", tpl.InvoiceNextGenerationDate)
	}
	if got := StatusOf(tpl, now); got != RecurringActive {
		t.Fatalf("template status = %s, want active", got)
	}
}

func TestFlipCadenceRoundTrip(t *testing.T) {
	t.Parallel()

	// monthly → off menyimpan cadence lama
	next, paused := FlipCadence(invoiceModel.CadenceQuarterly, nil)
	if next != invoiceModel.CadenceOneShot {
		t.Fatalf("flip off = %s, want one_shot", next)
	}
	if paused == nil || *paused != invoiceModel.CadenceQuarterly {
		t.Fatalf("paused = %v, want quarterly", paused)
	}

	// off → on memulihkan cadence tersimpan, bukan default monthly
	next, paused = FlipCadence(next, paused)
	if next != invoiceModel.CadenceQuarterly {
		t.Fatalf("flip on = %s, want quarterly restored", next)
	}
	if paused != nil {
		t.Fatalf("paused after restore = %v, want nil", paused)
	}
}

func TestFlipCadenceDefaultsToMonthly(t *testing.T) {
	t.Parallel()
	next, paused := FlipCadence(invoiceModel.CadenceOneShot, nil)
	if next != invoiceModel.CadenceMonthly {
		t.Fatalf("flip on without history = %s, want monthly", next)
	}
	if paused != nil {
		t.Fatalf("paused = %v, want nil", paused)
	}
}

func TestMaxInvoiceSeq(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		numbers []string
		want    int
	}{
		{
			name:    "tahun kosong mulai dari nol",
			numbers: nil,
			want:    0,
		},
		{
			name:    "suffix berpadding dibaca numerik",
			numbers: []string{"FAC-2025-0001", "FAC-2025-0042", "FAC-2025-0007"},
			want:    42,
		},
		{
			// leksikal "10000" < "9999"; urutan numerik harus menang
			name:    "lima digit mengalahkan empat digit",
			numbers: []string{"FAC-2025-9999", "FAC-2025-10000"},
			want:    10000,
		},
		{
			name:    "nomor tahun lain dan sampah diabaikan",
			numbers: []string{"FAC-2024-0099", "bukan-nomor", "FAC-2025-0003"},
			want:    3,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := maxInvoiceSeq("FAC-2025-", tc.numbers); got != tc.want {
				t.Fatalf("maxInvoiceSeq = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestMaxInvoiceSeqFormatsNextNumber(t *testing.T) {
	t.Parallel()

	prefix := "FAC-2025-"
	seq := maxInvoiceSeq(prefix, []string{"FAC-2025-9999", "FAC-2025-10000"})
	if got := fmt.Sprintf("%s%04d", prefix, seq+1); got != "FAC-2025-10001" {
		t.Fatalf("next number = %s, want FAC-2025-10001", got)
	}
}
