// file: internals/features/finance/invoices/service/recurring_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	invoiceModel "agencehub_backend/internals/features/finance/invoices/model"
)

// =========================================================
// STATUS TURUNAN — dihitung dari field, tidak disimpan
// =========================================================

type RecurringStatus string

const (
	RecurringInactive  RecurringStatus = "inactive"
	RecurringActive    RecurringStatus = "active"
	RecurringCompleted RecurringStatus = "completed"
	RecurringExpired   RecurringStatus = "expired"
)

var (
	ErrInvoiceNotFound = errors.New("invoice tidak ditemukan")
	ErrCannotGenerate  = errors.New("invoice bukan template recurring yang masih bisa digenerate")
)

// RecurringService memusatkan seluruh mutasi recurrence; semua
// call site lewat sini supaya invariannya satu pintu.
type RecurringService struct {
	DB *gorm.DB
}

func NewRecurringService(db *gorm.DB) *RecurringService {
	return &RecurringService{DB: db}
}

// =========================================================
// FUNGSI MURNI
// =========================================================

// AddCadence menggeser tanggal satu interval sesuai cadence.
func AddCadence(c invoiceModel.Cadence, t time.Time) time.Time {
	switch c {
	case invoiceModel.CadenceMonthly:
		return t.AddDate(0, 1, 0)
	case invoiceModel.CadenceQuarterly:
		return t.AddDate(0, 3, 0)
	case invoiceModel.CadenceYearly:
		return t.AddDate(1, 0, 0)
	default:
		return t
	}
}

// CanGenerate: template recurring dan kuota occurrence belum habis.
func CanGenerate(inv *invoiceModel.Invoice) bool {
	if !inv.InvoiceRecurring.IsRecurring() {
		return false
	}
	if inv.InvoiceMaxOccurrences == nil {
		return true
	}
	return inv.InvoiceOccurrencesCount < *inv.InvoiceMaxOccurrences
}

// StatusOf menurunkan status recurrence dari field mentah.
//
// Aturan expired: next_generation_date terisi dan sudah lewat lebih
// dari satu interval cadence penuh dari `now` — artinya minimal satu
// siklus terlewat tanpa ada generate.
func StatusOf(inv *invoiceModel.Invoice, now time.Time) RecurringStatus {
	if !inv.InvoiceRecurring.IsRecurring() {
		return RecurringInactive
	}
	if inv.InvoiceMaxOccurrences != nil && inv.InvoiceOccurrencesCount >= *inv.InvoiceMaxOccurrences {
		return RecurringCompleted
	}
	if inv.InvoiceNextGenerationDate != nil {
		staleAfter := AddCadence(inv.InvoiceRecurring, *inv.InvoiceNextGenerationDate)
		if now.After(staleAfter) {
			return RecurringExpired
		}
	}
	return RecurringActive
}

// BuildOccurrence menyusun occurrence baru dari template, tanpa I/O.
// issue date = next_generation_date template kalau ada, selain itu `now`.
func BuildOccurrence(tpl *invoiceModel.Invoice, number string, now time.Time) *invoiceModel.Invoice {
	issue := now
	if tpl.InvoiceNextGenerationDate != nil {
		issue = *tpl.InvoiceNextGenerationDate
	}

	lines := make([]invoiceModel.InvoiceLine, 0, len(tpl.InvoiceLines))
	for _, l := range tpl.InvoiceLines {
		lines = append(lines, l.CloneForOccurrence())
	}

	occ := &invoiceModel.Invoice{
		InvoiceNumber:          number,
		InvoiceClientID:        tpl.InvoiceClientID,
		InvoiceClientSnapshot:  tpl.InvoiceClientSnapshot,
		InvoiceStatus:          invoiceModel.InvoiceStatusDraft,
		InvoiceRecurring:       invoiceModel.CadenceOneShot, // occurrence tidak pernah recurring
		InvoiceTemplateID:      &tpl.InvoiceID,
		InvoiceIssueDate:       issue,
		InvoiceDueDate:         issue.AddDate(0, 0, tpl.InvoicePaymentTermDays),
		InvoicePaymentTermDays: tpl.InvoicePaymentTermDays,
		InvoiceNotes:           tpl.InvoiceNotes,
		InvoiceLines:           lines,
	}
	occ.RecomputeTotals()
	return occ
}

// AdvanceTemplate memajukan counter & next_generation_date template
// setelah satu occurrence dibuat. Mutasi in-memory saja.
func AdvanceTemplate(tpl *invoiceModel.Invoice, issueUsed time.Time) {
	tpl.InvoiceOccurrencesCount++

	base := issueUsed
	if tpl.InvoiceNextGenerationDate != nil {
		base = *tpl.InvoiceNextGenerationDate
	}
	next := AddCadence(tpl.InvoiceRecurring, base)
	tpl.InvoiceNextGenerationDate = &next

	// kuota tercapai: recurrence selesai secara alami, cadence tetap
	if tpl.InvoiceMaxOccurrences != nil && tpl.InvoiceOccurrencesCount >= *tpl.InvoiceMaxOccurrences {
		tpl.InvoiceNextGenerationDate = nil
	}
}

// FlipCadence menentukan cadence hasil toggle.
// Mati → paused_cadence terisi cadence lama; hidup lagi → cadence lama
// dipulihkan (fallback monthly kalau tidak ada yang tersimpan).
func FlipCadence(current invoiceModel.Cadence, paused *invoiceModel.Cadence) (next invoiceModel.Cadence, nextPaused *invoiceModel.Cadence) {
	if current.IsRecurring() {
		prev := current
		return invoiceModel.CadenceOneShot, &prev
	}
	restored := invoiceModel.CadenceMonthly
	if paused != nil && paused.IsRecurring() {
		restored = *paused
	}
	return restored, nil
}

// =========================================================
// OPERASI BER-DB
// =========================================================

// NextInvoiceNumber menghasilkan nomor FAC-YYYY-NNNN berurutan per tahun.
// Harus dipanggil di dalam transaksi yang sama dengan insert-nya.
func NextInvoiceNumber(tx *gorm.DB, now time.Time) (string, error) {
	prefix := fmt.Sprintf("FAC-%d-", now.Year())

	var numbers []string
	err := tx.Model(&invoiceModel.Invoice{}).
		Where("invoice_number LIKE ?", prefix+"%").
		Pluck("invoice_number", &numbers).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%04d", prefix, maxInvoiceSeq(prefix, numbers)+1), nil
}

// maxInvoiceSeq membandingkan suffix secara numerik, bukan leksikal,
// supaya urutan tetap benar setelah melewati 9999.
func maxInvoiceSeq(prefix string, numbers []string) int {
	max := 0
	for _, s := range numbers {
		var n int
		if _, err := fmt.Sscanf(s, prefix+"%d", &n); err == nil && n > max {
			max = n
		}
	}
	return max
}

// Generate membuat satu occurrence dari template `id`.
//
// Template dikunci (SELECT ... FOR UPDATE) dan preconditionnya dicek
// ulang di dalam transaksi, jadi dua pemanggilan bersamaan tidak bisa
// sama-sama lolos lalu menghasilkan occurrence ganda atau melampaui
// max_occurrences. Insert occurrence dan update template commit bareng
// atau tidak sama sekali.
func (s *RecurringService) Generate(ctx context.Context, id uuid.UUID, now time.Time) (*invoiceModel.Invoice, error) {
	var occ *invoiceModel.Invoice

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tpl invoiceModel.Invoice
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("InvoiceLines", func(db *gorm.DB) *gorm.DB {
				return db.Order("invoice_line_position ASC")
			}).
			First(&tpl, "invoice_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvoiceNotFound
			}
			return err
		}

		if !CanGenerate(&tpl) {
			return ErrCannotGenerate
		}

		number, err := NextInvoiceNumber(tx, now)
		if err != nil {
			return err
		}

		occ = BuildOccurrence(&tpl, number, now)
		if err := tx.Create(occ).Error; err != nil {
			return err
		}

		AdvanceTemplate(&tpl, occ.InvoiceIssueDate)
		return tx.Model(&invoiceModel.Invoice{}).
			Where("invoice_id = ?", tpl.InvoiceID).
			Updates(map[string]interface{}{
				"invoice_occurrences_count":    tpl.InvoiceOccurrencesCount,
				"invoice_next_generation_date": tpl.InvoiceNextGenerationDate,
				"invoice_updated_at":           time.Now(),
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return occ, nil
}

// ToggleRecurring membalik recurrence on/off.
//
// Saat dimatikan, cadence aktif disimpan ke paused_cadence supaya
// toggle berikutnya memulihkan cadence semula (bukan selalu monthly).
// Counter dan next_generation_date sengaja tidak disentuh.
func (s *RecurringService) ToggleRecurring(ctx context.Context, id uuid.UUID) (*invoiceModel.Invoice, error) {
	var inv invoiceModel.Invoice

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&inv, "invoice_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvoiceNotFound
			}
			return err
		}

		inv.InvoiceRecurring, inv.InvoicePausedCadence = FlipCadence(inv.InvoiceRecurring, inv.InvoicePausedCadence)

		return tx.Model(&invoiceModel.Invoice{}).
			Where("invoice_id = ?", inv.InvoiceID).
			Updates(map[string]interface{}{
				"invoice_recurring":      inv.InvoiceRecurring,
				"invoice_paused_cadence": inv.InvoicePausedCadence,
				"invoice_updated_at":     time.Now(),
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// DueTemplateIDs mengambil semua template yang jatuh tempo untuk sweep.
func (s *RecurringService) DueTemplateIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Model(&invoiceModel.Invoice{}).
		Where("invoice_recurring <> ?", invoiceModel.CadenceOneShot).
		Where("invoice_next_generation_date IS NOT NULL AND invoice_next_generation_date <= ?", now).
		Pluck("invoice_id", &ids).Error
	return ids, err
}
