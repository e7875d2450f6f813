// file: internals/features/finance/invoices/scheduler/recurring_sweep.go
package scheduler

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	invoiceService "agencehub_backend/internals/features/finance/invoices/service"
)

// Sweep membungkus cron harian yang menggenerate semua template
// recurring yang sudah jatuh tempo.
type Sweep struct {
	cron *cron.Cron
	svc  *invoiceService.RecurringService
}

// StartRecurringSweep menjadwalkan sweep harian (default 02:00,
// override lewat RECURRING_SWEEP_CRON) dan langsung menjalankan
// satu putaran saat start supaya tunggakan tidak menunggu besok.
func StartRecurringSweep(db *gorm.DB) *Sweep {
	spec := os.Getenv("RECURRING_SWEEP_CRON")
	if spec == "" {
		spec = "0 2 * * *"
	}

	s := &Sweep{
		cron: cron.New(),
		svc:  invoiceService.NewRecurringService(db),
	}

	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		log.Printf("[ERROR] jadwal sweep tidak valid (%q): %v", spec, err)
		return s
	}
	s.cron.Start()
	log.Printf("[INFO] ✅ Recurring sweep aktif (cron %q)", spec)

	go s.runOnce()
	return s
}

// Stop menghentikan cron dan menunggu job yang sedang berjalan.
func (s *Sweep) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *Sweep) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	now := time.Now()
	ids, err := s.svc.DueTemplateIDs(ctx, now)
	if err != nil {
		log.Printf("[ERROR] sweep: gagal mengambil template jatuh tempo: %v", err)
		return
	}
	if len(ids) == 0 {
		return
	}

	generated := 0
	for _, id := range ids {
		occ, err := s.svc.Generate(ctx, id, now)
		switch {
		case err == nil:
			generated++
			log.Printf("[INFO] sweep: %s digenerate dari template %s", occ.InvoiceNumber, id)
		case errors.Is(err, invoiceService.ErrCannotGenerate),
			errors.Is(err, invoiceService.ErrInvoiceNotFound):
			// template keburu berubah sejak daftar diambil, lewati
		default:
			log.Printf("[ERROR] sweep: template %s: %v", id, err)
		}
	}
	log.Printf("[CLEANUP] sweep selesai: %d/%d template digenerate", generated, len(ids))
}
