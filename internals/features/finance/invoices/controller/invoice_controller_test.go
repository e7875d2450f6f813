package controller

import (
	"testing"

	invoiceModel "agencehub_backend/internals/features/finance/invoices/model"
)

func TestValidStatusTransition(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		from invoiceModel.InvoiceStatus
		to   invoiceModel.InvoiceStatus
		want bool
	}{
		{name: "draft to sent", from: invoiceModel.InvoiceStatusDraft, to: invoiceModel.InvoiceStatusSent, want: true},
		{name: "draft to cancelled", from: invoiceModel.InvoiceStatusDraft, to: invoiceModel.InvoiceStatusCancelled, want: true},
		{name: "draft straight to paid", from: invoiceModel.InvoiceStatusDraft, to: invoiceModel.InvoiceStatusPaid, want: false},
		{name: "sent to paid", from: invoiceModel.InvoiceStatusSent, to: invoiceModel.InvoiceStatusPaid, want: true},
		{name: "sent to cancelled", from: invoiceModel.InvoiceStatusSent, to: invoiceModel.InvoiceStatusCancelled, want: true},
		{name: "sent back to draft", from: invoiceModel.InvoiceStatusSent, to: invoiceModel.InvoiceStatusDraft, want: false},
		{name: "paid is final", from: invoiceModel.InvoiceStatusPaid, to: invoiceModel.InvoiceStatusCancelled, want: false},
		{name: "cancelled is final", from: invoiceModel.InvoiceStatusCancelled, to: invoiceModel.InvoiceStatusDraft, want: false},
		{name: "same status is a no-op", from: invoiceModel.InvoiceStatusSent, to: invoiceModel.InvoiceStatusSent, want: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := validStatusTransition(tt.from, tt.to); got != tt.want {
				t.Fatalf("validStatusTransition(%s→%s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
