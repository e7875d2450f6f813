// file: internals/features/crm/mandates/model/mandate_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — status mandat
// =========================================================

type MandateStatus string

const (
	MandateStatusDraft  MandateStatus = "draft"
	MandateStatusActive MandateStatus = "active"
	MandateStatusPaused MandateStatus = "paused"
	MandateStatusEnded  MandateStatus = "ended"
)

func (s MandateStatus) Valid() bool {
	switch s {
	case MandateStatusDraft, MandateStatusActive, MandateStatusPaused, MandateStatusEnded:
		return true
	}
	return false
}

// =========================================================
// MODEL
// =========================================================

type Mandate struct {
	// PK
	MandateID uuid.UUID `gorm:"column:mandate_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"mandate_id"`

	// FK → clients(client_id)
	MandateClientID uuid.UUID `gorm:"column:mandate_client_id;type:uuid;not null;index:ix_mandate_client" json:"mandate_client_id"`

	MandateTitle string  `gorm:"column:mandate_title;type:varchar(160);not null" json:"mandate_title"`
	MandateDesc  *string `gorm:"column:mandate_desc;type:text" json:"mandate_desc,omitempty"`

	// Platform social media yang dikelola (instagram, tiktok, linkedin, ...)
	MandatePlatforms pq.StringArray `gorm:"column:mandate_platforms;type:text[]" json:"mandate_platforms"`

	MandateMonthlyBudget decimal.Decimal `gorm:"column:mandate_monthly_budget;type:numeric(12,2);not null;default:0" json:"mandate_monthly_budget"`

	MandateStartDate *time.Time `gorm:"column:mandate_start_date;type:date" json:"mandate_start_date,omitempty"`
	MandateEndDate   *time.Time `gorm:"column:mandate_end_date;type:date" json:"mandate_end_date,omitempty"`

	MandateStatus MandateStatus `gorm:"column:mandate_status;type:varchar(20);not null;default:'draft';index:ix_mandate_status" json:"mandate_status"`

	// Timestamps (eksplisit)
	MandateCreatedAt time.Time      `gorm:"column:mandate_created_at;not null;default:now()" json:"mandate_created_at"`
	MandateUpdatedAt time.Time      `gorm:"column:mandate_updated_at;not null;default:now()" json:"mandate_updated_at"`
	MandateDeletedAt gorm.DeletedAt `gorm:"column:mandate_deleted_at;index" json:"-"`
}

func (Mandate) TableName() string {
	return "mandates"
}

// =========================================================
// HOOKS
// =========================================================

func (m *Mandate) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.MandateCreatedAt.IsZero() {
		m.MandateCreatedAt = now
	}
	m.MandateUpdatedAt = now
	return nil
}

func (m *Mandate) BeforeUpdate(tx *gorm.DB) (err error) {
	m.MandateUpdatedAt = time.Now()
	return nil
}
