// file: internals/features/crm/packages/model/package_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ServicePackage struct {
	// PK
	PackageID uuid.UUID `gorm:"column:package_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"package_id"`

	PackageName string  `gorm:"column:package_name;type:varchar(120);not null" json:"package_name"`
	PackageDesc *string `gorm:"column:package_desc;type:text" json:"package_desc,omitempty"`

	// Livrables inclus (posts/mois, stories, reporting, ...)
	PackageDeliverables pq.StringArray `gorm:"column:package_deliverables;type:text[]" json:"package_deliverables"`

	PackageMonthlyPrice decimal.Decimal `gorm:"column:package_monthly_price;type:numeric(12,2);not null;default:0" json:"package_monthly_price"`

	PackageIsActive bool `gorm:"column:package_is_active;not null;default:true" json:"package_is_active"`

	PackageCreatedAt time.Time      `gorm:"column:package_created_at;not null;default:now()" json:"package_created_at"`
	PackageUpdatedAt time.Time      `gorm:"column:package_updated_at;not null;default:now()" json:"package_updated_at"`
	PackageDeletedAt gorm.DeletedAt `gorm:"column:package_deleted_at;index" json:"-"`
}

func (ServicePackage) TableName() string {
	return "service_packages"
}

func (m *ServicePackage) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.PackageCreatedAt.IsZero() {
		m.PackageCreatedAt = now
	}
	m.PackageUpdatedAt = now
	return nil
}

func (m *ServicePackage) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PackageUpdatedAt = time.Now()
	return nil
}
