// file: internals/features/crm/clients/model/client_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// MODEL
// =========================================================

type Client struct {
	// PK
	ClientID uuid.UUID `gorm:"column:client_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"client_id"`

	ClientName    string  `gorm:"column:client_name;type:varchar(120);not null;index:ix_client_name" json:"client_name"`
	ClientCompany *string `gorm:"column:client_company;type:varchar(120)" json:"client_company,omitempty"`

	ClientEmail *string `gorm:"column:client_email;type:varchar(120)" json:"client_email,omitempty"`
	ClientPhone *string `gorm:"column:client_phone;type:varchar(30)" json:"client_phone,omitempty"`

	ClientAddress *string `gorm:"column:client_address;type:text" json:"client_address,omitempty"`
	ClientSiret   *string `gorm:"column:client_siret;type:varchar(20)" json:"client_siret,omitempty"`
	ClientNotes   *string `gorm:"column:client_notes;type:text" json:"client_notes,omitempty"`

	ClientIsActive bool `gorm:"column:client_is_active;not null;default:true;index:ix_client_is_active" json:"client_is_active"`

	// Timestamps (eksplisit)
	ClientCreatedAt time.Time      `gorm:"column:client_created_at;not null;default:now();index:ix_client_created_at" json:"client_created_at"`
	ClientUpdatedAt time.Time      `gorm:"column:client_updated_at;not null;default:now()" json:"client_updated_at"`
	ClientDeletedAt gorm.DeletedAt `gorm:"column:client_deleted_at;index" json:"-"`
}

func (Client) TableName() string {
	return "clients"
}

// =========================================================
// HOOKS — set timestamps eksplisit
// =========================================================

func (m *Client) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ClientCreatedAt.IsZero() {
		m.ClientCreatedAt = now
	}
	m.ClientUpdatedAt = now
	return nil
}

func (m *Client) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ClientUpdatedAt = time.Now()
	return nil
}
