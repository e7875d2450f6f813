// file: internals/features/security/audit/model/security_event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// =========================================================
// ENUM — aksi yang dicatat di security log
// =========================================================

const (
	ActionLogin             = "login"
	ActionLoginFailed       = "login_failed"
	ActionLogout            = "logout"
	ActionTokenRefresh      = "token_refresh"
	ActionInvoiceGenerated  = "invoice_generated"
	ActionRecurringToggled  = "recurring_toggled"
	ActionUserRoleChanged   = "user_role_changed"
	ActionUserDeactivated   = "user_deactivated"
)

// =========================================================
// MODEL — append only, tanpa soft delete & tanpa update
// =========================================================

type SecurityEvent struct {
	SecurityEventID uuid.UUID `gorm:"column:security_event_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"security_event_id"`

	SecurityEventActorID *uuid.UUID `gorm:"column:security_event_actor_id;type:uuid;index" json:"security_event_actor_id,omitempty"`

	SecurityEventAction   string     `gorm:"column:security_event_action;type:varchar(40);not null;index:ix_security_event_action" json:"security_event_action"`
	SecurityEventEntity   *string    `gorm:"column:security_event_entity;type:varchar(40)" json:"security_event_entity,omitempty"`
	SecurityEventEntityID *uuid.UUID `gorm:"column:security_event_entity_id;type:uuid" json:"security_event_entity_id,omitempty"`

	SecurityEventIP     *string `gorm:"column:security_event_ip;type:varchar(45)" json:"security_event_ip,omitempty"`
	SecurityEventDetail *string `gorm:"column:security_event_detail;type:text" json:"security_event_detail,omitempty"`

	SecurityEventCreatedAt time.Time `gorm:"column:security_event_created_at;not null;default:now();index:ix_security_event_created_at" json:"security_event_created_at"`
}

func (SecurityEvent) TableName() string {
	return "security_events"
}
