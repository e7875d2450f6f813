// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// MODEL
// =========================================================

type User struct {
	// PK
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`

	UserName  string `gorm:"column:user_name;type:varchar(60);not null" json:"user_name"`
	UserEmail string `gorm:"column:user_email;type:varchar(120);not null;uniqueIndex:uniq_user_email" json:"user_email"`

	// bcrypt hash; kosong untuk akun Google-only
	UserPassword *string `gorm:"column:user_password;type:varchar(100)" json:"-"`

	UserRole     string `gorm:"column:user_role;type:varchar(20);not null;default:'member';index:ix_user_role" json:"user_role"`
	UserIsActive bool   `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserGoogleSub *string `gorm:"column:user_google_sub;type:varchar(64);index" json:"-"`

	// Profile ringan (inline, tidak ada tabel profile terpisah)
	UserPhone     *string `gorm:"column:user_phone;type:varchar(30)" json:"user_phone,omitempty"`
	UserJobTitle  *string `gorm:"column:user_job_title;type:varchar(60)" json:"user_job_title,omitempty"`
	UserAvatarURL *string `gorm:"column:user_avatar_url;type:text" json:"user_avatar_url,omitempty"`

	UserLastLoginAt *time.Time `gorm:"column:user_last_login_at" json:"user_last_login_at,omitempty"`

	// Timestamps (eksplisit)
	UserCreatedAt time.Time      `gorm:"column:user_created_at;not null;default:now()" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;not null;default:now()" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// =========================================================
// HOOKS — set timestamps eksplisit
// =========================================================

func (m *User) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.UserCreatedAt.IsZero() {
		m.UserCreatedAt = now
	}
	m.UserUpdatedAt = now
	return nil
}

func (m *User) BeforeUpdate(tx *gorm.DB) (err error) {
	m.UserUpdatedAt = time.Now()
	return nil
}
