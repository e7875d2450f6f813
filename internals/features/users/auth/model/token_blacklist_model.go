// file: internals/features/users/auth/model/token_blacklist_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist menyimpan access token yang sudah di-logout supaya
// tidak bisa dipakai lagi sebelum expired.
type TokenBlacklist struct {
	TokenBlacklistID uuid.UUID `gorm:"column:token_blacklist_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"token_blacklist_id"`

	Token     string    `gorm:"column:token;type:text;not null;uniqueIndex:uniq_blacklist_token" json:"token"`
	ExpiredAt time.Time `gorm:"column:expired_at;not null;index" json:"expired_at"`

	CreatedAt time.Time      `gorm:"column:created_at;not null;default:now()" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
