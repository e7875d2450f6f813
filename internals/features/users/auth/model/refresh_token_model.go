// file: internals/features/users/auth/model/refresh_token_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken menyimpan HASH refresh token (bukan token mentah).
type RefreshToken struct {
	RefreshTokenID uuid.UUID `gorm:"column:refresh_token_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"refresh_token_id"`

	RefreshTokenUserID uuid.UUID `gorm:"column:refresh_token_user_id;type:uuid;not null;index" json:"refresh_token_user_id"`
	Token              string    `gorm:"column:token;type:varchar(128);not null;uniqueIndex:uniq_refresh_token" json:"-"`
	ExpiresAt          time.Time `gorm:"column:expires_at;not null;index" json:"expires_at"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()" json:"created_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
