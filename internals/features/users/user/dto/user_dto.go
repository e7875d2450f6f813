// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "agencehub_backend/internals/features/users/user/model"
)

/* =========================================================
   REQUEST: Patch (partial update, pointer = opsional)
   ========================================================= */

type PatchUserRequest struct {
	UserName     *string `json:"user_name" validate:"omitempty,min=2,max=60"`
	UserRole     *string `json:"user_role" validate:"omitempty,oneof=admin manager member"`
	UserIsActive *bool   `json:"user_is_active"`
	UserPhone    *string `json:"user_phone" validate:"omitempty,max=30"`
	UserJobTitle *string `json:"user_job_title" validate:"omitempty,max=60"`
}

func (r *PatchUserRequest) ApplyTo(u *model.User) {
	if r.UserName != nil {
		u.UserName = *r.UserName
	}
	if r.UserRole != nil {
		u.UserRole = *r.UserRole
	}
	if r.UserIsActive != nil {
		u.UserIsActive = *r.UserIsActive
	}
	if r.UserPhone != nil {
		u.UserPhone = r.UserPhone
	}
	if r.UserJobTitle != nil {
		u.UserJobTitle = r.UserJobTitle
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type UserResponse struct {
	UserID        uuid.UUID  `json:"user_id"`
	UserName      string     `json:"user_name"`
	UserEmail     string     `json:"user_email"`
	UserRole      string     `json:"user_role"`
	UserIsActive  bool       `json:"user_is_active"`
	UserPhone     *string    `json:"user_phone,omitempty"`
	UserJobTitle  *string    `json:"user_job_title,omitempty"`
	UserAvatarURL *string    `json:"user_avatar_url,omitempty"`
	UserLastLogin *time.Time `json:"user_last_login_at,omitempty"`
	UserCreatedAt time.Time  `json:"user_created_at"`
}

func FromModelUser(m *model.User) *UserResponse {
	return &UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserIsActive:  m.UserIsActive,
		UserPhone:     m.UserPhone,
		UserJobTitle:  m.UserJobTitle,
		UserAvatarURL: m.UserAvatarURL,
		UserLastLogin: m.UserLastLoginAt,
		UserCreatedAt: m.UserCreatedAt,
	}
}

func FromModelUsers(ms []model.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelUser(&ms[i]))
	}
	return out
}
