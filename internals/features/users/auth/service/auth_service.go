// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"gorm.io/gorm"

	"agencehub_backend/internals/configs"
	"agencehub_backend/internals/constants"
	userModel "agencehub_backend/internals/features/users/user/model"
)

var (
	ErrInvalidCredentials = errors.New("email atau password salah")
	ErrEmailTaken         = errors.New("email sudah terdaftar")
	ErrGoogleDisabled     = errors.New("login Google belum dikonfigurasi")
	ErrGoogleTokenInvalid = errors.New("Google ID token invalid")
)

// ========================== REGISTER ==========================

func Register(db *gorm.DB, name, email, password string) (*userModel.User, error) {
	email = normalizeEmail(email)

	var count int64
	if err := db.Model(&userModel.User{}).
		Where("user_email = ?", email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := userModel.User{
		UserName:     strings.TrimSpace(name),
		UserEmail:    email,
		UserPassword: &hash,
		UserRole:     constants.RoleMember,
		UserIsActive: true,
	}
	if err := db.Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ========================== LOGIN ==========================

func Login(db *gorm.DB, email, password string) (*userModel.User, error) {
	email = normalizeEmail(email)

	var u userModel.User
	if err := db.First(&u, "user_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if u.UserPassword == nil {
		// akun Google-only
		return nil, ErrInvalidCredentials
	}
	if err := CheckPassword(*u.UserPassword, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.UserIsActive {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// ========================== GOOGLE LOGIN ==========================

// LoginWithGoogle verifikasi ID token dari dashboard, lalu find-or-create user.
func LoginWithGoogle(db *gorm.DB, idToken string) (*userModel.User, error) {
	if configs.GoogleClientID == "" {
		return nil, ErrGoogleDisabled
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, ErrGoogleTokenInvalid
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, ErrGoogleTokenInvalid
	}

	email := normalizeEmail(claimSet.Email)
	if email == "" {
		return nil, ErrGoogleTokenInvalid
	}

	var u userModel.User
	err = db.First(&u, "user_email = ?", email).Error
	switch {
	case err == nil:
		// tautkan sub Google kalau belum
		if u.UserGoogleSub == nil && claimSet.Sub != "" {
			sub := claimSet.Sub
			u.UserGoogleSub = &sub
			if err := db.Save(&u).Error; err != nil {
				return nil, err
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub := claimSet.Sub
		u = userModel.User{
			UserName:      strings.TrimSpace(claimSet.Name),
			UserEmail:     email,
			UserRole:      constants.RoleMember,
			UserIsActive:  true,
			UserGoogleSub: &sub,
		}
		if u.UserName == "" {
			u.UserName = email
		}
		if err := db.Create(&u).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if !u.UserIsActive {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
