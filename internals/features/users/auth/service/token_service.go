// file: internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agencehub_backend/internals/configs"
	authModel "agencehub_backend/internals/features/users/auth/model"
	userModel "agencehub_backend/internals/features/users/user/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

var (
	ErrMissingJWTSecret     = errors.New("JWT secret belum diset")
	ErrRefreshTokenUnknown  = errors.New("refresh token tidak dikenal")
	ErrRefreshTokenInvalid  = errors.New("refresh token invalid")
)

func nowUTC() time.Time { return time.Now().UTC() }

// ========================== ACCESS TOKEN ==========================

func IssueAccessToken(u *userModel.User) (string, error) {
	if configs.JWTSecret == "" {
		return "", ErrMissingJWTSecret
	}
	now := nowUTC()
	claims := jwt.MapClaims{
		"id":        u.UserID.String(),
		"user_name": u.UserName,
		"role":      u.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}

// ========================== REFRESH TOKEN ==========================

// IssueRefreshToken terbitkan refresh JWT + simpan HASH-nya di DB.
func IssueRefreshToken(db *gorm.DB, u *userModel.User) (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", ErrMissingJWTSecret
	}
	now := nowUTC()
	exp := now.Add(refreshTTLDefault)
	claims := jwt.MapClaims{
		"sub": u.UserID.String(),
		"iat": now.Unix(),
		"exp": exp.Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := tok.SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", err
	}

	row := authModel.RefreshToken{
		RefreshTokenUserID: u.UserID,
		Token:              ComputeRefreshHash(raw, configs.JWTRefreshSecret),
		ExpiresAt:          exp,
	}
	if err := db.Create(&row).Error; err != nil {
		return "", err
	}
	return raw, nil
}

// RotateRefreshToken validasi refresh lama, hapus hash-nya, dan kembalikan user ybs.
// Token baru diterbitkan caller via IssueRefreshToken (ROTATE, bukan re-use).
func RotateRefreshToken(db *gorm.DB, rawRefresh string) (*userModel.User, error) {
	secret := configs.JWTRefreshSecret
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	tok, err := jwt.Parse(rawRefresh, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrRefreshTokenInvalid
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrRefreshTokenInvalid
	}

	// Pastikan hash refresh ada di DB
	h := ComputeRefreshHash(rawRefresh, secret)
	var row authModel.RefreshToken
	if err := db.Where("token = ?", h).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenUnknown
		}
		return nil, err
	}
	if nowUTC().After(row.ExpiresAt) {
		_ = db.Delete(&row).Error
		return nil, ErrRefreshTokenInvalid
	}

	// ROTATE: hapus token lama
	if err := db.Delete(&row).Error; err != nil {
		return nil, err
	}

	var u userModel.User
	if err := db.First(&u, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func RevokeRefreshTokens(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("refresh_token_user_id = ?", userID).
		Delete(&authModel.RefreshToken{}).Error
}

func ComputeRefreshHash(raw, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}

// ========================== BLACKLIST ==========================

// BlacklistAccessToken simpan token yang di-logout sampai masa exp-nya lewat.
func BlacklistAccessToken(db *gorm.DB, tokenString string) error {
	exp := nowUTC().Add(accessTTLDefault)

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if expFloat, ok := claims["exp"].(float64); ok {
			exp = time.Unix(int64(expFloat), 0)
		}
	}

	row := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: exp,
	}
	return db.Create(&row).Error
}
