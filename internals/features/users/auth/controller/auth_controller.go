// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	auditModel "agencehub_backend/internals/features/security/audit/model"
	audit "agencehub_backend/internals/features/security/audit/service"
	authService "agencehub_backend/internals/features/users/auth/service"
	userDTO "agencehub_backend/internals/features/users/user/dto"
	userModel "agencehub_backend/internals/features/users/user/model"
	helpers "agencehub_backend/internals/helpers"
	helperAuth "agencehub_backend/internals/helpers/auth"

	"gorm.io/gorm"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =========================================================
   REQUEST DTO
   ========================================================= */

type RegisterRequest struct {
	UserName     string `json:"user_name" validate:"required,min=2,max=60"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

/* =========================================================
   HANDLERS
   ========================================================= */

// POST /auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	u, err := authService.Register(ctl.DB, req.UserName, req.UserEmail, req.UserPassword)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrEmailTaken):
			return helpers.JsonError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, authService.ErrWeakPassword):
			return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helpers.JsonCreated(c, "registrasi berhasil", userDTO.FromModelUser(u))
}

// POST /auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	u, err := authService.Login(ctl.DB, req.UserEmail, req.UserPassword)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			audit.Record(ctl.DB, nil, auditModel.ActionLoginFailed, "user", nil, c.IP(), req.UserEmail)
			return helpers.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return ctl.issueSession(c, u, auditModel.ActionLogin)
}

// POST /auth/google
func (ctl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	u, err := authService.LoginWithGoogle(ctl.DB, req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrGoogleDisabled):
			return helpers.JsonError(c, fiber.StatusServiceUnavailable, err.Error())
		case errors.Is(err, authService.ErrGoogleTokenInvalid),
			errors.Is(err, authService.ErrInvalidCredentials):
			return helpers.JsonError(c, fiber.StatusUnauthorized, err.Error())
		default:
			return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return ctl.issueSession(c, u, auditModel.ActionLogin)
}

// POST /auth/refresh-token
func (ctl *AuthController) RefreshToken(c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		// fallback body untuk klien non-browser
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		refreshCookie = strings.TrimSpace(body.RefreshToken)
	}
	if refreshCookie == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	u, err := authService.RotateRefreshToken(ctl.DB, refreshCookie)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrRefreshTokenInvalid),
			errors.Is(err, authService.ErrRefreshTokenUnknown):
			return helpers.JsonError(c, fiber.StatusUnauthorized, err.Error())
		default:
			return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return ctl.issueSession(c, u, auditModel.ActionTokenRefresh)
}

// POST /auth/logout (butuh AuthMiddleware)
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString := ""
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 {
		tokenString = strings.TrimSpace(parts[1])
	}
	if tokenString == "" {
		tokenString = strings.TrimSpace(c.Cookies("access_token"))
	}
	if tokenString == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Token tidak ada")
	}

	if err := authService.BlacklistAccessToken(ctl.DB, tokenString); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if userID, err := helperAuth.GetUserIDFromToken(c); err == nil {
		if err := authService.RevokeRefreshTokens(ctl.DB, userID); err != nil {
			log.Printf("[logout] revoke refresh tokens: %v", err)
		}
		actor := userID
		audit.Record(ctl.DB, &actor, auditModel.ActionLogout, "user", &actor, c.IP(), "")
	}

	clearSessionCookies(c)
	return helpers.JsonOK(c, "logout berhasil", nil)
}

// GET /auth/me (butuh AuthMiddleware)
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var u userModel.User
	if err := ctl.DB.First(&u, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helpers.JsonOK(c, "me", userDTO.FromModelUser(&u))
}

/* =========================================================
   INTERNAL
   ========================================================= */

func (ctl *AuthController) issueSession(c *fiber.Ctx, u *userModel.User, auditAction string) error {
	access, err := authService.IssueAccessToken(u)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refresh, err := authService.IssueRefreshToken(ctl.DB, u)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	if err := ctl.DB.Model(&userModel.User{}).
		Where("user_id = ?", u.UserID).
		Update("user_last_login_at", now).Error; err != nil {
		log.Printf("[auth] update last_login: %v", err)
	}

	actor := u.UserID
	audit.Record(ctl.DB, &actor, auditAction, "user", &actor, c.IP(), "")

	// cookie untuk dashboard web + token di body untuk klien API
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Expires:  now.Add(7 * 24 * time.Hour),
	})

	return helpers.JsonOK(c, "login berhasil", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
		"user":          userDTO.FromModelUser(u),
	})
}

func clearSessionCookies(c *fiber.Ctx) {
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Expires:  time.Now().Add(-time.Hour),
		})
	}
}
