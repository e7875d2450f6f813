// file: internals/helpers/auth/claims.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"agencehub_backend/internals/constants"
)

var ErrNoUserInContext = errors.New("user tidak ada di context")

// GetUserIDFromToken: ambil user_id (uuid) yang disimpan AuthMiddleware di Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, ErrNoUserInContext
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoUserInContext
	}
	return id, nil
}

func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}

func IsAdmin(c *fiber.Ctx) bool {
	return GetUserRole(c) == constants.RoleAdmin
}

func IsManagerOrAdmin(c *fiber.Ctx) bool {
	role := GetUserRole(c)
	for _, allowed := range constants.ManagerAndAbove {
		if role == allowed {
			return true
		}
	}
	return false
}
