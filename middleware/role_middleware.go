package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "fnb-tracking-backend/lib/utils/auth-utils"
	"fnb-tracking-backend/models"
	apimodels "fnb-tracking-backend/models/api"
)

func AdminRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation requires administrator role"))
		}
		return ctx.Next()
	}
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetUserFNumber(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if fNumber, exist := claims["f_number"]; exist {
		return fNumber.(string)
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}
