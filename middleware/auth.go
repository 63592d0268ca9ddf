package middleware

import (
	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"

	"github.com/letterquest/reader_api/services"
	"github.com/letterquest/reader_api/shared"
)

type AuthMiddleware struct {
	context.DefaultService

	sqlSvc *services.SqliteService
	jwtSvc *services.JWTService
}

const AUTH_MIDDLEWARE_SVC = "auth"

func (svc AuthMiddleware) Id() string {
	return AUTH_MIDDLEWARE_SVC
}

func (svc *AuthMiddleware) Start() error {
	svc.sqlSvc = svc.Service(services.SQLITE_SVC).(*services.SqliteService)
	svc.jwtSvc = svc.Service(services.JWT_SVC).(*services.JWTService)
	return nil
}

func (svc *AuthMiddleware) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		token, err := svc.jwtSvc.ExtractTokenFromHeader(authHeader)
		if err != nil {
			return shared.ResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}

		userID, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil {
			return shared.ResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", "Invalid JWT token")
		}

		if userID == "" {
			return shared.ResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", "Invalid user ID in token")
		}

		c.Locals(shared.UserID, userID)
		return c.Next()
	}
}

// RequireRole restricts an endpoint to users with the given role. It must be
// chained after RequiredAuth.
func (svc *AuthMiddleware) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals(shared.UserID).(string)
		if !ok || userID == "" {
			return shared.ResponseUnauthorized(c)
		}

		user, err := svc.sqlSvc.GetUser(userID)
		if err != nil {
			return shared.ResponseUnauthorized(c)
		}

		if user.Role != role {
			return shared.NewForbiddenError(nil, "Insufficient permissions")
		}

		return c.Next()
	}
}
