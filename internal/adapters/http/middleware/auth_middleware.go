package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/config"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/core/domain"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/jwt"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/response"
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := extractToken(c)
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RoleAtLeast creates authorization middleware that requires the caller's
// role to rank at or above minRole in the admin hierarchy.
func RoleAtLeast(minRole domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleStr, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		role := domain.Role(roleStr)
		if !role.Valid() || role.Rank() < minRole.Rank() {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}

		return c.Next()
	}
}

// GlobalOnly allows only global admins
func GlobalOnly() fiber.Handler {
	return RoleAtLeast(domain.RoleGlobal)
}

// CommunityOrAbove allows community rank and above
func CommunityOrAbove() fiber.Handler {
	return RoleAtLeast(domain.RoleCommunity)
}

// extractToken reads the access token from the cookie first, then the
// Authorization header.
func extractToken(c *fiber.Ctx) string {
	if token := c.Cookies("access_token"); token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
