package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/config"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/core/domain"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/jwt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
}

func newApp(cfg *config.Config, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	route := []fiber.Handler{AuthMiddleware(cfg)}
	route = append(route, extra...)
	route = append(route, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"role": c.Locals("role")})
	})
	app.Get("/protected", route...)
	return app
}

func accessToken(t *testing.T, cfg *config.Config, role domain.Role) string {
	t.Helper()
	token, err := jwt.GenerateAccessToken(1, "admin", string(role), cfg.JWT.Secret, cfg.JWT.AccessTokenMins)
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	app := newApp(testConfig())

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	app := newApp(testConfig())

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	cfg := testConfig()
	app := newApp(cfg)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, cfg, domain.RoleGlobal))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareAcceptsCookieToken(t *testing.T) {
	cfg := testConfig()
	app := newApp(cfg)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: accessToken(t, cfg, domain.RoleCity)})
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRoleAtLeast(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name     string
		role     domain.Role
		min      domain.Role
		expected int
	}{
		{"global passes community gate", domain.RoleGlobal, domain.RoleCommunity, fiber.StatusOK},
		{"community passes its own gate", domain.RoleCommunity, domain.RoleCommunity, fiber.StatusOK},
		{"society blocked by community gate", domain.RoleSociety, domain.RoleCommunity, fiber.StatusForbidden},
		{"city blocked by global gate", domain.RoleCity, domain.RoleGlobal, fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(cfg, RoleAtLeast(tt.min))

			req := httptest.NewRequest("GET", "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+accessToken(t, cfg, tt.role))
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, resp.StatusCode)
		})
	}
}
