package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/response"
)

func TestAuthRateLimiterReturns429AfterLimit(t *testing.T) {
	app := fiber.New()
	app.Post("/login", AuthRateLimiter(), func(c *fiber.Ctx) error {
		return response.Success(c, "ok", nil)
	})

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope response.Response
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "Too many login attempts", envelope.Error)
}

func TestStrictRateLimiterReturns429AfterLimit(t *testing.T) {
	app := fiber.New()
	app.Post("/donate", StrictRateLimiter(), func(c *fiber.Ctx) error {
		return response.Success(c, "ok", nil)
	})

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/donate", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("POST", "/donate", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
