package auth

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", Middleware(NewJWTVerifier(testSecret)), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("storeID").(string))
	})
	return app
}

func TestMiddlewareMissingHeader(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareMalformedHeader(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareInvalidToken(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareExpiredToken(t *testing.T) {
	app := testApp()

	token := signToken(t, jwt.MapClaims{
		"sub": "store-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareValidTokenResolvesStore(t *testing.T) {
	app := testApp()

	token := signToken(t, jwt.MapClaims{
		"sub": "store-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "store-1", string(body))
}

func TestVerifierSubjectFallback(t *testing.T) {
	v := NewJWTVerifier(testSecret)

	token := signToken(t, jwt.MapClaims{
		"user_id": "store-9",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	subject, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "store-9", subject)
}
