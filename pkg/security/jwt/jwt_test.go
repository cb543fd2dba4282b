package jwt

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser/pkg/auth"
)

const testSecret = "test-secret"

func issueToken(t *testing.T, user auth.User, ttl time.Duration) string {
	t.Helper()
	token, err := NewGenerator(testSecret, "resume-parser", ttl).Generate(context.Background(), user)
	require.NoError(t, err)
	return token
}

func protectedApp(mw fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/protected", mw, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("userId").(string)
		isAdmin, _ := c.Locals("isAdmin").(bool)
		return c.JSON(fiber.Map{"userId": userID, "isAdmin": isAdmin})
	})
	return app
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	user := auth.User{ID: uuid.New()}
	token := issueToken(t, user, time.Minute)
	app := protectedApp(NewAuthMiddleware(testSecret, "resume-parser"))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// bare token without the Bearer prefix also works
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareRejections(t *testing.T) {
	app := protectedApp(NewAuthMiddleware(testSecret, "resume-parser"))

	// missing header
	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// garbage token
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// expired token
	expired := issueToken(t, auth.User{ID: uuid.New()}, -time.Minute)
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// wrong issuer
	wrongIssuer, err := NewGenerator(testSecret, "someone-else", time.Minute).Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+wrongIssuer)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalAuthMiddleware(t *testing.T) {
	app := protectedApp(NewOptionalAuthMiddleware(testSecret, "resume-parser"))

	// anonymous passes through
	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// invalid tokens are still rejected
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer junk")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminClaimSurvivesRoundTrip(t *testing.T) {
	admin := auth.User{ID: uuid.New(), IsAdmin: true}
	token := issueToken(t, admin, time.Minute)

	claims, err := parseClaims(token, []byte(testSecret), "resume-parser")
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, admin.ID.String(), claims.Subject)
}
