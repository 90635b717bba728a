package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/salesinsight/internal/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logging.Discard())})
	app.Use(RequestLogger(logging.Discard()))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": RequestID(c)})
	})
	app.Get("/unauthorized", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusUnauthorized, "nope")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("secret internals")
	})
	return app
}

func decodeDetail(t *testing.T, body []byte) string {
	t.Helper()
	var eb ErrorBody
	require.NoError(t, json.Unmarshal(body, &eb))
	return eb.Detail
}

func TestErrorHandler_FiberError(t *testing.T) {
	resp, err := newTestApp().Test(httptest.NewRequest("GET", "/unauthorized", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))

	var eb ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&eb))
	assert.Equal(t, "nope", eb.Detail)
}

func TestErrorHandler_PlainError(t *testing.T) {
	resp, err := newTestApp().Test(httptest.NewRequest("GET", "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(fiber.HeaderWWWAuthenticate))

	var eb ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&eb))
	assert.Equal(t, "Internal server error", eb.Detail)
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	resp, err := newTestApp().Test(httptest.NewRequest("GET", "/missing", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, decodeDetail(t, b))
}

func TestRequestLogger_RequestID(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil), -1)
	require.NoError(t, err)
	generated := resp.Header.Get("X-Request-ID")
	assert.Len(t, generated, 36)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, generated, body["id"])

	req := httptest.NewRequest("GET", "/ok", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}
