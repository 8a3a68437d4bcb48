package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFiberErrorRendersFiberErrors(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return FromFiberError(c, fiber.NewError(fiber.StatusConflict, "name already taken"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.False(t, body.Success)
	assert.Equal(t, "name already taken", body.Message)
}

func TestFromFiberErrorRendersWrappedFiberErrors(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		wrapped := fmt.Errorf("batch create: %w", fiber.NewError(fiber.StatusBadRequest, "no campuses registered"))
		return FromFiberError(c, wrapped)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// Unknown errors must pass through untouched so the app error handler keeps
// deciding their status codes.
func TestFromFiberErrorPassesUnknownErrorsThrough(t *testing.T) {
	app := fiber.New()
	dbErr := errors.New("connection reset")
	var got error
	app.Get("/", func(c *fiber.Ctx) error {
		got = FromFiberError(c, dbErr)
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Same(t, dbErr, got)
}
