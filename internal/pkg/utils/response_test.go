package utils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runEnvelope(t *testing.T, handler fiber.Handler) (int, string) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestResponseEnvelopes(t *testing.T) {
	t.Run("SendCreated", func(t *testing.T) {
		status, body := runEnvelope(t, func(c *fiber.Ctx) error {
			return SendCreated(c, "Saved", fiber.Map{"id": "abc"})
		})
		assert.Equal(t, fiber.StatusCreated, status)
		assert.JSONEq(t, `{"success":true,"message":"Saved","data":{"id":"abc"}}`, body)
	})

	t.Run("SendCollection carries a count", func(t *testing.T) {
		status, body := runEnvelope(t, func(c *fiber.Ctx) error {
			return SendCollection(c, 2, []string{"a", "b"})
		})
		assert.Equal(t, fiber.StatusOK, status)
		assert.JSONEq(t, `{"success":true,"count":2,"data":["a","b"]}`, body)
	})

	t.Run("SendNearby always carries the degraded flag", func(t *testing.T) {
		_, body := runEnvelope(t, func(c *fiber.Ctx) error {
			return SendNearby(c, 0, false, []string{})
		})

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(body), &decoded))
		assert.Equal(t, false, decoded["degraded"])
		assert.Equal(t, float64(0), decoded["count"])
	})

	t.Run("SendNearby marks fallback results", func(t *testing.T) {
		_, body := runEnvelope(t, func(c *fiber.Ctx) error {
			return SendNearby(c, 1, true, []string{"a"})
		})
		assert.JSONEq(t, `{"success":true,"count":1,"degraded":true,"data":["a"]}`, body)
	})
}
