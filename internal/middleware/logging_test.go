package middleware

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Logger
	Logger = slog.New(&ctxHandler{slog.NewJSONHandler(&buf, nil)})
	t.Cleanup(func() { Logger = prev })
	return &buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestStructuredLogger(t *testing.T) {
	buf := captureLogs(t)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(ContextMiddleware())
	app.Use(StructuredLogger())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	lines := logLines(t, buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "request processed", lines[0]["msg"])
	assert.Equal(t, float64(fiber.StatusOK), lines[0]["status"])
	assert.NotEmpty(t, lines[0]["request_id"])

	assert.Equal(t, "request failed", lines[1]["msg"])
	assert.Equal(t, float64(fiber.StatusNotFound), lines[1]["status"])
	assert.Equal(t, "/missing", lines[1]["path"])
}

func TestCtxHandler_WithAttrsKeepsContextValues(t *testing.T) {
	buf := captureLogs(t)

	ctx := context.WithValue(t.Context(), UserIDKey, uint(42))
	Logger.With(slog.String("component", "test")).InfoContext(ctx, "hello")

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "test", lines[0]["component"])
	assert.Equal(t, float64(42), lines[0]["user_id"])
}
