package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnect/internal/config"
	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345678901234567890123456789012"

func testConfig() *config.Config {
	return &config.Config{
		Port:           "5000",
		Env:            "test",
		JWTSecret:      testSecret,
		JWTIssuer:      "devconnect-api",
		JWTTTLHours:    100,
		BcryptCost:     4,
		DBDriver:       "sqlite",
		AllowedOrigins: "http://localhost:3000",
	}
}

func newTestApp(t *testing.T, redisClient *redis.Client) (*fiber.App, *Server) {
	t.Helper()
	srv, err := NewServerWithDeps(testConfig(), testutil.NewTestDB(t), redisClient)
	require.NoError(t, err)
	app := srv.NewApp()
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)
	return app, srv
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(data, &out), string(data))
	return out
}

func registerUser(t *testing.T, app *fiber.App, name, email string) string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/api/users", "", fiber.Map{
		"name": name, "email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, status, string(body))
	token := decode[TokenResponse](t, body).Token
	require.NotEmpty(t, token)
	return token
}

func errorCode(t *testing.T, data []byte) string {
	t.Helper()
	return decode[models.ErrorResponse](t, data).Code
}
