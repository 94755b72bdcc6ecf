package server

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfiles_UpsertAndRead(t *testing.T) {
	app, srv := newTestApp(t, nil)
	token := registerUser(t, app, "Ada", "ada@example.com")

	status, body := doJSON(t, app, http.MethodGet, "/api/profile/me", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, models.CodeNotFound, errorCode(t, body))

	status, body = doJSON(t, app, http.MethodPost, "/api/profile", token, fiber.Map{
		"bio": "engineer", "location": "London",
	})
	require.Equal(t, http.StatusOK, status, string(body))
	created := decode[models.Profile](t, body)
	assert.Equal(t, "Ada", created.User.Name)

	status, body = doJSON(t, app, http.MethodPost, "/api/profile", token, fiber.Map{
		"website": "https://ada.dev",
	})
	require.Equal(t, http.StatusOK, status)
	updated := decode[models.Profile](t, body)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "engineer", updated.Bio)
	assert.Equal(t, "https://ada.dev", updated.Website)

	status, body = doJSON(t, app, http.MethodGet, "/api/profile/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "London", decode[models.Profile](t, body).Location)

	userID, err := srv.tokens.Verify(token)
	require.NoError(t, err)
	for _, path := range []string{
		fmt.Sprintf("/api/profile/user/%d", userID),
		fmt.Sprintf("/api/profile/%d", userID),
	} {
		status, body = doJSON(t, app, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, status, path)
		assert.Equal(t, "engineer", decode[models.Profile](t, body).Bio)
	}

	status, body = doJSON(t, app, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]models.Profile](t, body), 1)
}

func TestProfiles_Validation(t *testing.T) {
	app, _ := newTestApp(t, nil)
	token := registerUser(t, app, "Ada", "ada@example.com")

	status, body := doJSON(t, app, http.MethodPost, "/api/profile", token, fiber.Map{
		"bio": strings.Repeat("x", 101),
	})
	assert.Equal(t, http.StatusBadRequest, status)
	resp := decode[models.ErrorResponse](t, body)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "bio", resp.Errors[0].Field)
}

func TestProfiles_ByUserNotFoundAndBadID(t *testing.T) {
	app, _ := newTestApp(t, nil)

	status, body := doJSON(t, app, http.MethodGet, "/api/profile/user/77", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, models.CodeNotFound, errorCode(t, body))

	status, body = doJSON(t, app, http.MethodGet, "/api/profile/user/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid user ID", decode[models.ErrorResponse](t, body).Error)
}
