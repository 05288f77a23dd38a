package routes

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YousifAziz000/lifting-bot-rlbr/internal/backend"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/catalog"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/config"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/coordinator"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/handlers"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/storage"
)

const testSigningSecret = "signing-secret"

// newApp wires the full route table against an unreachable backend; the
// routed paths under test never leave the process.
func newApp(t *testing.T, env string) *fiber.App {
	t.Helper()
	t.Setenv("DISABLE_WEBHOOK_VALIDATION", "")

	settings := &config.Settings{
		Port:          "8080",
		Environment:   env,
		BackendURL:    "http://127.0.0.1:1",
		BackendToken:  "token",
		SigningSecret: testSigningSecret,
	}

	client := backend.New(settings.BackendURL, settings.BackendToken)
	store := storage.NewMemorySessionStore()
	cache := catalog.New(client, config.SeedExercises(""))
	commands := handlers.NewCommandHandler(coordinator.New(store, client, cache))
	health := handlers.NewHealthHandler("test", store, cache, settings.BackendURL)

	app := fiber.New()
	SetupRoutes(app, settings, commands, health)
	return app
}

func sign(body []byte) string {
	h := hmac.New(sha256.New, []byte(testSigningSecret))
	h.Write(body)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// endEvent needs no backend: an end without a session is answered locally
var endEvent = []byte(`{"type":"command","channel_id":"C1","command":"end"}`)

func TestRootEndpoint(t *testing.T) {
	app := newApp(t, "production")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["message"], "Lifting Bot")
}

func TestHealthEndpoint(t *testing.T) {
	app := newApp(t, "production")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Status  string `json:"status"`
		Backend struct {
			Configured bool `json:"configured"`
		} `json:"backend"`
		Catalog struct {
			Size      int  `json:"size"`
			Refreshed bool `json:"refreshed"`
		} `json:"catalog"`
		ActiveSessions int `json:"active_sessions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "OK", body.Status)
	assert.True(t, body.Backend.Configured)
	assert.Greater(t, body.Catalog.Size, 0, "the seed catalog serves from boot")
	assert.False(t, body.Catalog.Refreshed)
	assert.Zero(t, body.ActiveSessions)
}

func TestWebhookValidationModes(t *testing.T) {
	t.Run("production rejects an unsigned request", func(t *testing.T) {
		app := newApp(t, "production")

		req := httptest.NewRequest(http.MethodPost, "/webhook/events", bytes.NewReader(endEvent))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("production accepts a signed request", func(t *testing.T) {
		app := newApp(t, "production")

		req := httptest.NewRequest(http.MethodPost, "/webhook/events", bytes.NewReader(endEvent))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Liftbot-Signature", sign(endEvent))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("development skips signature validation", func(t *testing.T) {
		app := newApp(t, "development")

		req := httptest.NewRequest(http.MethodPost, "/webhook/events", bytes.NewReader(endEvent))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestTestRouteGating(t *testing.T) {
	t.Run("registered in development", func(t *testing.T) {
		app := newApp(t, "development")

		req := httptest.NewRequest(http.MethodPost, "/test/events", bytes.NewReader(endEvent))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("absent in production", func(t *testing.T) {
		app := newApp(t, "production")

		req := httptest.NewRequest(http.MethodPost, "/test/events", bytes.NewReader(endEvent))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
