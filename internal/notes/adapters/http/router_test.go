package http_test

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notehttp "github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/adapters/http"
)

func TestPingRoute(t *testing.T) {
	app := fiber.New()
	notehttp.SetupRouter(app, notehttp.UseCases{}, nil)

	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/ping", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "pong", body["message"])
}

func TestUnknownRoute(t *testing.T) {
	app := fiber.New()
	notehttp.SetupRouter(app, notehttp.UseCases{}, nil)

	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/missing", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}
