package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsExposition(t *testing.T) {
	metrics := middleware.NewMetrics()
	store := middleware.NewRateLimitStore(1, time.Minute, nil)

	app := fiber.New()
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())
	api := app.Group("/api", middleware.RateLimit(middleware.RateLimitConfig{
		Store:    store,
		OnReject: metrics.RateLimited,
	}))
	api.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(raw)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `portfolio_api_http_requests_total{method="GET",route="/api/health",status="200"} 1`)
	assert.Contains(t, body, `portfolio_api_http_requests_total{method="GET",route="/api",status="429"} 1`)
	assert.Contains(t, body, `portfolio_api_rate_limit_hits_total{method="GET"} 1`)
}

func TestMetricsLabelsSurviveLaterRequests(t *testing.T) {
	metrics := middleware.NewMetrics()

	app := fiber.New()
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())
	app.Get("/api/projects", func(c *fiber.Ctx) error { return c.SendString("list") })
	app.Post("/api/projects", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })
	app.Delete("/api/projects/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	requests := []struct{ method, path string }{
		{http.MethodGet, "/api/projects"},
		{http.MethodPost, "/api/projects"},
		{http.MethodDelete, "/api/projects/7"},
	}
	for _, r := range requests {
		resp, err := app.Test(httptest.NewRequest(r.method, r.path, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, `portfolio_api_http_requests_total{method="GET",route="/api/projects",status="200"} 1`)
	assert.Contains(t, body, `portfolio_api_http_requests_total{method="POST",route="/api/projects",status="201"} 1`)
	assert.Contains(t, body, `portfolio_api_http_requests_total{method="DELETE",route="/api/projects/:id",status="204"} 1`)
	assert.NotContains(t, body, `method="GETE"`)
}
