package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stockee/backend/internal/integration/adapters"
	"github.com/stockee/backend/internal/integration/entrypoint/controller"
	"github.com/stockee/backend/internal/integration/entrypoint/middleware"
	"github.com/stockee/backend/internal/integration/persistence"
	"github.com/stockee/backend/internal/integration/ratelimit"
	"github.com/stockee/backend/internal/testutil"
)

func newTestEngine(t *testing.T) http.Handler {
	t.Helper()

	db := testutil.NewDB(t)
	tokenService := adapters.NewTokenService("router-secret", persistence.NewTokenRepository(db))
	policy := ratelimit.Policy{MaxAttempts: 100, Window: time.Minute}

	r := NewRouter(Controllers{
		Health: controller.NewHealthController(map[string]controller.HealthCheck{
			"database": func(context.Context) error { return nil },
		}),
	}, middleware.NewAuthMiddleware(tokenService), ratelimit.NewMemoryLimiter(policy), ratelimit.NewMemoryLimiter(policy), []string{"http://localhost:5173"})

	return r.Setup("test")
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	engine := newTestEngine(t)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", rec.Code)
	}
	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected a request id header on every response")
	}

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "http_requests_total") {
		t.Error("expected request counter in metrics output")
	}
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	engine := newTestEngine(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/users/me"},
		{http.MethodGet, "/api/v1/groups"},
		{http.MethodGet, "/api/v1/invites/ABCD1234"},
		{http.MethodPut, "/api/v1/categories/reorder"},
		{http.MethodGet, "/api/v1/items"},
		{http.MethodPost, "/api/v1/items/2b6f0cc9-2f55-4b5e-9a8a-0a4c6b0b9f11/decrement"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	engine := newTestEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/items", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("unexpected allow origin %q", got)
	}
}
