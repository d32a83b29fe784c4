package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/admin-console/internal/infrastructure"
	"github.com/JaimeStill/admin-console/pkg/lifecycle"
)

func TestBuildRouter(t *testing.T) {
	infra := &infrastructure.Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	tel := newTelemetry()
	router := buildRouter(infra, tel)

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	if w := get("/healthz"); w.Code != http.StatusOK || w.Body.String() != "OK" {
		t.Errorf("healthz = %d %q", w.Code, w.Body.String())
	}

	if w := get("/readyz"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("readyz before startup = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}

	infra.Lifecycle.WaitForStartup()
	if w := get("/readyz"); w.Code != http.StatusOK || w.Body.String() != "READY" {
		t.Errorf("readyz after startup = %d %q", w.Code, w.Body.String())
	}

	tel.metrics.Handler("api")(http.NotFoundHandler()).ServeHTTP(
		httptest.NewRecorder(),
		httptest.NewRequest(http.MethodGet, "/missing", nil),
	)

	w := get("/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("metrics = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `admin_console_http_requests_total{method="GET",module="api",status="404"} 1`) {
		t.Error("metrics missing request counter")
	}
}
