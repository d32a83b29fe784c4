package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/admin-console/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS(t *testing.T) {
	allowed := &middleware.CORSConfig{
		Enabled:        true,
		Origins:        []string{"http://localhost:5173"},
		AllowedMethods: []string{"GET", "PUT"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         600,
	}

	tests := []struct {
		name        string
		cfg         *middleware.CORSConfig
		method      string
		origin      string
		wantOrigin  string
		wantMethods string
		wantStatus  int
	}{
		{
			name:       "disabled",
			cfg:        &middleware.CORSConfig{Origins: []string{"http://localhost:5173"}},
			method:     http.MethodGet,
			origin:     "http://localhost:5173",
			wantStatus: http.StatusOK,
		},
		{
			name:       "no origins",
			cfg:        &middleware.CORSConfig{Enabled: true},
			method:     http.MethodGet,
			origin:     "http://localhost:5173",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown origin",
			cfg:        allowed,
			method:     http.MethodGet,
			origin:     "http://evil.example",
			wantStatus: http.StatusOK,
		},
		{
			name:        "allowed origin",
			cfg:         allowed,
			method:      http.MethodGet,
			origin:      "http://localhost:5173",
			wantOrigin:  "http://localhost:5173",
			wantMethods: "GET, PUT",
			wantStatus:  http.StatusOK,
		},
		{
			name:        "preflight",
			cfg:         allowed,
			method:      http.MethodOptions,
			origin:      "http://localhost:5173",
			wantOrigin:  "http://localhost:5173",
			wantMethods: "GET, PUT",
			wantStatus:  http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/system/role/list", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()

			middleware.CORS(tt.cfg)(okHandler()).ServeHTTP(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if got := resp.Header.Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if got := resp.Header.Get("Access-Control-Allow-Methods"); got != tt.wantMethods {
				t.Errorf("Allow-Methods = %q, want %q", got, tt.wantMethods)
			}
		})
	}
}

func TestCORSConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_CORS_ORIGINS", "http://a.example, http://b.example,")

	cfg := &middleware.CORSConfig{}
	if err := cfg.Finalize(&middleware.CORSEnv{Origins: "TEST_CORS_ORIGINS"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if len(cfg.Origins) != 2 || cfg.Origins[1] != "http://b.example" {
		t.Errorf("Origins = %v, want two trimmed origins", cfg.Origins)
	}
	if len(cfg.AllowedMethods) == 0 || len(cfg.AllowedHeaders) == 0 {
		t.Error("method and header defaults not applied")
	}
	if cfg.MaxAge != 3600 {
		t.Errorf("MaxAge = %d, want 3600", cfg.MaxAge)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/system/user/list?page=2", nil)
	middleware.Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	for _, want := range []string{"request", "GET", "/system/user/list?page=2", "status=418", "duration"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFrom(r.Context())
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		middleware.RequestID()(handler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if seen == "" {
			t.Fatal("request id not stored in context")
		}
		if got := w.Header().Get(middleware.RequestIDHeader); got != seen {
			t.Errorf("header = %q, want %q", got, seen)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		const id = "8d1f4c52-0a4e-4d6b-9a55-3f1d2b7c9e10"
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, id)

		middleware.RequestID()(handler).ServeHTTP(httptest.NewRecorder(), req)

		if seen != id {
			t.Errorf("request id = %q, want %q", seen, id)
		}
	})

	t.Run("invalid replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "not-a-uuid")

		middleware.RequestID()(handler).ServeHTTP(httptest.NewRecorder(), req)

		if seen == "not-a-uuid" || seen == "" {
			t.Errorf("request id = %q, want generated uuid", seen)
		}
	})
}

func TestBodyLimit(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		limit      int64
		body       string
		wantStatus int
	}{
		{"under limit", 16, `{"ids":[1]}`, http.StatusOK},
		{"over limit", 4, `{"ids":[1,2,3]}`, http.StatusRequestEntityTooLarge},
		{"disabled", 0, `{"ids":[1,2,3]}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			middleware.BodyLimit(tt.limit)(handler).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := middleware.NewMetrics("console", reg)

	h := m.Handler("api")(okHandler())
	for range 2 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/menu/all", nil))
	}

	count, err := testutil.GatherAndCount(reg, "console_http_requests_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if count != 1 {
		t.Errorf("series = %d, want 1", count)
	}
}

func TestTrimSlash(t *testing.T) {
	tests := []struct {
		path         string
		wantStatus   int
		wantLocation string
	}{
		{"/system/role/", http.StatusMovedPermanently, "/system/role"},
		{"/system/role/?status=true", http.StatusMovedPermanently, "/system/role?status=true"},
		{"/system/role", http.StatusOK, ""},
		{"/", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			middleware.TrimSlash()(okHandler()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("Location = %q, want %q", got, tt.wantLocation)
			}
		})
	}
}
