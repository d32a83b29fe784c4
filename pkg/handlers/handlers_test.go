package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/admin-console/pkg/handlers"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestRespondJSON(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		data     any
		wantData string
	}{
		{"object", http.StatusOK, map[string]int{"id": 1}, `{"id":1}`},
		{"created", http.StatusCreated, []int{1, 2}, `[1,2]`},
		{"null data", http.StatusOK, nil, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handlers.RespondJSON(w, tt.status, tt.data)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}

			var env struct {
				Code    int             `json:"code"`
				Data    json.RawMessage `json:"data"`
				Error   *string         `json:"error"`
				Message string          `json:"message"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if env.Code != 0 || env.Message != "ok" || env.Error != nil {
				t.Errorf("envelope = %+v, want code 0, message ok, no error", env)
			}
			if string(env.Data) != tt.wantData {
				t.Errorf("data = %s, want %s", env.Data, tt.wantData)
			}
		})
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		err       error
		wantError string
	}{
		{"not found", http.StatusNotFound, errors.New("role not found"), "role not found"},
		{"conflict", http.StatusConflict, errors.New("role code already exists"), "role code already exists"},
		{"internal hides detail", http.StatusInternalServerError, errors.New("pq: connection refused"), "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handlers.RespondError(w, discardLogger(), tt.status, tt.err)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}

			env := decodeEnvelope(t, w)
			if int(env["code"].(float64)) != tt.status {
				t.Errorf("code = %v, want %d", env["code"], tt.status)
			}
			if env["error"] != tt.wantError {
				t.Errorf("error = %v, want %q", env["error"], tt.wantError)
			}
			if env["data"] != nil {
				t.Errorf("data = %v, want nil", env["data"])
			}
			if env["message"] != "error" {
				t.Errorf("message = %v, want error", env["message"])
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		IDs []int64 `json:"ids"`
	}

	t.Run("valid", func(t *testing.T) {
		var b body
		r := httptest.NewRequest(http.MethodDelete, "/", strings.NewReader(`{"ids":[1,2]}`))
		if err := handlers.DecodeJSON(r, &b); err != nil {
			t.Fatalf("DecodeJSON() error = %v", err)
		}
		if len(b.IDs) != 2 {
			t.Errorf("IDs = %v", b.IDs)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		var b body
		r := httptest.NewRequest(http.MethodDelete, "/", strings.NewReader(`{"idz":[1]}`))
		err := handlers.DecodeJSON(r, &b)
		if err == nil {
			t.Fatal("DecodeJSON() succeeded with unknown field")
		}
		if handlers.DecodeStatus(err) != http.StatusBadRequest {
			t.Errorf("DecodeStatus() = %d, want 400", handlers.DecodeStatus(err))
		}
	})

	t.Run("too large", func(t *testing.T) {
		var b body
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/", strings.NewReader(`{"ids":[1,2,3,4,5,6]}`))
		r.Body = http.MaxBytesReader(w, r.Body, 4)

		err := handlers.DecodeJSON(r, &b)
		if !errors.Is(err, handlers.ErrBodyTooLarge) {
			t.Fatalf("DecodeJSON() error = %v, want ErrBodyTooLarge", err)
		}
		if handlers.DecodeStatus(err) != http.StatusRequestEntityTooLarge {
			t.Errorf("DecodeStatus() = %d, want 413", handlers.DecodeStatus(err))
		}
	})
}
