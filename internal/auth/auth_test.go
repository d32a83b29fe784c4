package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JaimeStill/admin-console/internal/auth"
	"github.com/golang-jwt/jwt/v5"
)

const secret = "0123456789abcdef0123456789abcdef"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTokens_RoundTrip(t *testing.T) {
	tokens := auth.NewTokens(secret, "admin-console", time.Hour)

	raw, expires, err := tokens.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if time.Until(expires) <= 0 {
		t.Errorf("expires = %v, want future", expires)
	}

	claims, err := tokens.Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Subject != "admin" || claims.Type != auth.TokenTypeAccess {
		t.Errorf("claims = %+v", claims)
	}
	if claims.ID == "" {
		t.Error("token id missing")
	}
}

func TestTokens_Rejects(t *testing.T) {
	tokens := auth.NewTokens(secret, "admin-console", time.Hour)

	sign := func(claims jwt.Claims, method jwt.SigningMethod, key any) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return s
	}

	now := time.Now()
	valid := func(typ, issuer string, exp time.Time) auth.Claims {
		return auth.Claims{
			Type: typ,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "admin",
				Issuer:    issuer,
				ExpiresAt: jwt.NewNumericDate(exp),
			},
		}
	}

	expired, _, _ := auth.NewTokens(secret, "admin-console", time.Hour).
		WithClock(func() time.Time { return now.Add(-2 * time.Hour) }).
		Issue("admin")

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.jwt"},
		{"wrong secret", sign(valid("access", "admin-console", now.Add(time.Hour)), jwt.SigningMethodHS256, []byte("another-secret-another-secret-xx"))},
		{"wrong algorithm", sign(valid("access", "admin-console", now.Add(time.Hour)), jwt.SigningMethodHS512, []byte(secret))},
		{"wrong issuer", sign(valid("access", "elsewhere", now.Add(time.Hour)), jwt.SigningMethodHS256, []byte(secret))},
		{"refresh token", sign(valid("refresh", "admin-console", now.Add(time.Hour)), jwt.SigningMethodHS256, []byte(secret))},
		{"no expiry", sign(auth.Claims{Type: "access", RegisteredClaims: jwt.RegisteredClaims{Subject: "admin", Issuer: "admin-console"}}, jwt.SigningMethodHS256, []byte(secret))},
		{"expired", expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tokens.Parse(tt.token); !errors.Is(err, auth.ErrInvalidToken) {
				t.Errorf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestMiddleware(t *testing.T) {
	tokens := auth.NewTokens(secret, "admin-console", time.Hour)
	good, _, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s, ok := auth.SubjectFrom(r.Context()); ok {
			seen = s.Username
		}
		w.WriteHeader(http.StatusOK)
	})
	ghost, _, _ := tokens.Issue("ghost")
	locked, _, _ := tokens.Issue("locked")
	accounts := stubAccounts{"alice": nil, "locked": errAccountDisabled}
	authn := auth.NewAuthenticator(tokens, accounts, mapAccountStatus)
	handler := auth.Middleware(authn, discardLogger(), "/openapi.json")(next)

	tests := []struct {
		name       string
		method     string
		path       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{"valid token", http.MethodGet, "/user/info", "Bearer " + good, http.StatusOK, "alice"},
		{"lowercase scheme", http.MethodGet, "/user/info", "bearer " + good, http.StatusOK, "alice"},
		{"missing header", http.MethodGet, "/user/info", "", http.StatusUnauthorized, ""},
		{"basic scheme", http.MethodGet, "/user/info", "Basic abc", http.StatusUnauthorized, ""},
		{"empty token", http.MethodGet, "/user/info", "Bearer  ", http.StatusUnauthorized, ""},
		{"bad token", http.MethodGet, "/user/info", "Bearer nope", http.StatusUnauthorized, ""},
		{"unknown account", http.MethodDelete, "/system/user", "Bearer " + ghost, http.StatusUnauthorized, ""},
		{"disabled account", http.MethodGet, "/user/info", "Bearer " + locked, http.StatusForbidden, ""},
		{"public path", http.MethodGet, "/openapi.json", "", http.StatusOK, ""},
		{"preflight", http.MethodOptions, "/system/user", "", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if seen != tt.wantUser {
				t.Errorf("subject = %q, want %q", seen, tt.wantUser)
			}
			if tt.wantStatus >= http.StatusBadRequest {
				var env struct {
					Code int `json:"code"`
				}
				json.Unmarshal(w.Body.Bytes(), &env)
				if env.Code != tt.wantStatus {
					t.Errorf("envelope code = %d, want %d", env.Code, tt.wantStatus)
				}
			}
		})
	}
}

var (
	errAccountUnknown  = errors.New("account unknown")
	errAccountDisabled = errors.New("account disabled")
)

type stubAccounts map[string]error

func (s stubAccounts) Verify(_ context.Context, username string) error {
	err, ok := s[username]
	if !ok {
		return errAccountUnknown
	}
	return err
}

func mapAccountStatus(err error) int {
	switch {
	case errors.Is(err, errAccountUnknown):
		return http.StatusUnauthorized
	case errors.Is(err, errAccountDisabled):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func TestAuthenticator_Authenticate(t *testing.T) {
	tokens := auth.NewTokens(secret, "admin-console", time.Hour)
	good, _, _ := tokens.Issue("alice")
	ghost, _, _ := tokens.Issue("ghost")
	authn := auth.NewAuthenticator(tokens, stubAccounts{"alice": nil}, mapAccountStatus)

	req := httptest.NewRequest(http.MethodGet, "/user/info", nil)
	req.Header.Set("Authorization", "Bearer "+good)
	subject, status, err := authn.Authenticate(req)
	if err != nil || status != http.StatusOK {
		t.Fatalf("Authenticate = %d, %v", status, err)
	}
	if subject.Username != "alice" || subject.TokenID == "" {
		t.Errorf("subject = %+v", subject)
	}

	req = httptest.NewRequest(http.MethodGet, "/user/info", nil)
	req.Header.Set("Authorization", "Bearer "+ghost)
	_, status, err = authn.Authenticate(req)
	if !errors.Is(err, errAccountUnknown) || status != http.StatusUnauthorized {
		t.Errorf("ghost = %d, %v", status, err)
	}
}

type stubCodes struct {
	codes []string
	err   error
	user  string
}

func (s *stubCodes) PermissionCodes(_ context.Context, username string) ([]string, error) {
	s.user = username
	return s.codes, s.err
}

func TestHandler_Codes(t *testing.T) {
	errUnknown := errors.New("user not found")
	mapStatus := func(err error) int {
		if errors.Is(err, errUnknown) {
			return http.StatusNotFound
		}
		return http.StatusInternalServerError
	}

	tests := []struct {
		name       string
		subject    bool
		src        *stubCodes
		wantStatus int
		wantData   string
	}{
		{"codes", true, &stubCodes{codes: []string{"system:user:view"}}, http.StatusOK, `["system:user:view"]`},
		{"no subject", false, &stubCodes{}, http.StatusUnauthorized, `null`},
		{"unknown user", true, &stubCodes{err: errUnknown}, http.StatusNotFound, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := auth.NewHandler(tt.src, discardLogger(), mapStatus)

			req := httptest.NewRequest(http.MethodGet, "/auth/codes", nil)
			if tt.subject {
				req = req.WithContext(auth.WithSubject(req.Context(), auth.Subject{Username: "bob"}))
			}
			w := httptest.NewRecorder()

			h.Codes(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var env struct {
				Data json.RawMessage `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if string(env.Data) != tt.wantData {
				t.Errorf("data = %s, want %s", env.Data, tt.wantData)
			}
			if tt.subject && tt.src.user != "bob" {
				t.Errorf("looked up %q", tt.src.user)
			}
		})
	}
}

func TestHandler_Routes(t *testing.T) {
	g := auth.NewHandler(&stubCodes{}, discardLogger(), func(error) int { return 500 }).Routes()
	if g.Prefix != "/auth" || len(g.Routes) != 1 || g.Routes[0].Pattern != "/codes" {
		t.Errorf("group = %+v", g)
	}
}
