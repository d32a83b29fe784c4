package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/admin-console/pkg/handlers"
)

// Accounts confirms that a token subject still names an enabled account.
// Verify returns an error for unknown or disabled usernames.
type Accounts interface {
	Verify(ctx context.Context, username string) error
}

// Authenticator resolves the Subject of a request from its bearer token and
// the account store. A token outlives neither its account nor the account's
// enabled status.
type Authenticator struct {
	tokens    *Tokens
	accounts  Accounts
	mapStatus func(error) int
}

// NewAuthenticator pairs token verification with an account lookup.
// mapStatus translates Accounts errors into HTTP status codes.
func NewAuthenticator(tokens *Tokens, accounts Accounts, mapStatus func(error) int) *Authenticator {
	return &Authenticator{tokens: tokens, accounts: accounts, mapStatus: mapStatus}
}

// Authenticate returns the request's Subject, or the status code and error
// the request should be refused with.
func (a *Authenticator) Authenticate(r *http.Request) (Subject, int, error) {
	raw, ok := bearer(r)
	if !ok {
		return Subject{}, http.StatusUnauthorized, ErrMissingToken
	}

	claims, err := a.tokens.Parse(raw)
	if err != nil {
		return Subject{}, MapHTTPStatus(err), err
	}

	if err := a.accounts.Verify(r.Context(), claims.Subject); err != nil {
		return Subject{}, a.mapStatus(err), err
	}

	return Subject{Username: claims.Subject, TokenID: claims.ID}, http.StatusOK, nil
}

// Middleware rejects requests that fail authentication with a JSON envelope
// and stores the Subject in the request context. Paths in public bypass the
// check.
func Middleware(authn *Authenticator, logger *slog.Logger, public ...string) func(http.Handler) http.Handler {
	open := make(map[string]struct{}, len(public))
	for _, p := range public {
		open[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := open[r.URL.Path]; ok || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			subject, status, err := authn.Authenticate(r)
			if err != nil {
				handlers.RespondError(w, logger, status, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), subject)))
		})
	}
}

func bearer(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
