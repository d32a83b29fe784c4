package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/admin-console/pkg/validation"
)

// ErrInvalidID is returned by PathID for non-numeric or non-positive ids.
var ErrInvalidID = errors.New("invalid id")

// Bind decodes the body into v and validates it. On failure the error
// response is written and false is returned.
func Bind(w http.ResponseWriter, r *http.Request, logger *slog.Logger, v any) bool {
	if err := DecodeJSON(r, v); err != nil {
		RespondError(w, logger, DecodeStatus(err), err)
		return false
	}
	if err := validation.Struct(v); err != nil {
		RespondError(w, logger, http.StatusBadRequest, err)
		return false
	}
	return true
}

// PathID parses the named path value as a positive int64.
func PathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}
