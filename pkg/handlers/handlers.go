// Package handlers writes the JSON response envelope shared by every API endpoint:
// {"code": 0, "data": ..., "error": null, "message": "ok"} on success and
// {"code": <status>, "data": null, "error": "<detail>", "message": "error"} on failure.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// Envelope is the body of every API response.
type Envelope struct {
	Code    int     `json:"code"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
	Message string  `json:"message"`
}

// RespondJSON writes data inside a success envelope with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	write(w, status, Envelope{Code: 0, Data: data, Message: "ok"})
}

// RespondOK writes data inside a success envelope with status 200.
func RespondOK(w http.ResponseWriter, data any) {
	RespondJSON(w, http.StatusOK, data)
}

// RespondError logs err and writes an error envelope whose code mirrors status.
// 5xx responses hide the detail from the client.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	detail := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Error("handler error", "error", err, "status", status)
		detail = http.StatusText(status)
	} else {
		logger.Warn("handler error", "error", err, "status", status)
	}
	write(w, status, Envelope{Code: status, Error: &detail, Message: "error"})
}

// DecodeJSON decodes the request body into v, rejecting unknown fields.
// Oversized bodies (see middleware.BodyLimit) surface as ErrBodyTooLarge.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ErrBodyTooLarge
		}
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// ErrBodyTooLarge is returned by DecodeJSON when the body exceeds the configured limit.
var ErrBodyTooLarge = errors.New("request body too large")

// DecodeStatus maps DecodeJSON errors onto a response status.
func DecodeStatus(err error) int {
	if errors.Is(err, ErrBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}
