// Package respond writes the uniform JSON envelope used by every
// endpoint and sanitizes error messages so internal details never leak
// to clients.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Envelope is the uniform response shape:
// {success, message, data?, errors?, pagination?, timestamp}.
type Envelope struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Errors     any    `json:"errors,omitempty"`
	Pagination any    `json:"pagination,omitempty"`
	Timestamp  string `json:"timestamp"`
}

func write(w http.ResponseWriter, code int, env Envelope) {
	env.Timestamp = time.Now().UTC().Format(time.RFC3339)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		// Headers are already sent; all we can do is log.
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Success writes a success envelope with the given payload.
func Success(w http.ResponseWriter, code int, message string, data any) {
	write(w, code, Envelope{Success: true, Message: message, Data: data})
}

// Paginated writes a success envelope for one page of a listing. items
// is wrapped as data.items; meta becomes the pagination block.
func Paginated(w http.ResponseWriter, code int, message string, items any, meta any) {
	write(w, code, Envelope{
		Success:    true,
		Message:    message,
		Data:       map[string]any{"items": items},
		Pagination: meta,
	})
}

// Error writes a failure envelope with the given message.
func Error(w http.ResponseWriter, code int, message string) {
	write(w, code, Envelope{Success: false, Message: message})
}

// ValidationFailed writes a 400 failure envelope carrying per-field
// error details.
func ValidationFailed(w http.ResponseWriter, errs any) {
	write(w, http.StatusBadRequest, Envelope{
		Success: false,
		Message: "validation failed",
		Errors:  errs,
	})
}

// safeSubstrings marks error messages that are fine to show to users.
// Everything else is treated as internal.
var safeSubstrings = []string{
	"required",
	"invalid",
	"not found",
	"already exists",
	"must be",
	"must differ",
	"must contain",
	"cannot be",
	"too large",
	"unsupported",
}

// SafeError decides whether err is user-facing. Validation-style
// messages pass through; anything else is logged with credentials
// masked and replaced by a generic message. 5xx codes are always
// treated as internal.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	msg := err.Error()

	isSafe := false
	if code < 500 {
		lowerMsg := strings.ToLower(msg)
		for _, safe := range safeSubstrings {
			if strings.Contains(lowerMsg, safe) {
				isSafe = true
				break
			}
		}
	}

	if isSafe {
		Error(w, code, msg)
		return
	}
	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	Error(w, code, "internal server error")
}
