// Package response provides helpers for writing consistent JSON HTTP
// responses, and is the only place where application errors are turned
// into HTTP status codes.
//
// Every error response has the same shape:
//
//	{ "message": "No page with this id exists", "timestamp": 1700000000000 }
//
// timestamp is milliseconds since the Unix epoch.
package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aanand-mishra/people-api/internal/service"
)

// Fixed client-facing messages.
const (
	MsgNotFound = "No page with this id exists"
	MsgInternal = "internal server error"
)

// ErrorResponse is the envelope returned for every error case.
type ErrorResponse struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// Now is the clock used for timestamps. Tests replace it.
var Now = time.Now

// BadRequestError marks a client mistake that is not a validation
// failure (empty body, malformed JSON, non-numeric id).
type BadRequestError struct {
	Err error
}

func (e *BadRequestError) Error() string { return e.Err.Error() }
func (e *BadRequestError) Unwrap() error { return e.Err }

// BadRequest wraps err so WriteError maps it to 400.
func BadRequest(err error) error {
	return &BadRequestError{Err: err}
}

// ─────────────────────────────────────────────────────────────────────────────
// WriteJSON writes data JSON-encoded with the given status code.
//
// ORDER MATTERS: Header() → WriteHeader() → body. Once WriteHeader is
// called, headers are locked.
// ─────────────────────────────────────────────────────────────────────────────
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// Error builds an ErrorResponse stamped with the current time.
func Error(message string) ErrorResponse {
	return ErrorResponse{
		Message:   message,
		Timestamp: Now().UnixMilli(),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// WriteError maps err to a status code and writes the error envelope.
//
//	service.ErrNotFound        → 404, fixed message
//	*service.NotCreatedError   → 400, aggregated validation message
//	*BadRequestError           → 400, the error text
//	anything else              → 500, generic message (cause is logged)
//
// ─────────────────────────────────────────────────────────────────────────────
func WriteError(w http.ResponseWriter, err error) {
	var (
		notCreated *service.NotCreatedError
		badRequest *BadRequestError
	)

	switch {
	case errors.Is(err, service.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, Error(MsgNotFound))
	case errors.As(err, &notCreated):
		WriteJSON(w, http.StatusBadRequest, Error(notCreated.Message))
	case errors.As(err, &badRequest):
		WriteJSON(w, http.StatusBadRequest, Error(badRequest.Error()))
	default:
		slog.Error("unhandled error", slog.String("error", err.Error()))
		WriteJSON(w, http.StatusInternalServerError, Error(MsgInternal))
	}
}
