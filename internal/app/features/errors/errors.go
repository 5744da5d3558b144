// internal/app/features/errors/errors.go
//
// Package errors writes the JSON envelope every report endpoint answers
// with, and logs and reports failures on the way out.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/dalemusser/schoolreports/internal/app/store/recordstore"
	"github.com/dalemusser/schoolreports/internal/app/system/observability"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Envelope statuses.
const (
	StatusOK      = "ok"
	StatusEmpty   = "empty"
	StatusLoading = "loading"
	StatusError   = "error"
)

// Envelope is the body of every report response. Ref identifies a logged
// failure so support can find it.
type Envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
	Hint   string `json:"hint,omitempty"`
	Ref    string `json:"ref,omitempty"`
}

// User-facing messages for store failures.
const (
	MsgUnavailable  = "The school database is temporarily unavailable. Please try again."
	MsgMissingIndex = "This report needs a database index that has not been created yet."
)

// WriteJSON writes env with status code.
func WriteJSON(w http.ResponseWriter, code int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(env)
}

// OK writes data with status "ok", or "empty" when empty is true. Empty is
// a normal outcome, not an error.
func OK(w http.ResponseWriter, data any, empty bool) {
	status := StatusOK
	if empty {
		status = StatusEmpty
	}
	WriteJSON(w, http.StatusOK, Envelope{Status: status, Data: data})
}

// Loading tells the caller the first snapshot is not ready yet.
func Loading(w http.ResponseWriter) {
	WriteJSON(w, http.StatusAccepted, Envelope{Status: StatusLoading})
}

// ErrorLogger logs request failures and writes the error envelope.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

func (e *ErrorLogger) fields(r *http.Request, ref string, err error) []zap.Field {
	return []zap.Field{
		zap.String("ref", ref),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	}
}

// LogServerError logs err with a fresh reference id, reports it, and writes
// a 500 with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	ref := uuid.NewString()
	e.Log.Error(msg, e.fields(r, ref, err)...)
	observability.CaptureWithTags(err, map[string]string{"ref": ref, "path": r.URL.Path})
	WriteJSON(w, http.StatusInternalServerError, Envelope{Status: StatusError, Error: userMsg, Ref: ref})
}

// LogBadRequest logs a rejected request at warn and writes a 400.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.Log.Warn(msg, zap.String("path", r.URL.Path), zap.Error(err))
	WriteJSON(w, http.StatusBadRequest, Envelope{Status: StatusError, Error: userMsg})
}

// NotFound writes a 404.
func (e *ErrorLogger) NotFound(w http.ResponseWriter, userMsg string) {
	WriteJSON(w, http.StatusNotFound, Envelope{Status: StatusError, Error: userMsg})
}

// LogStoreError maps record store failures to responses. A missing index is
// a 503 carrying the operator hint; a transient failure is a 503 with a
// retry message and reference id; anything else is a 500.
func (e *ErrorLogger) LogStoreError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	var mi *recordstore.MissingIndexError
	switch {
	case stderrors.As(err, &mi):
		ref := uuid.NewString()
		e.Log.Error(msg, append(e.fields(r, ref, err), zap.String("hint", mi.Hint()))...)
		observability.CaptureWithTags(err, map[string]string{"ref": ref, "kind": "missing_index"})
		WriteJSON(w, http.StatusServiceUnavailable, Envelope{
			Status: StatusError, Error: MsgMissingIndex, Hint: mi.Hint(), Ref: ref,
		})
	case recordstore.IsTransient(err), stderrors.Is(err, context.DeadlineExceeded):
		ref := uuid.NewString()
		e.Log.Warn(msg, e.fields(r, ref, err)...)
		observability.CaptureWithTags(err, map[string]string{"ref": ref, "kind": "transient"})
		WriteJSON(w, http.StatusServiceUnavailable, Envelope{Status: StatusError, Error: MsgUnavailable, Ref: ref})
	default:
		e.LogServerError(w, r, msg, err, "Something went wrong while building this report.")
	}
}
