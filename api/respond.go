package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rpupo63/blog-content-api/errs"
	"github.com/rs/zerolog"
)

// Pagination is the page metadata attached to list responses.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// envelope is the uniform JSON wrapper every endpoint responds with.
type envelope struct {
	Success    bool                  `json:"success"`
	Message    string                `json:"message,omitempty"`
	Data       any                   `json:"data,omitempty"`
	Pagination *Pagination           `json:"pagination,omitempty"`
	Errors     []errs.FieldViolation `json:"errors,omitempty"`
	Timestamp  string                `json:"timestamp"`
}

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteSuccess writes a success envelope with the given status code.
func (r Responder) WriteSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	r.write(w, statusCode, envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// WritePaginated writes a success envelope carrying page metadata.
func (r Responder) WritePaginated(w http.ResponseWriter, data any, pagination Pagination) {
	r.write(w, http.StatusOK, envelope{
		Success:    true,
		Data:       data,
		Pagination: &pagination,
	})
}

// WriteError maps an error onto the taxonomy's status code and writes an
// error envelope. Unexpected errors become an opaque 500; only the error's
// own message ever reaches the client.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.write(w, http.StatusInternalServerError, envelope{
			Success: false,
			Message: "An unexpected error occurred",
		})
		return
	}

	if apiErr.Cause != nil {
		r.logger.Error().Int("status", apiErr.StatusCode).Msg(apiErr.GetFullError())
	}

	message := apiErr.Error()
	if len(apiErr.Violations) > 0 {
		message = "Validation errors"
	}

	r.write(w, apiErr.StatusCode, envelope{
		Success: false,
		Message: message,
		Errors:  apiErr.Violations,
	})
}

func (r Responder) write(w http.ResponseWriter, statusCode int, env envelope) {
	env.Timestamp = time.Now().UTC().Format(time.RFC3339)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
