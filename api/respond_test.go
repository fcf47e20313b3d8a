package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rpupo63/blog-content-api/errs"
	"github.com/rs/zerolog"
)

func TestWriteError_ApiErrStatusAndMessage(t *testing.T) {
	responder := NewResponder(zerolog.Nop())
	rec := httptest.NewRecorder()

	responder.WriteError(rec, errs.NewNotFoundError("Blog post not found"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}

	var env testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("not an envelope: %v", err)
	}
	if env.Success {
		t.Error("success should be false")
	}
	if env.Message != "Blog post not found" {
		t.Errorf("message = %q", env.Message)
	}
	if env.Timestamp == "" {
		t.Error("timestamp missing")
	}
}

func TestWriteError_UnexpectedErrorStaysOpaque(t *testing.T) {
	responder := NewResponder(zerolog.Nop())
	rec := httptest.NewRecorder()

	responder.WriteError(rec, errors.New("pq: syntax error in internal query"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}

	var env testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("not an envelope: %v", err)
	}
	if env.Message != "An unexpected error occurred" {
		t.Errorf("message = %q, internal detail must not leak", env.Message)
	}
}

func TestWriteError_ValidationCarriesAllFields(t *testing.T) {
	responder := NewResponder(zerolog.Nop())
	rec := httptest.NewRecorder()

	responder.WriteError(rec, errs.NewValidationError([]errs.FieldViolation{
		{Field: "title", Message: "Title is required"},
		{Field: "content", Message: "Content is required"},
	}))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	var env testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("not an envelope: %v", err)
	}
	if env.Message != "Validation errors" {
		t.Errorf("message = %q", env.Message)
	}
	if len(env.Errors) != 2 {
		t.Errorf("errors = %v, want both violations", env.Errors)
	}
}

func TestWriteSuccess_Envelope(t *testing.T) {
	responder := NewResponder(zerolog.Nop())
	rec := httptest.NewRecorder()

	responder.WriteSuccess(rec, http.StatusCreated, "Blog post created successfully", map[string]string{"slug": "ai-basics"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	var env testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("not an envelope: %v", err)
	}
	if !env.Success || env.Message != "Blog post created successfully" {
		t.Errorf("envelope = %+v", env)
	}
}
