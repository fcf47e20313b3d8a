package errs

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"gorm.io/gorm"
)

func TestNewDatabaseError_Taxonomy(t *testing.T) {
	tests := []struct {
		name       string
		cause      error
		wantStatus int
	}{
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"gorm duplicate", gorm.ErrDuplicatedKey, http.StatusBadRequest},
		{"raw duplicate key message", errors.New(`pq: duplicate key value violates unique constraint "idx_blogs_slug"`), http.StatusBadRequest},
		{"check constraint violation", errors.New(`pq: new row for relation "blogs" violates check constraint "chk_blogs_title_length"`), http.StatusBadRequest},
		{"deadline exceeded", context.DeadlineExceeded, http.StatusRequestTimeout},
		{"driver timeout message", errors.New("pq: canceling statement due to statement timeout"), http.StatusRequestTimeout},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), http.StatusServiceUnavailable},
		{"anything else", errors.New("syntax error at or near"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := NewDatabaseError("find", "blog post", tt.cause)
			if apiErr.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d (err: %v)", apiErr.StatusCode, tt.wantStatus, apiErr)
			}
			if apiErr.Cause == nil {
				t.Error("cause must be retained for logging")
			}
		})
	}
}

func TestNewDatabaseError_SentinelChecks(t *testing.T) {
	if !IsNotFound(NewDatabaseError("find", "blog post", gorm.ErrRecordNotFound)) {
		t.Error("IsNotFound should match a mapped record-not-found")
	}
	dup := NewDatabaseError("create", "blog post", gorm.ErrDuplicatedKey)
	if !IsDuplicate(dup) {
		t.Error("IsDuplicate should match a mapped duplicate key")
	}
	if dup.Error() != "A blog post with this title already exists" {
		t.Errorf("duplicate message = %q", dup.Error())
	}
	if !IsTimeout(NewDatabaseError("list", "blog posts", context.DeadlineExceeded)) {
		t.Error("IsTimeout should match a mapped deadline")
	}
}

func TestValidationError(t *testing.T) {
	violations := []FieldViolation{
		{Field: "title", Message: "Title is required"},
		{Field: "content", Message: "Content is required"},
	}
	apiErr := NewValidationError(violations)

	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", apiErr.StatusCode)
	}
	if len(apiErr.Violations) != 2 {
		t.Errorf("Violations = %v, want both fields", apiErr.Violations)
	}
	if !errors.Is(apiErr, ErrValidation) {
		t.Error("validation error should unwrap to the sentinel")
	}
}
