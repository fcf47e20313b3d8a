package errs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// NewDatabaseError maps a store-layer failure onto the API taxonomy. Every
// repository error crosses this boundary exactly once, in the handler.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("failed to %s %s", operation, entity)

	switch {
	case errors.Is(cause, gorm.ErrRecordNotFound):
		return &ApiErr{
			StatusCode: http.StatusNotFound,
			err:        fmt.Errorf("%s %w", entity, ErrNotFound),
			Cause:      cause,
		}
	case errors.Is(cause, gorm.ErrDuplicatedKey) || strings.Contains(cause.Error(), "duplicate key"):
		return &ApiErr{
			StatusCode: http.StatusBadRequest,
			err: sentinelError{
				msg:      fmt.Sprintf("A %s with this title already exists", entity),
				sentinel: ErrDuplicate,
			},
			Cause: cause,
		}
	case strings.Contains(cause.Error(), "check constraint"):
		// the schema's own validators rejected the materialized row
		return &ApiErr{
			StatusCode: http.StatusBadRequest,
			err:        fmt.Errorf("%s %w", entity, ErrValidation),
			Cause:      cause,
		}
	case errors.Is(cause, context.DeadlineExceeded) || strings.Contains(cause.Error(), "timeout"):
		return &ApiErr{
			StatusCode: http.StatusRequestTimeout,
			err:        ErrTimeout,
			Cause:      cause,
		}
	case strings.Contains(cause.Error(), "connection refused"),
		strings.Contains(cause.Error(), "connection reset"),
		strings.Contains(cause.Error(), "no such host"),
		strings.Contains(cause.Error(), "failed to connect"):
		return &ApiErr{
			StatusCode: http.StatusServiceUnavailable,
			err:        ErrStoreUnavailable,
			Cause:      cause,
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        errors.New(details),
		Cause:      cause,
	}
}
