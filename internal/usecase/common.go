package usecase

import (
	"errors"
	"strings"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/logger"
	"resume-builder-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func validateInput(v *validator.Validate, in any) error {
	if err := v.Struct(in); err != nil {
		return apperror.Validation(validation.FormatValidationErrors(err))
	}
	return nil
}

// storeError maps repository errors for one kind of record. Anything other
// than a sentinel is logged and hidden behind a generic 500.
func storeError(kind, op string, err error, attrs ...any) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound(kind + " not found")
	case errors.Is(err, domain.ErrConflict):
		return apperror.Conflict(kind + " already exists")
	}
	logger.Log.Error("store operation failed", append(attrs, "kind", kind, "op", op, "error", err)...)
	return apperror.Internal(err)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
