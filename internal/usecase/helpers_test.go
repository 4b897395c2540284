package usecase_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.Validate {
	return validation.New()
}

// appCode extracts the HTTP status carried by an *apperror.AppError.
func appCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %T: %v", err, err)
	return appErr.Code
}

func strPtr(s string) *string { return &s }

func pngUpload(t *testing.T, name string) *domain.FileUpload {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	img.Set(1, 1, color.RGBA{G: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &domain.FileUpload{Filename: name, Data: buf.Bytes()}
}

func pdfUpload(name string) *domain.FileUpload {
	return &domain.FileUpload{Filename: name, Data: []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n1 0 obj\n")}
}

func domainNotFound() error {
	return apperror.NotFound("User not found")
}
