package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// authUserID reads the id AuthMiddleware stored. It reports the error itself.
func authUserID(c *gin.Context) (int64, bool) {
	id := c.GetInt64(string(domain.KeyUserID))
	if id <= 0 {
		_ = c.Error(apperror.Unauthorized("Unauthorized"))
		return 0, false
	}
	return id, true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(apperror.BadRequest("Invalid ID"))
		return 0, false
	}
	return id, true
}

// bind decodes JSON or form bodies. Field rules are checked by the usecase.
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			_ = c.Error(apperror.TooLarge("Request body too large"))
			return false
		}
		_ = c.Error(apperror.BadRequest("Invalid request body"))
		return false
	}
	return true
}

// uploads reads optional multipart files into memory under a size cap.
type uploads struct {
	maxBytes int64
	// Per-user upload rate limit, may be nil
	limit gin.HandlerFunc
}

// chain puts the upload rate limit and a body bound in front of h, so a
// multipart body cannot exceed the file cap plus room for the text fields.
func (u uploads) chain(h gin.HandlerFunc) []gin.HandlerFunc {
	bound := func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, u.maxBytes+1<<20)
		c.Next()
	}
	if u.limit == nil {
		return []gin.HandlerFunc{bound, h}
	}
	return []gin.HandlerFunc{u.limit, bound, h}
}

// read returns nil when field is absent.
func (u uploads) read(c *gin.Context, field string) (*domain.FileUpload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, apperror.TooLarge(tooLargeMessage(u.maxBytes))
		}
		return nil, apperror.BadRequest("Invalid multipart form")
	}
	if fh.Size > u.maxBytes {
		return nil, apperror.TooLarge(tooLargeMessage(u.maxBytes))
	}

	f, err := fh.Open()
	if err != nil {
		return nil, apperror.BadRequest("Unable to read uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, u.maxBytes+1))
	if err != nil {
		return nil, apperror.BadRequest("Unable to read uploaded file")
	}
	if int64(len(data)) > u.maxBytes {
		return nil, apperror.TooLarge(tooLargeMessage(u.maxBytes))
	}
	if len(data) == 0 {
		return nil, apperror.BadRequest("Uploaded file is empty")
	}
	return &domain.FileUpload{Filename: fh.Filename, Data: data}, nil
}

func tooLargeMessage(maxBytes int64) string {
	if maxBytes < 1<<20 {
		return fmt.Sprintf("File exceeds the %d KB limit", maxBytes>>10)
	}
	return fmt.Sprintf("File exceeds the %d MB limit", maxBytes>>20)
}
