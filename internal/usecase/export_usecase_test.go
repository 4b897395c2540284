package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"resume-builder-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportUsecase_Excel(t *testing.T) {
	ctx := context.Background()
	profiles := new(MockProfileUsecase)
	uc := usecase.NewExportUsecase(profiles)
	profiles.On("Assemble", ctx, int64(1)).Return(sampleDoc(), nil).Once()

	file, err := uc.Export(ctx, 1, "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(file.Filename, "profile_ada_"))
	assert.True(t, strings.HasSuffix(file.Filename, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Profile", "Education", "Skills"}, f.GetSheetList())

	header, err := f.GetCellValue("Skills", "A1")
	require.NoError(t, err)
	assert.Equal(t, "NAME", header)

	value, err := f.GetCellValue("Skills", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Go", value)
}

func TestExportUsecase_CSV(t *testing.T) {
	ctx := context.Background()
	profiles := new(MockProfileUsecase)
	uc := usecase.NewExportUsecase(profiles)
	profiles.On("Assemble", ctx, int64(1)).Return(sampleDoc(), nil).Once()

	file, err := uc.Export(ctx, 1, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"section", "record", "field", "value"}, records[0])
	assert.Contains(t, records, []string{"Skills", "1", "name", "Go"})
	assert.Contains(t, records, []string{"Profile", "1", "username", "ada"})
}

func TestExportUsecase_UnknownFormat(t *testing.T) {
	profiles := new(MockProfileUsecase)
	uc := usecase.NewExportUsecase(profiles)

	_, err := uc.Export(context.Background(), 1, "docx")
	assert.Equal(t, http.StatusBadRequest, appCode(t, err))
	profiles.AssertNotCalled(t, "Assemble", mock.Anything, mock.Anything)
}
