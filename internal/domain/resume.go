package domain

import "context"

// TextGenerator turns structured profile data into résumé prose.
type TextGenerator interface {
	Generate(ctx context.Context, payload any) (string, error)
}

type ResumeResult struct {
	PDFURL string `json:"pdfUrl"`
}

type ResumeUsecase interface {
	Generate(ctx context.Context, userID int64) (*ResumeResult, error)
}

const (
	ExportFormatXLSX = "xlsx"
	ExportFormatCSV  = "csv"
)

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ExportUsecase interface {
	Export(ctx context.Context, userID int64, format string) (*ExportFile, error)
}
