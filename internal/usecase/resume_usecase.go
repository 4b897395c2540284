package usecase

import (
	"context"
	"time"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/logger"
	"resume-builder-backend/pkg/resume"
)

type resumeUsecase struct {
	profiles  domain.ProfileUsecase
	generator domain.TextGenerator
	media     attachments
	pdfOpts   resume.PDFOptions
	now       func() time.Time
}

// NewResumeUsecase wires PDF generation. A nil generator or store disables it.
func NewResumeUsecase(profiles domain.ProfileUsecase, generator domain.TextGenerator, store domain.MediaStore, pdfOpts resume.PDFOptions) domain.ResumeUsecase {
	return &resumeUsecase{
		profiles:  profiles,
		generator: generator,
		media:     attachments{store: store},
		pdfOpts:   pdfOpts,
		now:       time.Now,
	}
}

// Generate builds the résumé from the caller's own profile, never from
// client-supplied data. The PDF is rendered in memory and only its final
// URL is returned.
func (u *resumeUsecase) Generate(ctx context.Context, userID int64) (*domain.ResumeResult, error) {
	if u.generator == nil || !u.media.enabled() {
		return nil, apperror.Unavailable("Resume generation is not configured")
	}

	doc, err := u.profiles.Assemble(ctx, userID)
	if err != nil {
		return nil, err
	}

	prose, err := u.generator.Generate(ctx, doc)
	if err != nil {
		logger.Log.Error("resume text generation failed", "user_id", userID, "error", err)
		return nil, apperror.Upstream("Failed to generate resume", err)
	}

	pdf, err := resume.RenderPDF(doc, prose, u.now(), u.pdfOpts)
	if err != nil {
		logger.Log.Error("resume pdf render failed", "user_id", userID, "error", err)
		return nil, apperror.Internal(err)
	}

	url, err := u.media.put(ctx, domain.MediaObject{
		Folder:      domain.FolderResumes,
		Filename:    doc.User.Username + "-resume.pdf",
		ContentType: "application/pdf",
		Data:        pdf,
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("resume generated", "user_id", userID)
	return &domain.ResumeResult{PDFURL: url}, nil
}
