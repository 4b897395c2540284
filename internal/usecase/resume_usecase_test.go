package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/internal/usecase"
	"resume-builder-backend/pkg/resume"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleDoc() *domain.ProfileDocument {
	return &domain.ProfileDocument{
		User:             domain.ProfileUser{ID: 1, Name: "Ada", Username: "ada"},
		LinkedinProfiles: []domain.LinkedinProfile{},
		Education:        []domain.Education{{Title: "PhD", School: "MIT"}},
		Skills:           []domain.Skill{{Name: "Go", Type: "Language"}},
		Certifications:   []domain.Certification{},
		Experiences:      []domain.Experience{},
		Projects:         []domain.Project{},
		Hobbies:          []domain.Hobby{},
	}
}

func TestResumeUsecase_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("renders from the caller's profile and returns only the URL", func(t *testing.T) {
		profiles, gen, store := new(MockProfileUsecase), new(MockTextGenerator), new(MockMediaStore)
		uc := usecase.NewResumeUsecase(profiles, gen, store, resume.PDFOptions{})
		doc := sampleDoc()

		profiles.On("Assemble", ctx, int64(1)).Return(doc, nil).Once()
		gen.On("Generate", ctx, doc).Return("Ada is a mathematician.", nil).Once()
		store.On("Upload", ctx, mock.MatchedBy(func(o domain.MediaObject) bool {
			return o.Folder == domain.FolderResumes &&
				o.ContentType == "application/pdf" &&
				o.Filename == "ada-resume.pdf" &&
				bytes.HasPrefix(o.Data, []byte("%PDF-"))
		})).Return("https://cdn/resumes/r.pdf", nil).Once()

		res, err := uc.Generate(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn/resumes/r.pdf", res.PDFURL)
		store.AssertExpectations(t)
	})

	t.Run("text service failure is one upstream error and nothing is stored", func(t *testing.T) {
		profiles, gen, store := new(MockProfileUsecase), new(MockTextGenerator), new(MockMediaStore)
		uc := usecase.NewResumeUsecase(profiles, gen, store, resume.PDFOptions{})

		profiles.On("Assemble", ctx, int64(1)).Return(sampleDoc(), nil).Once()
		gen.On("Generate", ctx, mock.Anything).Return("", errors.New("status=500")).Once()

		_, err := uc.Generate(ctx, 1)
		assert.Equal(t, http.StatusBadGateway, appCode(t, err))
		assert.EqualError(t, err, "Failed to generate resume")
		store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		profiles, gen, store := new(MockProfileUsecase), new(MockTextGenerator), new(MockMediaStore)
		uc := usecase.NewResumeUsecase(profiles, gen, store, resume.PDFOptions{})

		profiles.On("Assemble", ctx, int64(5)).Return(nil, domainNotFound()).Once()

		_, err := uc.Generate(ctx, 5)
		assert.Equal(t, http.StatusNotFound, appCode(t, err))
		gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("not configured", func(t *testing.T) {
		uc := usecase.NewResumeUsecase(new(MockProfileUsecase), nil, new(MockMediaStore), resume.PDFOptions{})

		_, err := uc.Generate(ctx, 1)
		assert.Equal(t, http.StatusServiceUnavailable, appCode(t, err))
	})

	t.Run("unreadable font is an internal error and nothing is stored", func(t *testing.T) {
		profiles, gen, store := new(MockProfileUsecase), new(MockTextGenerator), new(MockMediaStore)
		uc := usecase.NewResumeUsecase(profiles, gen, store, resume.PDFOptions{FontPath: "/nonexistent/font.ttf"})

		profiles.On("Assemble", ctx, int64(1)).Return(sampleDoc(), nil).Once()
		gen.On("Generate", ctx, mock.Anything).Return("Ada.", nil).Once()

		_, err := uc.Generate(ctx, 1)
		assert.Equal(t, http.StatusInternalServerError, appCode(t, err))
		store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	})
}
