package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validEducation() *domain.EducationInput {
	return &domain.EducationInput{
		Title: "PhD", StartYear: "2020", EndYear: "2024", Board: "X",
		CGPA: "8.5", Stream: "CS", School: "MIT",
	}
}

func TestEducationUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("create stamps the caller as owner", func(t *testing.T) {
		repo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(repo, newValidator())

		repo.On("Create", ctx, mock.MatchedBy(func(e *domain.Education) bool {
			return e.UserID == 1 && e.Title == "PhD" && e.Website == nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Education).ID = 10
		}).Return(nil).Once()

		e, err := uc.Create(ctx, 1, validEducation())
		require.NoError(t, err)
		assert.Equal(t, int64(10), e.ID)
		assert.Equal(t, int64(1), e.UserID)
		repo.AssertExpectations(t)
	})

	t.Run("optional website is stored when supplied", func(t *testing.T) {
		repo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(repo, newValidator())
		in := validEducation()
		in.Website = "https://mit.edu"

		repo.On("Create", ctx, mock.MatchedBy(func(e *domain.Education) bool {
			return e.Website != nil && *e.Website == "https://mit.edu"
		})).Return(nil).Once()

		_, err := uc.Create(ctx, 1, in)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("missing mandatory field is rejected before the store", func(t *testing.T) {
		repo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(repo, newValidator())
		in := validEducation()
		in.School = "  "

		_, err := uc.Create(ctx, 1, in)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("update of a record owned by someone else is not found", func(t *testing.T) {
		repo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(repo, newValidator())

		repo.On("Update", ctx, mock.MatchedBy(func(e *domain.Education) bool {
			return e.ID == 5 && e.UserID == 2
		})).Return(domain.ErrNotFound).Once()

		_, err := uc.Update(ctx, 2, 5, validEducation())
		assert.Equal(t, http.StatusNotFound, appCode(t, err))
		assert.EqualError(t, err, "Education not found")
	})

	t.Run("delete not found", func(t *testing.T) {
		repo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(repo, newValidator())
		repo.On("Delete", ctx, int64(2), int64(5)).Return(domain.ErrNotFound).Once()

		err := uc.Delete(ctx, 2, 5)
		assert.Equal(t, http.StatusNotFound, appCode(t, err))
	})

	t.Run("store failure is hidden", func(t *testing.T) {
		repo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(repo, newValidator())
		repo.On("ListByUser", ctx, int64(1)).Return(nil, errors.New("pq: connection refused")).Once()

		_, err := uc.List(ctx, 1)
		assert.Equal(t, http.StatusInternalServerError, appCode(t, err))
		assert.Equal(t, "Internal Server Error", err.Error())
	})
}

func TestExperienceUsecase_RoleType(t *testing.T) {
	ctx := context.Background()
	repo := new(MockExperienceRepo)
	uc := usecase.NewExperienceUsecase(repo, newValidator())

	in := &domain.ExperienceInput{
		Designation: "Engineer", Profile: "Backend", Organization: "Acme", Location: "Remote",
		StartDate: "Jan 2022", EndDate: "Present", RoleType: "Freelance",
	}
	_, err := uc.Create(ctx, 1, in)
	assert.Equal(t, http.StatusBadRequest, appCode(t, err))

	in.RoleType = domain.RoleTypeInternship
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Experience")).Return(nil).Once()
	e, err := uc.Create(ctx, 1, in)
	require.NoError(t, err)
	assert.Equal(t, "Internship", e.RoleType)
}

func TestSkillUsecase_UpdateOverwritesAllFields(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSkillRepo)
	uc := usecase.NewSkillUsecase(repo, newValidator())

	repo.On("Update", ctx, &domain.Skill{ID: 3, UserID: 1, Name: "Rust", Type: "Language"}).Return(nil).Once()

	s, err := uc.Update(ctx, 1, 3, &domain.SkillInput{Name: "Rust", Type: "Language"})
	require.NoError(t, err)
	assert.Equal(t, "Rust", s.Name)
	repo.AssertExpectations(t)
}

func TestProjectUsecase_OptionalLink(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProjectRepo)
	uc := usecase.NewProjectUsecase(repo, newValidator())

	repo.On("Create", ctx, mock.MatchedBy(func(p *domain.Project) bool { return p.Link == nil })).Return(nil).Once()

	_, err := uc.Create(ctx, 1, &domain.ProjectInput{Title: "CLI", Description: "A tool", RoleAndTech: "Go"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, 1, &domain.ProjectInput{Title: "CLI", RoleAndTech: "Go"})
	assert.Equal(t, http.StatusBadRequest, appCode(t, err))
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestLinkedinUsecase_RequiresURL(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLinkedinRepo)
	uc := usecase.NewLinkedinUsecase(repo, newValidator())

	_, err := uc.Create(ctx, 1, &domain.LinkedinInput{Name: "Ada", URL: "linkedin ada"})
	assert.Equal(t, http.StatusBadRequest, appCode(t, err))

	repo.On("Delete", ctx, int64(1), int64(9)).Return(nil).Once()
	assert.NoError(t, uc.Delete(ctx, 1, 9))
}

func TestHobbyUsecase(t *testing.T) {
	ctx := context.Background()
	repo := new(MockHobbyRepo)
	uc := usecase.NewHobbyUsecase(repo, newValidator())

	repo.On("ListByUser", ctx, int64(1)).Return([]domain.Hobby{{ID: 1, UserID: 1, Name: "Chess"}}, nil).Once()
	items, err := uc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = uc.Create(ctx, 1, &domain.HobbyInput{Name: ""})
	assert.Equal(t, http.StatusBadRequest, appCode(t, err))
}
