package usecase

import (
	"context"

	"resume-builder-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

type educationUsecase struct {
	repo     domain.EducationRepository
	validate *validator.Validate
}

func NewEducationUsecase(repo domain.EducationRepository, validate *validator.Validate) domain.EducationUsecase {
	return &educationUsecase{repo: repo, validate: validate}
}

func (u *educationUsecase) List(ctx context.Context, userID int64) ([]domain.Education, error) {
	items, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeError("Education", "list", err, "user_id", userID)
	}
	return items, nil
}

func (u *educationUsecase) Create(ctx context.Context, userID int64, in *domain.EducationInput) (*domain.Education, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	e := educationFromInput(userID, in)
	if err := u.repo.Create(ctx, e); err != nil {
		return nil, storeError("Education", "create", err, "user_id", userID)
	}
	return e, nil
}

func (u *educationUsecase) Update(ctx context.Context, userID, id int64, in *domain.EducationInput) (*domain.Education, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	e := educationFromInput(userID, in)
	e.ID = id
	if err := u.repo.Update(ctx, e); err != nil {
		return nil, storeError("Education", "update", err, "user_id", userID, "id", id)
	}
	return e, nil
}

func (u *educationUsecase) Delete(ctx context.Context, userID, id int64) error {
	if err := u.repo.Delete(ctx, userID, id); err != nil {
		return storeError("Education", "delete", err, "user_id", userID, "id", id)
	}
	return nil
}

func educationFromInput(userID int64, in *domain.EducationInput) *domain.Education {
	return &domain.Education{
		UserID:    userID,
		Title:     in.Title,
		StartYear: in.StartYear,
		EndYear:   in.EndYear,
		Board:     in.Board,
		CGPA:      in.CGPA,
		Stream:    in.Stream,
		School:    in.School,
		Website:   optional(in.Website),
	}
}
