package usecase

import (
	"context"

	"resume-builder-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

type experienceUsecase struct {
	repo     domain.ExperienceRepository
	validate *validator.Validate
}

func NewExperienceUsecase(repo domain.ExperienceRepository, validate *validator.Validate) domain.ExperienceUsecase {
	return &experienceUsecase{repo: repo, validate: validate}
}

func (u *experienceUsecase) List(ctx context.Context, userID int64) ([]domain.Experience, error) {
	items, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeError("Experience", "list", err, "user_id", userID)
	}
	return items, nil
}

func (u *experienceUsecase) Create(ctx context.Context, userID int64, in *domain.ExperienceInput) (*domain.Experience, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	e := experienceFromInput(userID, in)
	if err := u.repo.Create(ctx, e); err != nil {
		return nil, storeError("Experience", "create", err, "user_id", userID)
	}
	return e, nil
}

func (u *experienceUsecase) Update(ctx context.Context, userID, id int64, in *domain.ExperienceInput) (*domain.Experience, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	e := experienceFromInput(userID, in)
	e.ID = id
	if err := u.repo.Update(ctx, e); err != nil {
		return nil, storeError("Experience", "update", err, "user_id", userID, "id", id)
	}
	return e, nil
}

func (u *experienceUsecase) Delete(ctx context.Context, userID, id int64) error {
	if err := u.repo.Delete(ctx, userID, id); err != nil {
		return storeError("Experience", "delete", err, "user_id", userID, "id", id)
	}
	return nil
}

func experienceFromInput(userID int64, in *domain.ExperienceInput) *domain.Experience {
	return &domain.Experience{
		UserID:       userID,
		Designation:  in.Designation,
		Profile:      in.Profile,
		Organization: in.Organization,
		Location:     in.Location,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		RoleType:     in.RoleType,
	}
}
