package usecase

import (
	"context"

	"resume-builder-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

type linkedinUsecase struct {
	repo     domain.LinkedinRepository
	validate *validator.Validate
}

func NewLinkedinUsecase(repo domain.LinkedinRepository, validate *validator.Validate) domain.LinkedinUsecase {
	return &linkedinUsecase{repo: repo, validate: validate}
}

func (u *linkedinUsecase) List(ctx context.Context, userID int64) ([]domain.LinkedinProfile, error) {
	items, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeError("LinkedIn profile", "list", err, "user_id", userID)
	}
	return items, nil
}

func (u *linkedinUsecase) Create(ctx context.Context, userID int64, in *domain.LinkedinInput) (*domain.LinkedinProfile, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	l := &domain.LinkedinProfile{UserID: userID, Name: in.Name, URL: in.URL}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, storeError("LinkedIn profile", "create", err, "user_id", userID)
	}
	return l, nil
}

func (u *linkedinUsecase) Update(ctx context.Context, userID, id int64, in *domain.LinkedinInput) (*domain.LinkedinProfile, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	l := &domain.LinkedinProfile{ID: id, UserID: userID, Name: in.Name, URL: in.URL}
	if err := u.repo.Update(ctx, l); err != nil {
		return nil, storeError("LinkedIn profile", "update", err, "user_id", userID, "id", id)
	}
	return l, nil
}

func (u *linkedinUsecase) Delete(ctx context.Context, userID, id int64) error {
	if err := u.repo.Delete(ctx, userID, id); err != nil {
		return storeError("LinkedIn profile", "delete", err, "user_id", userID, "id", id)
	}
	return nil
}
