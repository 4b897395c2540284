package usecase

import (
	"context"

	"resume-builder-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

type hobbyUsecase struct {
	repo     domain.HobbyRepository
	validate *validator.Validate
}

func NewHobbyUsecase(repo domain.HobbyRepository, validate *validator.Validate) domain.HobbyUsecase {
	return &hobbyUsecase{repo: repo, validate: validate}
}

func (u *hobbyUsecase) List(ctx context.Context, userID int64) ([]domain.Hobby, error) {
	items, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeError("Hobby", "list", err, "user_id", userID)
	}
	return items, nil
}

func (u *hobbyUsecase) Create(ctx context.Context, userID int64, in *domain.HobbyInput) (*domain.Hobby, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	h := &domain.Hobby{UserID: userID, Name: in.Name}
	if err := u.repo.Create(ctx, h); err != nil {
		return nil, storeError("Hobby", "create", err, "user_id", userID)
	}
	return h, nil
}

func (u *hobbyUsecase) Delete(ctx context.Context, userID, id int64) error {
	if err := u.repo.Delete(ctx, userID, id); err != nil {
		return storeError("Hobby", "delete", err, "user_id", userID, "id", id)
	}
	return nil
}
