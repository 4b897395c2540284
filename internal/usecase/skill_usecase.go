package usecase

import (
	"context"

	"resume-builder-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

type skillUsecase struct {
	repo     domain.SkillRepository
	validate *validator.Validate
}

func NewSkillUsecase(repo domain.SkillRepository, validate *validator.Validate) domain.SkillUsecase {
	return &skillUsecase{repo: repo, validate: validate}
}

func (u *skillUsecase) List(ctx context.Context, userID int64) ([]domain.Skill, error) {
	items, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeError("Skill", "list", err, "user_id", userID)
	}
	return items, nil
}

func (u *skillUsecase) Create(ctx context.Context, userID int64, in *domain.SkillInput) (*domain.Skill, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	s := &domain.Skill{UserID: userID, Name: in.Name, Type: in.Type}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, storeError("Skill", "create", err, "user_id", userID)
	}
	return s, nil
}

func (u *skillUsecase) Update(ctx context.Context, userID, id int64, in *domain.SkillInput) (*domain.Skill, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	s := &domain.Skill{ID: id, UserID: userID, Name: in.Name, Type: in.Type}
	if err := u.repo.Update(ctx, s); err != nil {
		return nil, storeError("Skill", "update", err, "user_id", userID, "id", id)
	}
	return s, nil
}

func (u *skillUsecase) Delete(ctx context.Context, userID, id int64) error {
	if err := u.repo.Delete(ctx, userID, id); err != nil {
		return storeError("Skill", "delete", err, "user_id", userID, "id", id)
	}
	return nil
}
