package usecase

import (
	"context"

	"resume-builder-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

type projectUsecase struct {
	repo     domain.ProjectRepository
	validate *validator.Validate
}

func NewProjectUsecase(repo domain.ProjectRepository, validate *validator.Validate) domain.ProjectUsecase {
	return &projectUsecase{repo: repo, validate: validate}
}

func (u *projectUsecase) List(ctx context.Context, userID int64) ([]domain.Project, error) {
	items, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeError("Project", "list", err, "user_id", userID)
	}
	return items, nil
}

func (u *projectUsecase) Create(ctx context.Context, userID int64, in *domain.ProjectInput) (*domain.Project, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	p := projectFromInput(userID, in)
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, storeError("Project", "create", err, "user_id", userID)
	}
	return p, nil
}

func (u *projectUsecase) Update(ctx context.Context, userID, id int64, in *domain.ProjectInput) (*domain.Project, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	p := projectFromInput(userID, in)
	p.ID = id
	if err := u.repo.Update(ctx, p); err != nil {
		return nil, storeError("Project", "update", err, "user_id", userID, "id", id)
	}
	return p, nil
}

func (u *projectUsecase) Delete(ctx context.Context, userID, id int64) error {
	if err := u.repo.Delete(ctx, userID, id); err != nil {
		return storeError("Project", "delete", err, "user_id", userID, "id", id)
	}
	return nil
}

func projectFromInput(userID int64, in *domain.ProjectInput) *domain.Project {
	return &domain.Project{
		UserID:      userID,
		Title:       in.Title,
		Link:        optional(in.Link),
		Description: in.Description,
		RoleAndTech: in.RoleAndTech,
	}
}
