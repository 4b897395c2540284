package domain

import "context"

type Project struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Title       string  `json:"title"`
	Link        *string `json:"link"`
	Description string  `json:"description"`
	RoleAndTech string  `json:"role_and_tech"`
}

type ProjectInput struct {
	Title       string `json:"title" validate:"not_blank,max=200"`
	Link        string `json:"link" validate:"omitempty,max=500"`
	Description string `json:"description" validate:"not_blank"`
	RoleAndTech string `json:"role_and_tech" validate:"not_blank"`
}

type ProjectRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]Project, error)
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, userID, id int64) error
}

type ProjectUsecase interface {
	List(ctx context.Context, userID int64) ([]Project, error)
	Create(ctx context.Context, userID int64, in *ProjectInput) (*Project, error)
	Update(ctx context.Context, userID, id int64, in *ProjectInput) (*Project, error)
	Delete(ctx context.Context, userID, id int64) error
}
