package domain

import "context"

const (
	RoleTypeJob        = "Job"
	RoleTypeInternship = "Internship"
)

type Experience struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	Designation  string `json:"designation"`
	Profile      string `json:"profile"`
	Organization string `json:"organization"`
	Location     string `json:"location"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	RoleType     string `json:"role_type"`
}

// ExperienceInput dates are free text ("Jan 2022", "Present").
type ExperienceInput struct {
	Designation  string `json:"designation" validate:"not_blank,max=200"`
	Profile      string `json:"profile" validate:"not_blank"`
	Organization string `json:"organization" validate:"not_blank,max=200"`
	Location     string `json:"location" validate:"not_blank,max=200"`
	StartDate    string `json:"start_date" validate:"not_blank,max=40"`
	EndDate      string `json:"end_date" validate:"not_blank,max=40"`
	RoleType     string `json:"role_type" validate:"required,oneof=Job Internship"`
}

type ExperienceRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]Experience, error)
	Create(ctx context.Context, e *Experience) error
	Update(ctx context.Context, e *Experience) error
	Delete(ctx context.Context, userID, id int64) error
}

type ExperienceUsecase interface {
	List(ctx context.Context, userID int64) ([]Experience, error)
	Create(ctx context.Context, userID int64, in *ExperienceInput) (*Experience, error)
	Update(ctx context.Context, userID, id int64, in *ExperienceInput) (*Experience, error)
	Delete(ctx context.Context, userID, id int64) error
}
