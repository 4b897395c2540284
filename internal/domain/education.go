package domain

import "context"

// EducationLevels is the closed set of stages offered by the client form.
// The server accepts any non-empty title.
func EducationLevels() []string {
	return []string{"10th", "12th", "Diploma", "Graduation", "Post Graduation", "PhD"}
}

type Education struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	Title     string  `json:"title"`
	StartYear string  `json:"start_year"`
	EndYear   string  `json:"end_year"`
	Board     string  `json:"board"`
	CGPA      string  `json:"cgpa"`
	Stream    string  `json:"stream"`
	School    string  `json:"school"`
	Website   *string `json:"website"`
}

type EducationInput struct {
	Title     string `json:"title" validate:"not_blank,max=60"`
	StartYear string `json:"start_year" validate:"not_blank,max=20"`
	EndYear   string `json:"end_year" validate:"not_blank,max=20"`
	Board     string `json:"board" validate:"not_blank,max=200"`
	CGPA      string `json:"cgpa" validate:"not_blank,max=20"`
	Stream    string `json:"stream" validate:"not_blank,max=200"`
	School    string `json:"school" validate:"not_blank,max=200"`
	Website   string `json:"website" validate:"omitempty,max=500"`
}

type EducationRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]Education, error)
	Create(ctx context.Context, e *Education) error
	Update(ctx context.Context, e *Education) error
	Delete(ctx context.Context, userID, id int64) error
}

type EducationUsecase interface {
	List(ctx context.Context, userID int64) ([]Education, error)
	Create(ctx context.Context, userID int64, in *EducationInput) (*Education, error)
	Update(ctx context.Context, userID, id int64, in *EducationInput) (*Education, error)
	Delete(ctx context.Context, userID, id int64) error
}
