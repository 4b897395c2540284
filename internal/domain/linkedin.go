package domain

import "context"

type LinkedinProfile struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
}

type LinkedinInput struct {
	Name string `json:"name" validate:"not_blank,max=200"`
	URL  string `json:"url" validate:"required,url,max=500"`
}

type LinkedinRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]LinkedinProfile, error)
	Create(ctx context.Context, l *LinkedinProfile) error
	Update(ctx context.Context, l *LinkedinProfile) error
	Delete(ctx context.Context, userID, id int64) error
}

type LinkedinUsecase interface {
	List(ctx context.Context, userID int64) ([]LinkedinProfile, error)
	Create(ctx context.Context, userID int64, in *LinkedinInput) (*LinkedinProfile, error)
	Update(ctx context.Context, userID, id int64, in *LinkedinInput) (*LinkedinProfile, error)
	Delete(ctx context.Context, userID, id int64) error
}
