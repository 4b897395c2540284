package domain

import "context"

type Hobby struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

type HobbyInput struct {
	Name string `json:"name" validate:"not_blank,max=100"`
}

// Hobbies have no update; the client deletes and re-adds.
type HobbyRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]Hobby, error)
	Create(ctx context.Context, h *Hobby) error
	Delete(ctx context.Context, userID, id int64) error
}

type HobbyUsecase interface {
	List(ctx context.Context, userID int64) ([]Hobby, error)
	Create(ctx context.Context, userID int64, in *HobbyInput) (*Hobby, error)
	Delete(ctx context.Context, userID, id int64) error
}
