package domain

import "context"

type Skill struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
}

type SkillInput struct {
	Name string `json:"name" validate:"not_blank,max=100"`
	Type string `json:"type" validate:"not_blank,max=100"`
}

type SkillRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]Skill, error)
	Create(ctx context.Context, s *Skill) error
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, userID, id int64) error
}

type SkillUsecase interface {
	List(ctx context.Context, userID int64) ([]Skill, error)
	Create(ctx context.Context, userID int64, in *SkillInput) (*Skill, error)
	Update(ctx context.Context, userID, id int64, in *SkillInput) (*Skill, error)
	Delete(ctx context.Context, userID, id int64) error
}
