package postgres

import (
	"context"

	"resume-builder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

type skillRepo struct {
	db DBTX
}

func NewSkillRepository(db DBTX) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, name, type FROM skills WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, wrapErr("list skills", err)
	}
	items, err := scanAll(rows, func(rows pgx.Rows, s *domain.Skill) error {
		return rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Type)
	})
	if err != nil {
		return nil, wrapErr("scan skills", err)
	}
	return items, nil
}

func (r *skillRepo) Create(ctx context.Context, s *domain.Skill) error {
	query := `INSERT INTO skills (user_id, name, type) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRow(ctx, query, s.UserID, s.Name, s.Type).Scan(&s.ID); err != nil {
		return wrapErr("create skill", err)
	}
	return nil
}

func (r *skillRepo) Update(ctx context.Context, s *domain.Skill) error {
	query := `UPDATE skills SET name = $3, type = $4 WHERE id = $1 AND user_id = $2 RETURNING id`
	if err := r.db.QueryRow(ctx, query, s.ID, s.UserID, s.Name, s.Type).Scan(&s.ID); err != nil {
		return wrapErr("update skill", err)
	}
	return nil
}

func (r *skillRepo) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM skills WHERE id = $1 AND user_id = $2 RETURNING id`
	if err := r.db.QueryRow(ctx, query, id, userID).Scan(&id); err != nil {
		return wrapErr("delete skill", err)
	}
	return nil
}
