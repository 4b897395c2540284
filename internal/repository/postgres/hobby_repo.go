package postgres

import (
	"context"

	"resume-builder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

type hobbyRepo struct {
	db DBTX
}

func NewHobbyRepository(db DBTX) domain.HobbyRepository {
	return &hobbyRepo{db: db}
}

func (r *hobbyRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Hobby, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, name FROM hobbies WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, wrapErr("list hobbies", err)
	}
	items, err := scanAll(rows, func(rows pgx.Rows, h *domain.Hobby) error {
		return rows.Scan(&h.ID, &h.UserID, &h.Name)
	})
	if err != nil {
		return nil, wrapErr("scan hobbies", err)
	}
	return items, nil
}

func (r *hobbyRepo) Create(ctx context.Context, h *domain.Hobby) error {
	query := `INSERT INTO hobbies (user_id, name) VALUES ($1, $2) RETURNING id`
	if err := r.db.QueryRow(ctx, query, h.UserID, h.Name).Scan(&h.ID); err != nil {
		return wrapErr("create hobby", err)
	}
	return nil
}

func (r *hobbyRepo) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM hobbies WHERE id = $1 AND user_id = $2 RETURNING id`
	if err := r.db.QueryRow(ctx, query, id, userID).Scan(&id); err != nil {
		return wrapErr("delete hobby", err)
	}
	return nil
}
