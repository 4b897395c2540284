package postgres

import (
	"context"

	"resume-builder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

type linkedinRepo struct {
	db DBTX
}

func NewLinkedinRepository(db DBTX) domain.LinkedinRepository {
	return &linkedinRepo{db: db}
}

func (r *linkedinRepo) ListByUser(ctx context.Context, userID int64) ([]domain.LinkedinProfile, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, name, url FROM linkedin_profiles WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, wrapErr("list linkedin profiles", err)
	}
	items, err := scanAll(rows, func(rows pgx.Rows, l *domain.LinkedinProfile) error {
		return rows.Scan(&l.ID, &l.UserID, &l.Name, &l.URL)
	})
	if err != nil {
		return nil, wrapErr("scan linkedin profiles", err)
	}
	return items, nil
}

func (r *linkedinRepo) Create(ctx context.Context, l *domain.LinkedinProfile) error {
	query := `INSERT INTO linkedin_profiles (user_id, name, url) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRow(ctx, query, l.UserID, l.Name, l.URL).Scan(&l.ID); err != nil {
		return wrapErr("create linkedin profile", err)
	}
	return nil
}

func (r *linkedinRepo) Update(ctx context.Context, l *domain.LinkedinProfile) error {
	query := `UPDATE linkedin_profiles SET name = $3, url = $4 WHERE id = $1 AND user_id = $2 RETURNING id`
	if err := r.db.QueryRow(ctx, query, l.ID, l.UserID, l.Name, l.URL).Scan(&l.ID); err != nil {
		return wrapErr("update linkedin profile", err)
	}
	return nil
}

func (r *linkedinRepo) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM linkedin_profiles WHERE id = $1 AND user_id = $2 RETURNING id`
	if err := r.db.QueryRow(ctx, query, id, userID).Scan(&id); err != nil {
		return wrapErr("delete linkedin profile", err)
	}
	return nil
}
