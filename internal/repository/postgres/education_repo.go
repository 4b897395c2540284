package postgres

import (
	"context"

	"resume-builder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

type educationRepo struct {
	db DBTX
}

func NewEducationRepository(db DBTX) domain.EducationRepository {
	return &educationRepo{db: db}
}

func (r *educationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Education, error) {
	query := `SELECT id, user_id, title, start_year, end_year, board, cgpa, stream, school, website
              FROM education WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapErr("list education", err)
	}
	items, err := scanAll(rows, func(rows pgx.Rows, e *domain.Education) error {
		return rows.Scan(&e.ID, &e.UserID, &e.Title, &e.StartYear, &e.EndYear,
			&e.Board, &e.CGPA, &e.Stream, &e.School, &e.Website)
	})
	if err != nil {
		return nil, wrapErr("scan education", err)
	}
	return items, nil
}

func (r *educationRepo) Create(ctx context.Context, e *domain.Education) error {
	query := `INSERT INTO education (user_id, title, start_year, end_year, board, cgpa, stream, school, website)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
              RETURNING id`
	err := r.db.QueryRow(ctx, query, e.UserID, e.Title, e.StartYear, e.EndYear,
		e.Board, e.CGPA, e.Stream, e.School, e.Website).Scan(&e.ID)
	if err != nil {
		return wrapErr("create education", err)
	}
	return nil
}

func (r *educationRepo) Update(ctx context.Context, e *domain.Education) error {
	query := `UPDATE education
              SET title = $3, start_year = $4, end_year = $5, board = $6, cgpa = $7,
                  stream = $8, school = $9, website = $10
              WHERE id = $1 AND user_id = $2
              RETURNING id`
	err := r.db.QueryRow(ctx, query, e.ID, e.UserID, e.Title, e.StartYear, e.EndYear,
		e.Board, e.CGPA, e.Stream, e.School, e.Website).Scan(&e.ID)
	if err != nil {
		return wrapErr("update education", err)
	}
	return nil
}

func (r *educationRepo) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM education WHERE id = $1 AND user_id = $2 RETURNING id`
	if err := r.db.QueryRow(ctx, query, id, userID).Scan(&id); err != nil {
		return wrapErr("delete education", err)
	}
	return nil
}
