package postgres

import (
	"context"

	"resume-builder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

type experienceRepo struct {
	db DBTX
}

func NewExperienceRepository(db DBTX) domain.ExperienceRepository {
	return &experienceRepo{db: db}
}

func (r *experienceRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Experience, error) {
	query := `SELECT id, user_id, designation, profile, organization, location, start_date, end_date, role_type
              FROM experiences WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapErr("list experiences", err)
	}
	items, err := scanAll(rows, func(rows pgx.Rows, e *domain.Experience) error {
		return rows.Scan(&e.ID, &e.UserID, &e.Designation, &e.Profile, &e.Organization,
			&e.Location, &e.StartDate, &e.EndDate, &e.RoleType)
	})
	if err != nil {
		return nil, wrapErr("scan experiences", err)
	}
	return items, nil
}

func (r *experienceRepo) Create(ctx context.Context, e *domain.Experience) error {
	query := `INSERT INTO experiences (user_id, designation, profile, organization, location, start_date, end_date, role_type)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
              RETURNING id`
	err := r.db.QueryRow(ctx, query, e.UserID, e.Designation, e.Profile, e.Organization,
		e.Location, e.StartDate, e.EndDate, e.RoleType).Scan(&e.ID)
	if err != nil {
		return wrapErr("create experience", err)
	}
	return nil
}

func (r *experienceRepo) Update(ctx context.Context, e *domain.Experience) error {
	query := `UPDATE experiences
              SET designation = $3, profile = $4, organization = $5, location = $6,
                  start_date = $7, end_date = $8, role_type = $9
              WHERE id = $1 AND user_id = $2
              RETURNING id`
	err := r.db.QueryRow(ctx, query, e.ID, e.UserID, e.Designation, e.Profile, e.Organization,
		e.Location, e.StartDate, e.EndDate, e.RoleType).Scan(&e.ID)
	if err != nil {
		return wrapErr("update experience", err)
	}
	return nil
}

func (r *experienceRepo) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM experiences WHERE id = $1 AND user_id = $2 RETURNING id`
	if err := r.db.QueryRow(ctx, query, id, userID).Scan(&id); err != nil {
		return wrapErr("delete experience", err)
	}
	return nil
}
