package postgres

import (
	"context"

	"resume-builder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

type certificationRepo struct {
	db DBTX
}

func NewCertificationRepository(db DBTX) domain.CertificationRepository {
	return &certificationRepo{db: db}
}

func scanCertification(row interface{ Scan(...any) error }, c *domain.Certification) error {
	return row.Scan(&c.ID, &c.UserID, &c.Title, &c.Institute, &c.FileURL)
}

func (r *certificationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Certification, error) {
	query := `SELECT id, user_id, title, institute, file_url FROM certifications WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapErr("list certifications", err)
	}
	items, err := scanAll(rows, func(rows pgx.Rows, c *domain.Certification) error {
		return scanCertification(rows, c)
	})
	if err != nil {
		return nil, wrapErr("scan certifications", err)
	}
	return items, nil
}

func (r *certificationRepo) GetByID(ctx context.Context, userID, id int64) (*domain.Certification, error) {
	query := `SELECT id, user_id, title, institute, file_url FROM certifications WHERE id = $1 AND user_id = $2`
	var c domain.Certification
	if err := scanCertification(r.db.QueryRow(ctx, query, id, userID), &c); err != nil {
		return nil, wrapErr("get certification", err)
	}
	return &c, nil
}

func (r *certificationRepo) Create(ctx context.Context, c *domain.Certification) error {
	query := `INSERT INTO certifications (user_id, title, institute, file_url) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRow(ctx, query, c.UserID, c.Title, c.Institute, c.FileURL).Scan(&c.ID); err != nil {
		return wrapErr("create certification", err)
	}
	return nil
}

func (r *certificationRepo) Update(ctx context.Context, c *domain.Certification) error {
	query := `UPDATE certifications SET title = $3, institute = $4, file_url = $5
              WHERE id = $1 AND user_id = $2
              RETURNING id`
	if err := r.db.QueryRow(ctx, query, c.ID, c.UserID, c.Title, c.Institute, c.FileURL).Scan(&c.ID); err != nil {
		return wrapErr("update certification", err)
	}
	return nil
}

func (r *certificationRepo) Delete(ctx context.Context, userID, id int64) (*domain.Certification, error) {
	query := `DELETE FROM certifications WHERE id = $1 AND user_id = $2
              RETURNING id, user_id, title, institute, file_url`
	var c domain.Certification
	if err := scanCertification(r.db.QueryRow(ctx, query, id, userID), &c); err != nil {
		return nil, wrapErr("delete certification", err)
	}
	return &c, nil
}
