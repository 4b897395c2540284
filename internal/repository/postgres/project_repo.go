package postgres

import (
	"context"

	"resume-builder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

type projectRepo struct {
	db DBTX
}

func NewProjectRepository(db DBTX) domain.ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Project, error) {
	query := `SELECT id, user_id, title, link, description, role_and_tech FROM projects WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapErr("list projects", err)
	}
	items, err := scanAll(rows, func(rows pgx.Rows, p *domain.Project) error {
		return rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Link, &p.Description, &p.RoleAndTech)
	})
	if err != nil {
		return nil, wrapErr("scan projects", err)
	}
	return items, nil
}

func (r *projectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (user_id, title, link, description, role_and_tech)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id`
	if err := r.db.QueryRow(ctx, query, p.UserID, p.Title, p.Link, p.Description, p.RoleAndTech).Scan(&p.ID); err != nil {
		return wrapErr("create project", err)
	}
	return nil
}

func (r *projectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET title = $3, link = $4, description = $5, role_and_tech = $6
              WHERE id = $1 AND user_id = $2
              RETURNING id`
	if err := r.db.QueryRow(ctx, query, p.ID, p.UserID, p.Title, p.Link, p.Description, p.RoleAndTech).Scan(&p.ID); err != nil {
		return wrapErr("update project", err)
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM projects WHERE id = $1 AND user_id = $2 RETURNING id`
	if err := r.db.QueryRow(ctx, query, id, userID).Scan(&id); err != nil {
		return wrapErr("delete project", err)
	}
	return nil
}
