package postgres

import (
	"context"

	"resume-builder-backend/internal/domain"
)

type userRepo struct {
	db DBTX
}

func NewUserRepository(db DBTX) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `user_id, name, username, password, username_alias, mobile, location, profile_photo, created_at`

func scanUser(row interface{ Scan(...any) error }, u *domain.User) error {
	return row.Scan(
		&u.ID, &u.Name, &u.Username, &u.Password, &u.UsernameAlias,
		&u.Mobile, &u.Location, &u.ProfilePhoto, &u.CreatedAt,
	)
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (name, username, password, username_alias, mobile, location, profile_photo)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING user_id, created_at`
	err := r.db.QueryRow(ctx, query,
		user.Name, user.Username, user.Password, user.UsernameAlias,
		user.Mobile, user.Location, user.ProfilePhoto,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return wrapErr("create user", err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	var user domain.User
	if err := scanUser(r.db.QueryRow(ctx, query, id), &user); err != nil {
		return nil, wrapErr("get user", err)
	}
	return &user, nil
}

// GetProfileUser reads the public user fields. The password hash is never selected.
func (r *userRepo) GetProfileUser(ctx context.Context, id int64) (*domain.ProfileUser, error) {
	query := `SELECT user_id, name, username, mobile, location, profile_photo FROM users WHERE user_id = $1`
	var u domain.ProfileUser
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Username, &u.Mobile, &u.Location, &u.ProfilePhoto)
	if err != nil {
		return nil, wrapErr("get profile user", err)
	}
	return &u, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	var user domain.User
	if err := scanUser(r.db.QueryRow(ctx, query, username), &user); err != nil {
		return nil, wrapErr("get user by username", err)
	}
	return &user, nil
}

// UpdateInfo overwrites name, username, mobile and location. The remaining
// columns are read back into user.
func (r *userRepo) UpdateInfo(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET name = $2, username = $3, mobile = $4, location = $5
              WHERE user_id = $1
              RETURNING username_alias, profile_photo, created_at`
	err := r.db.QueryRow(ctx, query, user.ID, user.Name, user.Username, user.Mobile, user.Location).
		Scan(&user.UsernameAlias, &user.ProfilePhoto, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return wrapErr("update user", err)
	}
	return nil
}

func (r *userRepo) UpdatePhoto(ctx context.Context, id int64, photo *string) error {
	query := `UPDATE users SET profile_photo = $2 WHERE user_id = $1 RETURNING user_id`
	var got int64
	if err := r.db.QueryRow(ctx, query, id, photo).Scan(&got); err != nil {
		return wrapErr("update user photo", err)
	}
	return nil
}
