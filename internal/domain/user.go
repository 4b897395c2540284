package domain

import (
	"context"
	"time"
)

// User is the full users row. Password holds a bcrypt hash and never leaves the server.
type User struct {
	ID            int64     `json:"user_id"`
	Name          string    `json:"name"`
	Username      string    `json:"username"`
	Password      string    `json:"-"`
	UsernameAlias string    `json:"username_alias"`
	Mobile        string    `json:"mobile"`
	Location      string    `json:"location"`
	ProfilePhoto  *string   `json:"profile_photo"`
	CreatedAt     time.Time `json:"created_at"`
}

// PublicUser is the projection returned by every user-facing endpoint.
type PublicUser struct {
	ID            int64     `json:"user_id"`
	Name          string    `json:"name"`
	Username      string    `json:"username"`
	UsernameAlias string    `json:"username_alias"`
	Mobile        string    `json:"mobile"`
	Location      string    `json:"location"`
	ProfilePhoto  *string   `json:"profile_photo"`
	CreatedAt     time.Time `json:"created_at"`
}

func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}
	return &PublicUser{
		ID:            u.ID,
		Name:          u.Name,
		Username:      u.Username,
		UsernameAlias: u.UsernameAlias,
		Mobile:        u.Mobile,
		Location:      u.Location,
		ProfilePhoto:  u.ProfilePhoto,
		CreatedAt:     u.CreatedAt,
	}
}

type SignupInput struct {
	Name          string `json:"name" form:"name" validate:"not_blank,no_emoji,max=120"`
	Username      string `json:"username" form:"username" validate:"not_blank,max=60"`
	Password      string `json:"password" form:"password" validate:"not_blank"`
	UsernameAlias string `json:"username_alias" form:"username_alias" validate:"max=60"`
	Mobile        string `json:"mobile" form:"mobile" validate:"valid_phone"`
	Location      string `json:"location" form:"location" validate:"max=120"`
}

type LoginInput struct {
	Username string `json:"username" validate:"not_blank"`
	Password string `json:"password" validate:"not_blank"`
}

type UpdateUserInput struct {
	Name     string `json:"name" validate:"not_blank,no_emoji,max=120"`
	Username string `json:"username" validate:"not_blank,max=60"`
	Mobile   string `json:"mobile" validate:"valid_phone"`
	Location string `json:"location" validate:"max=120"`
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetProfileUser(ctx context.Context, id int64) (*ProfileUser, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UpdateInfo(ctx context.Context, user *User) error
	UpdatePhoto(ctx context.Context, id int64, photo *string) error
}

type AuthUsecase interface {
	Signup(ctx context.Context, in *SignupInput, photo *FileUpload) (*PublicUser, error)
	Login(ctx context.Context, in *LoginInput) (*LoginResult, error)
}

type UserUsecase interface {
	GetMe(ctx context.Context, userID int64) (*PublicUser, error)
	GetPublicByID(ctx context.Context, id int64) (*PublicUser, error)
	UpdateInfo(ctx context.Context, userID int64, in *UpdateUserInput) (*PublicUser, error)
	UpdatePhoto(ctx context.Context, userID int64, photo *FileUpload) (*PublicUser, error)
}

// TokenIssuer signs bearer tokens for a user id.
type TokenIssuer interface {
	Issue(userID int64) (string, time.Time, error)
}

// TokenVerifier resolves a bearer token to the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}
