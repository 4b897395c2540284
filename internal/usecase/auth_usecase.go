package usecase

import (
	"context"
	"errors"
	"sync"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const msgInvalidCredentials = "Invalid username or password"

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareDummy burns the same bcrypt cost as a real comparison so unknown
// usernames are not distinguishable by response time.
func compareDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("resume-builder-dummy"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   domain.TokenIssuer
	media    attachments
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens domain.TokenIssuer, store domain.MediaStore, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		media:    attachments{store: store},
		validate: validate,
	}
}

func (u *authUsecase) Signup(ctx context.Context, in *domain.SignupInput, photo *domain.FileUpload) (*domain.PublicUser, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperror.Validation(map[string]string{"password": "Password must be at most 72 bytes"})
		}
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Name:          in.Name,
		Username:      in.Username,
		Password:      string(hash),
		UsernameAlias: in.UsernameAlias,
		Mobile:        in.Mobile,
		Location:      in.Location,
	}

	if photo != nil {
		url, err := u.media.uploadPhoto(ctx, photo)
		if err != nil {
			return nil, err
		}
		user.ProfilePhoto = &url
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.media.release(ctx, user.ProfilePhoto)
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.Conflict("Username already taken")
		}
		return nil, storeError("User", "create", err, "username", in.Username)
	}

	logger.Log.Info("user signed up", "user_id", user.ID)
	return user.Public(), nil
}

func (u *authUsecase) Login(ctx context.Context, in *domain.LoginInput) (*domain.LoginResult, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			compareDummy(in.Password)
			return nil, apperror.Unauthorized(msgInvalidCredentials)
		}
		return nil, storeError("User", "login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, apperror.Unauthorized(msgInvalidCredentials)
	}

	token, expiresAt, err := u.tokens.Issue(user.ID)
	if err != nil {
		logger.Log.Error("token issue failed", "user_id", user.ID, "error", err)
		return nil, apperror.Internal(err)
	}
	return &domain.LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}
