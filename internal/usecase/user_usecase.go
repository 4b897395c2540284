package usecase

import (
	"context"
	"errors"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type userUsecase struct {
	userRepo domain.UserRepository
	media    attachments
	validate *validator.Validate
}

func NewUserUsecase(userRepo domain.UserRepository, store domain.MediaStore, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		media:    attachments{store: store},
		validate: validate,
	}
}

func (u *userUsecase) GetMe(ctx context.Context, userID int64) (*domain.PublicUser, error) {
	return u.GetPublicByID(ctx, userID)
}

// GetPublicByID never exposes the password hash.
func (u *userUsecase) GetPublicByID(ctx context.Context, id int64) (*domain.PublicUser, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("User", "get", err, "user_id", id)
	}
	return user.Public(), nil
}

func (u *userUsecase) UpdateInfo(ctx context.Context, userID int64, in *domain.UpdateUserInput) (*domain.PublicUser, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       userID,
		Name:     in.Name,
		Username: in.Username,
		Mobile:   in.Mobile,
		Location: in.Location,
	}
	if err := u.userRepo.UpdateInfo(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.Conflict("Username already taken")
		}
		return nil, storeError("User", "update", err, "user_id", userID)
	}
	return user.Public(), nil
}

// UpdatePhoto replaces the profile photo, or clears it when photo is nil.
// The previous photo is released only after the row points elsewhere.
func (u *userUsecase) UpdatePhoto(ctx context.Context, userID int64, photo *domain.FileUpload) (*domain.PublicUser, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, storeError("User", "get", err, "user_id", userID)
	}
	previous := user.ProfilePhoto

	var next *string
	if photo != nil {
		url, err := u.media.uploadPhoto(ctx, photo)
		if err != nil {
			return nil, err
		}
		next = &url
	}

	if err := u.userRepo.UpdatePhoto(ctx, userID, next); err != nil {
		u.media.release(ctx, next)
		return nil, storeError("User", "update photo", err, "user_id", userID)
	}
	u.media.release(ctx, previous)

	user.ProfilePhoto = next
	return user.Public(), nil
}
