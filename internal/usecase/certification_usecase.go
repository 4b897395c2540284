package usecase

import (
	"context"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/security"

	"github.com/go-playground/validator/v10"
)

type certificationUsecase struct {
	repo     domain.CertificationRepository
	media    attachments
	validate *validator.Validate
}

func NewCertificationUsecase(repo domain.CertificationRepository, store domain.MediaStore, validate *validator.Validate) domain.CertificationUsecase {
	return &certificationUsecase{
		repo:     repo,
		media:    attachments{store: store},
		validate: validate,
	}
}

func (u *certificationUsecase) List(ctx context.Context, userID int64) ([]domain.Certification, error) {
	items, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeError("Certification", "list", err, "user_id", userID)
	}
	return items, nil
}

// Create uploads the attachment first. If the row cannot be written the
// upload is released so no orphan is left behind.
func (u *certificationUsecase) Create(ctx context.Context, userID int64, in *domain.CertificationInput, file *domain.FileUpload) (*domain.Certification, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	c := &domain.Certification{UserID: userID, Title: in.Title, Institute: in.Institute}
	if file != nil {
		url, err := u.media.upload(ctx, domain.FolderCertifications, security.CertificatePolicy, file)
		if err != nil {
			return nil, err
		}
		c.FileURL = &url
	}

	if err := u.repo.Create(ctx, c); err != nil {
		u.media.release(ctx, c.FileURL)
		return nil, storeError("Certification", "create", err, "user_id", userID)
	}
	return c, nil
}

// Update overwrites title and institute. A nil file keeps the current
// attachment; a new file replaces it and the old object is released once
// the row points at the new one.
func (u *certificationUsecase) Update(ctx context.Context, userID, id int64, in *domain.CertificationInput, file *domain.FileUpload) (*domain.Certification, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	existing, err := u.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, storeError("Certification", "get", err, "user_id", userID, "id", id)
	}

	c := &domain.Certification{
		ID:        id,
		UserID:    userID,
		Title:     in.Title,
		Institute: in.Institute,
		FileURL:   existing.FileURL,
	}

	var uploaded *string
	if file != nil {
		url, err := u.media.upload(ctx, domain.FolderCertifications, security.CertificatePolicy, file)
		if err != nil {
			return nil, err
		}
		uploaded = &url
		c.FileURL = uploaded
	}

	if err := u.repo.Update(ctx, c); err != nil {
		u.media.release(ctx, uploaded)
		return nil, storeError("Certification", "update", err, "user_id", userID, "id", id)
	}

	if uploaded != nil {
		u.media.release(ctx, existing.FileURL)
	}
	return c, nil
}

// Delete removes the row, then releases its attachment best-effort.
func (u *certificationUsecase) Delete(ctx context.Context, userID, id int64) error {
	c, err := u.repo.Delete(ctx, userID, id)
	if err != nil {
		return storeError("Certification", "delete", err, "user_id", userID, "id", id)
	}
	u.media.release(ctx, c.FileURL)
	return nil
}
