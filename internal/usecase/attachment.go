package usecase

import (
	"context"
	"errors"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/imaging"
	"resume-builder-backend/pkg/logger"
	"resume-builder-backend/pkg/security"
)

// attachments wraps the media store with validation and best-effort release.
// A nil store means uploads are not configured.
type attachments struct {
	store domain.MediaStore
}

func (a attachments) enabled() bool { return a.store != nil }

// upload validates file against policy and stores it under folder.
func (a attachments) upload(ctx context.Context, folder string, policy security.UploadPolicy, file *domain.FileUpload) (string, error) {
	if a.store == nil {
		return "", apperror.Unavailable("File uploads are not configured")
	}
	contentType, err := policy.Validate(file.Filename, file.Data)
	if err != nil {
		var rejected *security.RejectedError
		if errors.As(err, &rejected) {
			return "", apperror.BadRequest(rejected.Reason)
		}
		return "", apperror.BadRequest("Invalid file")
	}
	return a.put(ctx, domain.MediaObject{
		Folder:      folder,
		Filename:    file.Filename,
		ContentType: contentType,
		Data:        file.Data,
	})
}

func (a attachments) put(ctx context.Context, obj domain.MediaObject) (string, error) {
	if a.store == nil {
		return "", apperror.Unavailable("File uploads are not configured")
	}
	url, err := a.store.Upload(ctx, obj)
	if err != nil {
		logger.Log.Error("media upload failed", "folder", obj.Folder, "error", err)
		return "", apperror.Upstream("Failed to upload file", err)
	}
	return url, nil
}

// release deletes url from the store. Failures are logged, never returned.
// It runs even if the request context is already cancelled.
func (a attachments) release(ctx context.Context, url *string) {
	if a.store == nil || url == nil || *url == "" {
		return
	}
	if err := a.store.Delete(context.WithoutCancel(ctx), *url); err != nil {
		logger.Log.Warn("media release failed", "url", *url, "error", err)
	}
}

// uploadPhoto validates a profile photo, downscales it to JPEG and stores it.
func (a attachments) uploadPhoto(ctx context.Context, file *domain.FileUpload) (string, error) {
	if a.store == nil {
		return "", apperror.Unavailable("File uploads are not configured")
	}
	if _, err := security.PhotoPolicy.Validate(file.Filename, file.Data); err != nil {
		return "", apperror.BadRequest(err.Error())
	}
	compressed, err := imaging.CompressJPEG(file.Data, imaging.DefaultMaxDimension, imaging.DefaultQuality)
	if err != nil {
		return "", apperror.BadRequest("Profile photo could not be decoded")
	}
	return a.put(ctx, domain.MediaObject{
		Folder:      domain.FolderProfilePhotos,
		Filename:    "photo.jpg",
		ContentType: "image/jpeg",
		Data:        compressed,
	})
}
