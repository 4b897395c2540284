package domain

import "context"

// Attachment folders at the external object store.
const (
	FolderCertifications = "certifications"
	FolderProfilePhotos  = "profile_photos"
	FolderResumes        = "resumes"
)

// FileUpload is a client-supplied file, fully read and size-capped by the HTTP layer.
type FileUpload struct {
	Filename string
	Data     []byte
}

type MediaObject struct {
	Folder      string
	Filename    string
	ContentType string
	Data        []byte
}

// MediaStore is the external attachment host. Upload returns a stable reference URL;
// Delete releases a previously returned URL.
type MediaStore interface {
	Upload(ctx context.Context, obj MediaObject) (string, error)
	Delete(ctx context.Context, url string) error
}
