package domain

import "context"

type Certification struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	Title     string  `json:"title"`
	Institute string  `json:"institute"`
	FileURL   *string `json:"file_url"`
}

type CertificationInput struct {
	Title     string `json:"title" form:"title" validate:"not_blank,max=200"`
	Institute string `json:"institute" form:"institute" validate:"not_blank,max=200"`
}

type CertificationRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]Certification, error)
	GetByID(ctx context.Context, userID, id int64) (*Certification, error)
	Create(ctx context.Context, c *Certification) error
	Update(ctx context.Context, c *Certification) error
	// Delete removes the row and returns it so the caller can release its attachment.
	Delete(ctx context.Context, userID, id int64) (*Certification, error)
}

// CertificationUsecase takes an optional attachment on create and update.
// A nil file on update keeps the existing attachment.
type CertificationUsecase interface {
	List(ctx context.Context, userID int64) ([]Certification, error)
	Create(ctx context.Context, userID int64, in *CertificationInput, file *FileUpload) (*Certification, error)
	Update(ctx context.Context, userID, id int64, in *CertificationInput, file *FileUpload) (*Certification, error)
	Delete(ctx context.Context, userID, id int64) error
}
