package domain

import "context"

// ProfileUser is the non-secret projection of a user embedded in a ProfileDocument.
type ProfileUser struct {
	ID           int64   `json:"user_id"`
	Name         string  `json:"name"`
	Username     string  `json:"username"`
	Mobile       string  `json:"mobile"`
	Location     string  `json:"location"`
	ProfilePhoto *string `json:"profile_photo"`
}

// ProfileDocument is the read-only aggregate of a user and every collection they own.
// Collections are never nil once assembled.
type ProfileDocument struct {
	User             ProfileUser       `json:"user"`
	LinkedinProfiles []LinkedinProfile `json:"linkedinProfiles"`
	Education        []Education       `json:"education"`
	Skills           []Skill           `json:"skills"`
	Certifications   []Certification   `json:"certifications"`
	Experiences      []Experience      `json:"experiences"`
	Projects         []Project         `json:"projects"`
	Hobbies          []Hobby           `json:"hobbies"`
}

type ProfileUsecase interface {
	Assemble(ctx context.Context, userID int64) (*ProfileDocument, error)
}
