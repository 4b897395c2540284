package usecase

import (
	"context"
	"fmt"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// ProfileSources are the repositories the aggregator reads from.
type ProfileSources struct {
	Users          domain.UserRepository
	Linkedin       domain.LinkedinRepository
	Education      domain.EducationRepository
	Skills         domain.SkillRepository
	Certifications domain.CertificationRepository
	Experiences    domain.ExperienceRepository
	Projects       domain.ProjectRepository
	Hobbies        domain.HobbyRepository
}

type profileUsecase struct {
	src ProfileSources
}

func NewProfileUsecase(src ProfileSources) domain.ProfileUsecase {
	return &profileUsecase{src: src}
}

// Assemble reads the user and then every collection concurrently. Each read
// is its own statement, so the document is not a single snapshot.
// An unknown user returns NotFound before any collection is queried.
func (u *profileUsecase) Assemble(ctx context.Context, userID int64) (*domain.ProfileDocument, error) {
	user, err := u.src.Users.GetProfileUser(ctx, userID)
	if err != nil {
		return nil, storeError("User", "get", err, "user_id", userID)
	}

	doc := &domain.ProfileDocument{User: *user}

	g, gctx := errgroup.WithContext(ctx)
	fetch(g, gctx, userID, "linkedin", u.src.Linkedin.ListByUser, &doc.LinkedinProfiles)
	fetch(g, gctx, userID, "education", u.src.Education.ListByUser, &doc.Education)
	fetch(g, gctx, userID, "skills", u.src.Skills.ListByUser, &doc.Skills)
	fetch(g, gctx, userID, "certifications", u.src.Certifications.ListByUser, &doc.Certifications)
	fetch(g, gctx, userID, "experiences", u.src.Experiences.ListByUser, &doc.Experiences)
	fetch(g, gctx, userID, "projects", u.src.Projects.ListByUser, &doc.Projects)
	fetch(g, gctx, userID, "hobbies", u.src.Hobbies.ListByUser, &doc.Hobbies)

	if err := g.Wait(); err != nil {
		logger.Log.Error("profile assembly failed", "user_id", userID, "error", err)
		return nil, apperror.Internal(err)
	}
	return doc, nil
}

// fetch schedules one collection read into dst. A nil result becomes an empty slice.
func fetch[T any](g *errgroup.Group, ctx context.Context, userID int64, kind string,
	list func(context.Context, int64) ([]T, error), dst *[]T) {
	g.Go(func() error {
		items, err := list(ctx, userID)
		if err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
		if items == nil {
			items = []T{}
		}
		*dst = items
		return nil
	})
}
