package usecase_test

import (
	"context"
	"time"

	"resume-builder-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetProfileUser(ctx context.Context, id int64) (*domain.ProfileUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileUser), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateInfo(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) UpdatePhoto(ctx context.Context, id int64, photo *string) error {
	return m.Called(ctx, id, photo).Error(0)
}

type MockEducationRepo struct {
	mock.Mock
}

func (m *MockEducationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Education, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]domain.Education)
	return items, args.Error(1)
}
func (m *MockEducationRepo) Create(ctx context.Context, e *domain.Education) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockEducationRepo) Update(ctx context.Context, e *domain.Education) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockEducationRepo) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockExperienceRepo struct {
	mock.Mock
}

func (m *MockExperienceRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Experience, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]domain.Experience)
	return items, args.Error(1)
}
func (m *MockExperienceRepo) Create(ctx context.Context, e *domain.Experience) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockExperienceRepo) Update(ctx context.Context, e *domain.Experience) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockExperienceRepo) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Skill, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]domain.Skill)
	return items, args.Error(1)
}
func (m *MockSkillRepo) Create(ctx context.Context, s *domain.Skill) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockSkillRepo) Update(ctx context.Context, s *domain.Skill) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockSkillRepo) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockCertificationRepo struct {
	mock.Mock
}

func (m *MockCertificationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Certification, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]domain.Certification)
	return items, args.Error(1)
}
func (m *MockCertificationRepo) GetByID(ctx context.Context, userID, id int64) (*domain.Certification, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certification), args.Error(1)
}
func (m *MockCertificationRepo) Create(ctx context.Context, c *domain.Certification) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCertificationRepo) Update(ctx context.Context, c *domain.Certification) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCertificationRepo) Delete(ctx context.Context, userID, id int64) (*domain.Certification, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certification), args.Error(1)
}

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]domain.Project)
	return items, args.Error(1)
}
func (m *MockProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProjectRepo) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockLinkedinRepo struct {
	mock.Mock
}

func (m *MockLinkedinRepo) ListByUser(ctx context.Context, userID int64) ([]domain.LinkedinProfile, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]domain.LinkedinProfile)
	return items, args.Error(1)
}
func (m *MockLinkedinRepo) Create(ctx context.Context, l *domain.LinkedinProfile) error {
	return m.Called(ctx, l).Error(0)
}
func (m *MockLinkedinRepo) Update(ctx context.Context, l *domain.LinkedinProfile) error {
	return m.Called(ctx, l).Error(0)
}
func (m *MockLinkedinRepo) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockHobbyRepo struct {
	mock.Mock
}

func (m *MockHobbyRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Hobby, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]domain.Hobby)
	return items, args.Error(1)
}
func (m *MockHobbyRepo) Create(ctx context.Context, h *domain.Hobby) error {
	return m.Called(ctx, h).Error(0)
}
func (m *MockHobbyRepo) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Upload(ctx context.Context, obj domain.MediaObject) (string, error) {
	args := m.Called(ctx, obj)
	return args.String(0), args.Error(1)
}
func (m *MockMediaStore) Delete(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, payload any) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(userID int64) (string, time.Time, error) {
	args := m.Called(userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type MockProfileUsecase struct {
	mock.Mock
}

func (m *MockProfileUsecase) Assemble(ctx context.Context, userID int64) (*domain.ProfileDocument, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileDocument), args.Error(1)
}
