package v1

import (
	"context"

	"resume-builder-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockAuthUsecase struct{ mock.Mock }

func (m *MockAuthUsecase) Signup(ctx context.Context, in *domain.SignupInput, photo *domain.FileUpload) (*domain.PublicUser, error) {
	args := m.Called(ctx, in, photo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublicUser), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, in *domain.LoginInput) (*domain.LoginResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoginResult), args.Error(1)
}

type MockUserUsecase struct{ mock.Mock }

func (m *MockUserUsecase) GetMe(ctx context.Context, userID int64) (*domain.PublicUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublicUser), args.Error(1)
}

func (m *MockUserUsecase) GetPublicByID(ctx context.Context, id int64) (*domain.PublicUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublicUser), args.Error(1)
}

func (m *MockUserUsecase) UpdateInfo(ctx context.Context, userID int64, in *domain.UpdateUserInput) (*domain.PublicUser, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublicUser), args.Error(1)
}

func (m *MockUserUsecase) UpdatePhoto(ctx context.Context, userID int64, photo *domain.FileUpload) (*domain.PublicUser, error) {
	args := m.Called(ctx, userID, photo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublicUser), args.Error(1)
}

type MockEducationUsecase struct{ mock.Mock }

func (m *MockEducationUsecase) List(ctx context.Context, userID int64) ([]domain.Education, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Education), args.Error(1)
}

func (m *MockEducationUsecase) Create(ctx context.Context, userID int64, in *domain.EducationInput) (*domain.Education, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Education), args.Error(1)
}

func (m *MockEducationUsecase) Update(ctx context.Context, userID, id int64, in *domain.EducationInput) (*domain.Education, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Education), args.Error(1)
}

func (m *MockEducationUsecase) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockCertificationUsecase struct{ mock.Mock }

func (m *MockCertificationUsecase) List(ctx context.Context, userID int64) ([]domain.Certification, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Certification), args.Error(1)
}

func (m *MockCertificationUsecase) Create(ctx context.Context, userID int64, in *domain.CertificationInput, file *domain.FileUpload) (*domain.Certification, error) {
	args := m.Called(ctx, userID, in, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certification), args.Error(1)
}

func (m *MockCertificationUsecase) Update(ctx context.Context, userID, id int64, in *domain.CertificationInput, file *domain.FileUpload) (*domain.Certification, error) {
	args := m.Called(ctx, userID, id, in, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certification), args.Error(1)
}

func (m *MockCertificationUsecase) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockProfileUsecase struct{ mock.Mock }

func (m *MockProfileUsecase) Assemble(ctx context.Context, userID int64) (*domain.ProfileDocument, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileDocument), args.Error(1)
}

type MockExportUsecase struct{ mock.Mock }

func (m *MockExportUsecase) Export(ctx context.Context, userID int64, format string) (*domain.ExportFile, error) {
	args := m.Called(ctx, userID, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportFile), args.Error(1)
}

type MockResumeUsecase struct{ mock.Mock }

func (m *MockResumeUsecase) Generate(ctx context.Context, userID int64) (*domain.ResumeResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResumeResult), args.Error(1)
}

type stubHealth struct {
	healthy bool
}

func (s stubHealth) Check(context.Context) (map[string]string, bool) {
	if s.healthy {
		return map[string]string{"status": "ok", "database": "up"}, true
	}
	return map[string]string{"status": "degraded", "database": "down"}, false
}
