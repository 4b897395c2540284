package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"resume-builder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestUserRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("returns generated id", func(t *testing.T) {
		mock := newMock(t)
		repo := NewUserRepository(mock)
		now := time.Now()

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("Ada", "ada", "hash", "", "", "", pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "created_at"}).AddRow(int64(7), now))

		user := &domain.User{Name: "Ada", Username: "ada", Password: "hash"}
		require.NoError(t, repo.Create(ctx, user))
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, now, user.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username maps to conflict", func(t *testing.T) {
		mock := newMock(t)
		repo := NewUserRepository(mock)

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("Ada", "ada", "hash", "", "", "", pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

		err := repo.Create(ctx, &domain.User{Name: "Ada", Username: "ada", Password: "hash"})
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("scans every column", func(t *testing.T) {
		mock := newMock(t)
		repo := NewUserRepository(mock)
		now := time.Now()

		mock.ExpectQuery("SELECT (.+) FROM users WHERE user_id").
			WithArgs(int64(3)).
			WillReturnRows(pgxmock.NewRows([]string{
				"user_id", "name", "username", "password", "username_alias", "mobile", "location", "profile_photo", "created_at",
			}).AddRow(int64(3), "Ada", "ada", "hash", "al", "123", "London", strPtr("https://cdn/p.jpg"), now))

		user, err := repo.GetByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "ada", user.Username)
		assert.Equal(t, "hash", user.Password)
		require.NotNil(t, user.ProfilePhoto)
		assert.Equal(t, "https://cdn/p.jpg", *user.ProfilePhoto)
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		mock := newMock(t)
		repo := NewUserRepository(mock)

		mock.ExpectQuery("SELECT (.+) FROM users WHERE user_id").
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserRepo_UpdateInfo_Conflict(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("UPDATE users SET name").
		WithArgs(int64(1), "A", "taken", "", "").
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.UpdateInfo(context.Background(), &domain.User{ID: 1, Name: "A", Username: "taken"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetProfileUser(t *testing.T) {
	ctx := context.Background()

	t.Run("selects public columns only", func(t *testing.T) {
		mock := newMock(t)
		repo := NewUserRepository(mock)

		mock.ExpectQuery(`^SELECT user_id, name, username, mobile, location, profile_photo FROM users WHERE user_id = \$1$`).
			WithArgs(int64(3)).
			WillReturnRows(pgxmock.NewRows([]string{
				"user_id", "name", "username", "mobile", "location", "profile_photo",
			}).AddRow(int64(3), "Ada", "ada", "123", "London", (*string)(nil)))

		user, err := repo.GetProfileUser(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), user.ID)
		assert.Equal(t, "ada", user.Username)
		assert.Nil(t, user.ProfilePhoto)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		mock := newMock(t)
		repo := NewUserRepository(mock)

		mock.ExpectQuery("FROM users WHERE user_id").
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetProfileUser(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEducationRepo_ListByUser(t *testing.T) {
	mock := newMock(t)
	repo := NewEducationRepository(mock)

	cols := []string{"id", "user_id", "title", "start_year", "end_year", "board", "cgpa", "stream", "school", "website"}
	mock.ExpectQuery("FROM education WHERE user_id").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(int64(10), int64(1), "PhD", "2020", "2024", "X", "8.5", "CS", "MIT", (*string)(nil)).
			AddRow(int64(11), int64(1), "12th", "2014", "2016", "CBSE", "92", "Science", "DPS", strPtr("https://dps.example")))

	items, err := repo.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "PhD", items[0].Title)
	assert.Nil(t, items[0].Website)
	assert.Equal(t, "https://dps.example", *items[1].Website)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEducationRepo_ListByUser_Empty(t *testing.T) {
	mock := newMock(t)
	repo := NewEducationRepository(mock)

	cols := []string{"id", "user_id", "title", "start_year", "end_year", "board", "cgpa", "stream", "school", "website"}
	mock.ExpectQuery("FROM education WHERE user_id").
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows(cols))

	items, err := repo.ListByUser(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestEducationRepo_Update_ScopedToOwner(t *testing.T) {
	mock := newMock(t)
	repo := NewEducationRepository(mock)

	// Row 5 belongs to another user, so the scoped UPDATE matches nothing.
	mock.ExpectQuery("UPDATE education").
		WithArgs(int64(5), int64(2), "PhD", "2020", "2024", "X", "8.5", "CS", "MIT", pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	err := repo.Update(context.Background(), &domain.Education{
		ID: 5, UserID: 2, Title: "PhD", StartYear: "2020", EndYear: "2024",
		Board: "X", CGPA: "8.5", Stream: "CS", School: "MIT",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillRepo_CreateAndDelete(t *testing.T) {
	ctx := context.Background()
	mock := newMock(t)
	repo := NewSkillRepository(mock)

	mock.ExpectQuery("INSERT INTO skills").
		WithArgs(int64(1), "Go", "Language").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(4)))
	mock.ExpectQuery("DELETE FROM skills").
		WithArgs(int64(4), int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(4)))
	mock.ExpectQuery("DELETE FROM skills").
		WithArgs(int64(4), int64(1)).
		WillReturnError(pgx.ErrNoRows)

	s := &domain.Skill{UserID: 1, Name: "Go", Type: "Language"}
	require.NoError(t, repo.Create(ctx, s))
	assert.Equal(t, int64(4), s.ID)

	require.NoError(t, repo.Delete(ctx, 1, 4))
	assert.ErrorIs(t, repo.Delete(ctx, 1, 4), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCertificationRepo_DeleteReturnsAttachment(t *testing.T) {
	mock := newMock(t)
	repo := NewCertificationRepository(mock)

	mock.ExpectQuery("DELETE FROM certifications").
		WithArgs(int64(8), int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "title", "institute", "file_url"}).
			AddRow(int64(8), int64(1), "AWS SA", "Amazon", strPtr("https://cdn/certifications/a.pdf")))

	c, err := repo.Delete(context.Background(), 1, 8)
	require.NoError(t, err)
	require.NotNil(t, c.FileURL)
	assert.Equal(t, "https://cdn/certifications/a.pdf", *c.FileURL)
}

func TestHobbyRepo_ListQueryError(t *testing.T) {
	mock := newMock(t)
	repo := NewHobbyRepository(mock)

	mock.ExpectQuery("FROM hobbies").WillReturnError(errors.New("connection reset"))

	_, err := repo.ListByUser(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "list hobbies")
}

func TestLinkedinRepo_Update(t *testing.T) {
	mock := newMock(t)
	repo := NewLinkedinRepository(mock)

	mock.ExpectQuery("UPDATE linkedin_profiles").
		WithArgs(int64(2), int64(1), "Ada", "https://linkedin.com/in/ada").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(2)))

	err := repo.Update(context.Background(), &domain.LinkedinProfile{ID: 2, UserID: 1, Name: "Ada", URL: "https://linkedin.com/in/ada"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
