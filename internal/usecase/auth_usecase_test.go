package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthUsecase_Signup(t *testing.T) {
	ctx := context.Background()
	in := &domain.SignupInput{Name: "Ada Lovelace", Username: "ada", Password: "s3cret", Mobile: "+441234567"}

	t.Run("stores a bcrypt hash, never the plaintext", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(users, new(MockTokenIssuer), nil, newValidator())

		var stored *domain.User
		users.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.User)
			stored.ID = 42
		}).Return(nil).Once()

		pub, err := uc.Signup(ctx, in, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(42), pub.ID)
		assert.Equal(t, "ada", pub.Username)

		require.NotNil(t, stored)
		assert.NotEqual(t, "s3cret", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))
	})

	t.Run("duplicate username releases the uploaded photo", func(t *testing.T) {
		users, store := new(MockUserRepo), new(MockMediaStore)
		uc := usecase.NewAuthUsecase(users, new(MockTokenIssuer), store, newValidator())

		store.On("Upload", ctx, mock.MatchedBy(func(o domain.MediaObject) bool {
			return o.Folder == domain.FolderProfilePhotos && o.ContentType == "image/jpeg"
		})).Return("https://cdn/profile_photos/p.jpg", nil).Once()
		users.On("Create", ctx, mock.Anything).Return(domain.ErrConflict).Once()
		store.On("Delete", mock.Anything, "https://cdn/profile_photos/p.jpg").Return(nil).Once()

		_, err := uc.Signup(ctx, in, pngUpload(t, "me.png"))
		assert.Equal(t, http.StatusConflict, appCode(t, err))
		assert.EqualError(t, err, "Username already taken")
		store.AssertExpectations(t)
	})

	t.Run("missing password", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(users, new(MockTokenIssuer), nil, newValidator())

		_, err := uc.Signup(ctx, &domain.SignupInput{Name: "Ada", Username: "ada"}, nil)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{ID: 7, Username: "ada", Password: string(hash)}

	t.Run("issues a token", func(t *testing.T) {
		users, tokens := new(MockUserRepo), new(MockTokenIssuer)
		uc := usecase.NewAuthUsecase(users, tokens, nil, newValidator())
		exp := time.Now().Add(time.Hour)

		users.On("GetByUsername", ctx, "ada").Return(user, nil).Once()
		tokens.On("Issue", int64(7)).Return("signed.jwt.token", exp, nil).Once()

		res, err := uc.Login(ctx, &domain.LoginInput{Username: "ada", Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", res.Token)
		assert.Equal(t, exp, res.ExpiresAt)
	})

	t.Run("wrong password and unknown user look the same", func(t *testing.T) {
		users, tokens := new(MockUserRepo), new(MockTokenIssuer)
		uc := usecase.NewAuthUsecase(users, tokens, nil, newValidator())

		users.On("GetByUsername", ctx, "ada").Return(user, nil).Once()
		users.On("GetByUsername", ctx, "nobody").Return(nil, domain.ErrNotFound).Once()

		_, errWrong := uc.Login(ctx, &domain.LoginInput{Username: "ada", Password: "nope"})
		_, errUnknown := uc.Login(ctx, &domain.LoginInput{Username: "nobody", Password: "nope"})

		assert.Equal(t, http.StatusUnauthorized, appCode(t, errWrong))
		assert.Equal(t, http.StatusUnauthorized, appCode(t, errUnknown))
		assert.Equal(t, errWrong.Error(), errUnknown.Error())
		tokens.AssertNotCalled(t, "Issue", mock.Anything)
	})
}
