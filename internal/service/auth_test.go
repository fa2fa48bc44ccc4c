package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/cliff-de-tech/library-service/internal/errs"
	"github.com/cliff-de-tech/library-service/internal/model"
	"github.com/cliff-de-tech/library-service/internal/service"
	"github.com/cliff-de-tech/library-service/pkg/auth"

	repo_mocks "github.com/cliff-de-tech/library-service/internal/repository/mocks"
)

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("ok. password is hashed, role defaults to MEMBER", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockUserRepository(c)
		svc := service.NewAuthService(repo, zap.NewExample().Named("test"), time.Hour)

		var created model.User
		repo.EXPECT().
			Create(context.Background(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user model.User) error {
				created = user
				return nil
			})

		user, err := svc.Register(context.Background(), model.UserCreateRequest{
			Username:    "paul",
			Email:       "paul@arrakis.io",
			Password:    "spiceflow",
			DateOfBirth: "1990-01-02",
		})
		require.NoError(t, err)
		require.Equal(t, "MEMBER", user.Role)
		require.NotEqual(t, "spiceflow", created.PasswordHash)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("spiceflow")))
		require.NotNil(t, created.DateOfBirth)
		require.Equal(t, "1990-01-02", created.DateOfBirth.Format(time.DateOnly))
	})

	t.Run("err. duplicate username", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockUserRepository(c)
		svc := service.NewAuthService(repo, zap.NewExample().Named("test"), time.Hour)

		repo.EXPECT().
			Create(context.Background(), gomock.Any()).
			Return(errs.ErrConflict)

		_, err := svc.Register(context.Background(), model.UserCreateRequest{
			Username: "paul",
			Email:    "paul@arrakis.io",
			Password: "spiceflow",
		})
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("err. unknown role", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockUserRepository(c)
		svc := service.NewAuthService(repo, zap.NewExample().Named("test"), time.Hour)

		_, err := svc.Register(context.Background(), model.UserCreateRequest{
			Username: "paul",
			Email:    "paul@arrakis.io",
			Password: "spiceflow",
			Role:     "EMPEROR",
		})
		require.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("spiceflow"), bcrypt.MinCost)
	require.NoError(t, err)
	storedUser := model.User{
		Username:     "paul",
		Email:        "paul@arrakis.io",
		PasswordHash: string(hash),
		Role:         "LIBRARIAN",
	}

	t.Run("ok. token carries role and permissions", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockUserRepository(c)
		svc := service.NewAuthService(repo, zap.NewExample().Named("test"), time.Hour)

		repo.EXPECT().
			Get(context.Background(), "paul").
			Return(storedUser, nil)

		resp, err := svc.Login(context.Background(), model.AuthRequest{Username: "paul", Password: "spiceflow"})
		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)

		claims := new(auth.Claims)
		token, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
			return auth.JWTKey, nil
		})
		require.NoError(t, err)
		require.True(t, token.Valid)
		require.Equal(t, "paul", claims.Profile.Username)
		require.Equal(t, "LIBRARIAN", claims.Profile.Role)
		require.ElementsMatch(t, []string{"can_view", "can_create", "can_edit"}, claims.Profile.Permissions)
	})

	t.Run("err. wrong password", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockUserRepository(c)
		svc := service.NewAuthService(repo, zap.NewExample().Named("test"), time.Hour)

		repo.EXPECT().
			Get(context.Background(), "paul").
			Return(storedUser, nil)

		_, err := svc.Login(context.Background(), model.AuthRequest{Username: "paul", Password: "wrong"})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("err. unknown user maps to invalid credentials", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockUserRepository(c)
		svc := service.NewAuthService(repo, zap.NewExample().Named("test"), time.Hour)

		repo.EXPECT().
			Get(context.Background(), "leto").
			Return(model.User{}, errs.ErrNotFound)

		_, err := svc.Login(context.Background(), model.AuthRequest{Username: "leto", Password: "spiceflow"})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}
