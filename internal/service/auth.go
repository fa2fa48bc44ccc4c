package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/cliff-de-tech/library-service/internal/errs"
	"github.com/cliff-de-tech/library-service/internal/model"
	"github.com/cliff-de-tech/library-service/internal/repository"
	"github.com/cliff-de-tech/library-service/pkg/auth"
)

type AuthService struct {
	log      *zap.Logger
	repo     repository.UserRepository
	tokenTTL time.Duration
}

func NewAuthService(repo repository.UserRepository, log *zap.Logger, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		log:      log,
		repo:     repo,
		tokenTTL: tokenTTL,
	}
}

// Register creates a user with a bcrypt password hash. Role
// defaults to MEMBER when the request leaves it empty.
func (s *AuthService) Register(ctx context.Context, req model.UserCreateRequest) (model.User, error) {
	role := auth.RoleMember
	if req.Role != "" {
		var err error
		if role, err = auth.ParseRole(req.Role); err != nil {
			return model.User{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, errors.Wrap(err, "hash password")
	}

	user := model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         string(role),
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse(time.DateOnly, req.DateOfBirth)
		if err != nil {
			return model.User{}, errors.Wrap(err, "date of birth")
		}
		user.DateOfBirth = &dob
	}
	if req.ProfilePhoto != "" {
		photo := req.ProfilePhoto
		user.ProfilePhoto = &photo
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return model.User{}, err
	}
	s.log.Info("user registered", zap.String("username", user.Username), zap.String("role", user.Role))
	return user, nil
}

// Login verifies credentials and issues a signed access token
// carrying the role and its permission grants.
func (s *AuthService) Login(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error) {
	user, err := s.repo.Get(ctx, req.Username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthResponse{}, errs.ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return model.AuthResponse{}, errs.ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(s.tokenTTL)
	claims := &auth.Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}
	claims.Profile.Username = user.Username
	claims.Profile.Role = user.Role
	for _, p := range auth.Role(user.Role).Permissions() {
		claims.Profile.Permissions = append(claims.Profile.Permissions, string(p))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(auth.JWTKey)
	if err != nil {
		return model.AuthResponse{}, errors.Wrap(err, "sign token")
	}

	return model.AuthResponse{
		ExpiresIn:   int(expirationTime.Unix()),
		AccessToken: tokenString,
	}, nil
}

func (s *AuthService) GetUser(ctx context.Context, username string) (model.User, error) {
	return s.repo.Get(ctx, username)
}
