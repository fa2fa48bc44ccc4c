package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cliff-de-tech/library-service/internal/errs"
	"github.com/cliff-de-tech/library-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=user.go -destination=mocks/user_mock.go

type UserRepository interface {
	Create(ctx context.Context, user model.User) error
	Get(ctx context.Context, username string) (model.User, error)
}

type userRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewUserRepository(db *sqlx.DB, log *zap.Logger) (*userRepository, error) {
	return &userRepository{
		db:  db,
		log: log.Named("user-repo"),
	}, nil
}

const usersTableName = `users`

func (r *userRepository) Create(ctx context.Context, user model.User) error {
	query, args, err := qb.Insert(usersTableName).
		Columns("username", "email", "password_hash", "role", "date_of_birth", "profile_photo").
		Values(user.Username, user.Email, user.PasswordHash, user.Role, user.DateOfBirth, user.ProfilePhoto).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return errs.ErrConflict
		}
		return err
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, username string) (model.User, error) {
	query, args, err := qb.Select("id", "username", "email", "password_hash", "role", "date_of_birth", "profile_photo").
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}
