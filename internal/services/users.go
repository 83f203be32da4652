package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/apperrors"
	"github.com/harentsoaR/pet24-api/internal/models"
	"github.com/harentsoaR/pet24-api/internal/storage"
	"github.com/harentsoaR/pet24-api/internal/utils"
)

const (
	HiddenPassword = "***hidden***"

	msgDuplicateEmail = "کاربری با این ایمیل قبلاً ثبت نام کرده است"
	msgBadCredentials = "ایمیل یا رمز عبور اشتباه است"
	msgRegisterFailed = "خطا در ثبت نام"
)

// UserCollection declares email as the unique key. The default admin is
// seeded lazily; a hashing failure leaves the store empty and is logged.
func UserCollection(log *zap.Logger) storage.Collection[models.User] {
	return storage.Collection[models.User]{
		Name:   "users",
		Prefix: "user",
		Seed: func() []models.User {
			users, err := defaultUsers()
			if err != nil {
				log.Error("Failed to build default admin", zap.Error(err))
				return nil
			}
			return users
		},
		Unique: &storage.UniqueKey[models.User]{
			Field: "email",
			Value: func(u models.User) string { return u.Email },
		},
	}
}

// NormalizeEmail lowercases and trims an address before it is stored or
// looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type UserService struct {
	repo *storage.Repository[models.User]
	log  *zap.Logger
}

func NewUserService(repo *storage.Repository[models.User], log *zap.Logger) *UserService {
	return &UserService{repo: repo, log: log.Named("users")}
}

// FindByEmail returns nil when no account uses the address.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	email = NormalizeEmail(email)
	res, err := s.repo.List(ctx, storage.Query[models.User]{
		Match: func(u models.User) bool { return NormalizeEmail(u.Email) == email },
	})
	users, err := unwrap(s.log, "find by email", res, err)
	if err != nil || len(users) == 0 {
		return nil, err
	}
	return &users[0], nil
}

// Authenticate returns the account when the password matches its hash.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if user == nil {
		s.log.Info("Login failed: unknown email", zap.String("email", NormalizeEmail(email)))
		return models.User{}, apperrors.Unauthorized(msgBadCredentials)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		s.log.Info("Login failed: wrong password", zap.String("email", user.Email))
		return models.User{}, apperrors.Unauthorized(msgBadCredentials)
	}
	return *user, nil
}

// Register creates a plain user account.
func (s *UserService) Register(ctx context.Context, email, name, password string) (models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, apperrors.Internal(msgRegisterFailed, err)
	}

	res, err := s.repo.Create(ctx, models.User{
		Email:    NormalizeEmail(email),
		Name:     strings.TrimSpace(name),
		Password: hash,
		Role:     models.RoleUser,
	})
	user, err := unwrap(s.log, "create", res, err)
	if errors.Is(err, storage.ErrDuplicate) {
		return models.User{}, apperrors.Conflict(msgDuplicateEmail, err)
	}
	if err != nil {
		return models.User{}, err
	}
	s.log.Info("User registered", zap.String("id", user.ID), zap.String("email", user.Email))
	return user, nil
}

// List returns every account with the password replaced by a marker.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	res, err := s.repo.List(ctx, storage.Query[models.User]{})
	users, err := unwrap(s.log, "list", res, err)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = HiddenPassword
	}
	return users, nil
}
