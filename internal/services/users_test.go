package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/apperrors"
	"github.com/harentsoaR/pet24-api/internal/models"
)

func newUserService(t *testing.T) *UserService {
	return NewUserService(newRepo(t, UserCollection(zap.NewNop())), zap.NewNop())
}

func TestUserService_DefaultAdmin(t *testing.T) {
	svc := newUserService(t)

	admin, err := svc.Authenticate(context.Background(), "  ADMIN@example.com ", DefaultAdminPassword)
	require.NoError(t, err)
	assert.Equal(t, "1", admin.ID)
	assert.Equal(t, models.RoleAdmin, admin.Role)
}

func TestUserService_AuthenticateRejects(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Authenticate(ctx, DefaultAdminEmail, "wrong")
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))
	assert.Equal(t, "ایمیل یا رمز عبور اشتباه است", apperrors.MessageOf(err, ""))

	_, err = svc.Authenticate(ctx, "nobody@example.com", DefaultAdminPassword)
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	user, err := svc.Register(ctx, " Sara@Example.com ", " سارا ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "sara@example.com", user.Email)
	assert.Equal(t, "سارا", user.Name)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "secret1", user.Password)

	logged, err := svc.Authenticate(ctx, "sara@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	_, err = svc.Register(ctx, "SARA@example.com", "other", "secret2")
	assert.Equal(t, http.StatusConflict, apperrors.StatusOf(err))
	assert.Equal(t, "کاربری با این ایمیل قبلاً ثبت نام کرده است", apperrors.MessageOf(err, ""))

	_, err = svc.Register(ctx, DefaultAdminEmail, "other", "secret2")
	assert.Equal(t, http.StatusConflict, apperrors.StatusOf(err))
}

func TestUserService_ListHidesPasswords(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)
	_, err := svc.Register(ctx, "a@example.com", "a", "secret1")
	require.NoError(t, err)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Equal(t, HiddenPassword, u.Password)
	}

	found, err := svc.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.NotEqual(t, HiddenPassword, found.Password)

	missing, err := svc.FindByEmail(ctx, "b@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
