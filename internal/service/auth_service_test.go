package service

import (
	"context"
	"testing"

	"ai-mockinterview-be/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	uow := &fakeUow{}
	svc := NewAuthService(&fakeFactory{uow: uow}, "test_secret")
	ctx := context.Background()

	reg, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "dev@example.com",
		Password: "hunter2hunter2",
		FullName: "Dev Example",
	})
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", reg.Email)

	login, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "dev@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
	assert.Equal(t, reg.Id, login.User.Id)
}

func TestLoginTokenVerifiesWithConfiguredSecret(t *testing.T) {
	uow := &fakeUow{}
	svc := NewAuthService(&fakeFactory{uow: uow}, "configured_secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email: "dev@example.com", Password: "hunter2hunter2", FullName: "Dev",
	})
	require.NoError(t, err)

	login, err := svc.Login(ctx, &dto.LoginRequest{
		Email: "dev@example.com", Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	token, err := jwt.Parse(login.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("configured_secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, uow.users[0].Id.String(), claims["user_id"])

	_, err = jwt.Parse(login.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("some_other_secret"), nil
	})
	assert.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uow := &fakeUow{}
	svc := NewAuthService(&fakeFactory{uow: uow}, "test_secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email: "dev@example.com", Password: "hunter2hunter2", FullName: "Dev",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Email: "dev@example.com", Password: "otherpassword", FullName: "Other",
	})
	assert.Error(t, err)
	assert.Len(t, uow.users, 1)
}

func TestLoginWrongPassword(t *testing.T) {
	uow := &fakeUow{}
	svc := NewAuthService(&fakeFactory{uow: uow}, "test_secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email: "dev@example.com", Password: "hunter2hunter2", FullName: "Dev",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "dev@example.com", Password: "wrong"})
	assert.EqualError(t, err, "invalid credentials")

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "wrong"})
	assert.EqualError(t, err, "invalid credentials")
}
