package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stayadmin/config"
	"stayadmin/infras/jwt"
	jwtMocks "stayadmin/infras/jwt/mocks"
	"stayadmin/infras/otel/mocks"
	"stayadmin/internal/domains/auth/model/dto"
	"stayadmin/internal/domains/auth/service"
	"stayadmin/shared/password"
)

func newService(t *testing.T, ctrl *gomock.Controller) (service.Auth, *jwtMocks.MockJWT) {
	t.Helper()

	hash, err := password.Hash("correct-horse")
	assert.NoError(t, err)

	cfg := &config.Config{}
	cfg.Operator.Username = "admin"
	cfg.Operator.PasswordHash = hash

	jwtMock := jwtMocks.NewMockJWT(ctrl)

	return service.New(cfg, mocks.NewOtel(), jwtMock), jwtMock
}

func TestLogin(t *testing.T) {
	pair := &jwt.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, jwtMock := newService(t, ctrl)
		jwtMock.EXPECT().GenerateTokenPair("admin").Return(pair, nil)

		res, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "correct-horse"})

		assert.NoError(t, err)
		assert.Equal(t, "access", res.AccessToken)
		assert.Equal(t, "refresh", res.RefreshToken)
		assert.Equal(t, int64(900), res.ExpiresIn)
	})

	t.Run("unknown username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newService(t, ctrl)

		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "intruder", Password: "correct-horse"})

		assert.Error(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newService(t, ctrl)

		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "wrong"})

		assert.Error(t, err)
	})

	t.Run("token generation fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, jwtMock := newService(t, ctrl)
		jwtMock.EXPECT().GenerateTokenPair("admin").Return(nil, errors.New("boom"))

		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "correct-horse"})

		assert.Error(t, err)
	})
}

func TestRefreshToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, jwtMock := newService(t, ctrl)
		jwtMock.EXPECT().RefreshTokens("old-refresh").Return(&jwt.TokenPair{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
			TokenType:    "Bearer",
			ExpiresIn:    900,
		}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old-refresh"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
		assert.Equal(t, "new-refresh", res.RefreshToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, jwtMock := newService(t, ctrl)
		jwtMock.EXPECT().RefreshTokens("garbage").Return(nil, jwt.ErrInvalidToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "garbage"})

		assert.Error(t, err)
	})
}
