package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hostel/infras/otel/mocks"
	"hostel/internal/domains/auth/model/dto"
	"hostel/internal/domains/auth/service"
	sessionMocks "hostel/internal/domains/session/mocks"
	sessionRepo "hostel/internal/domains/session/repository"
	"hostel/internal/domains/store/storetest"
	userMocks "hostel/internal/domains/user/mocks"
	userModel "hostel/internal/domains/user/model"
	userRepo "hostel/internal/domains/user/repository"
	"hostel/shared/failure"
)

type fixture struct {
	svc     service.Auth
	users   userRepo.User
	session sessionRepo.Session
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	otl := mocks.NewOtel()
	s := storetest.New(t)
	users := userRepo.New(s, otl)
	session := sessionRepo.New(s, otl)

	return fixture{
		svc:     service.New(users, session, otl),
		users:   users,
		session: session,
	}
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:     " Asha ",
		Email:    " Asha@Example.com",
		Phone:    "12345",
		Password: "secret",
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	res, err := f.svc.Register(ctx, validRegister())
	require.NoError(t, err)
	assert.Equal(t, "Registration successful! Welcome, Asha", res.Message)
	assert.Equal(t, "asha@example.com", res.User.Email)
	assert.NotEmpty(t, res.User.CreatedAt)

	users, err := f.users.All(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "secret", users[0].Password)

	current, err := f.session.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "asha@example.com", current.Email)
}

func TestAuthService_RegisterPasswordLength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "five characters", password: "abcde", wantErr: true},
		{name: "six characters", password: "abcdef", wantErr: false},
		{name: "empty", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)

			req := validRegister()
			req.Password = tt.password

			_, err := f.svc.Register(ctx, req)

			users, allErr := f.users.All(ctx)
			require.NoError(t, allErr)

			if tt.wantErr {
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.Equal(t, "Password must be at least 6 characters", err.Error())
				assert.Empty(t, users)

				return
			}

			require.NoError(t, err)
			assert.Len(t, users, 1)
		})
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Register(ctx, validRegister())
	require.NoError(t, err)
	require.NoError(t, f.svc.Logout(ctx))

	dup := validRegister()
	dup.Name = "Other"
	dup.Email = "ASHA@example.com "

	_, err = f.svc.Register(ctx, dup)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Equal(t, "Email already registered", err.Error())

	users, err := f.users.All(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Asha", users[0].Name)

	current, err := f.session.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.LoginRequest
		wantCode  int
		wantEmail string
	}{
		{
			name:      "correct credentials",
			req:       dto.LoginRequest{Email: "asha@example.com", Password: "secret"},
			wantEmail: "asha@example.com",
		},
		{
			name:      "email is case insensitive",
			req:       dto.LoginRequest{Email: "  ASHA@example.com", Password: "secret"},
			wantEmail: "asha@example.com",
		},
		{
			name:     "wrong password",
			req:      dto.LoginRequest{Email: "asha@example.com", Password: "Secret"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "unknown email",
			req:      dto.LoginRequest{Email: "nobody@example.com", Password: "secret"},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)

			_, err := f.svc.Register(ctx, validRegister())
			require.NoError(t, err)
			require.NoError(t, f.svc.Logout(ctx))

			res, err := f.svc.Login(ctx, tt.req)

			current, curErr := f.session.Current(ctx)
			require.NoError(t, curErr)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, "Invalid email or password", err.Error())
				assert.Nil(t, current)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Welcome back, Asha!", res.Message)
			require.NotNil(t, current)
			assert.Equal(t, tt.wantEmail, current.Email)
		})
	}
}

func TestAuthService_LogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Register(ctx, validRegister())
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx))
	require.NoError(t, f.svc.Logout(ctx))

	_, err = f.svc.Me(ctx)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Register(ctx, validRegister())
	require.NoError(t, err)

	profile, err := f.svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Asha", profile.Name)
	assert.Equal(t, "12345", profile.Phone)
}

func TestAuthService_RepositoryFailures(t *testing.T) {
	boom := errors.New("store offline")

	tests := []struct {
		name  string
		setup func(users *userMocks.MockUser, session *sessionMocks.MockSession)
		call  func(svc service.Auth) error
	}{
		{
			name: "register mutate fails",
			setup: func(users *userMocks.MockUser, _ *sessionMocks.MockSession) {
				users.EXPECT().Mutate(gomock.Any(), gomock.Any()).Return(boom)
			},
			call: func(svc service.Auth) error {
				_, err := svc.Register(context.Background(), validRegister())

				return err
			},
		},
		{
			name: "register session fails",
			setup: func(users *userMocks.MockUser, session *sessionMocks.MockSession) {
				users.EXPECT().Mutate(gomock.Any(), gomock.Any()).Return(nil)
				session.EXPECT().Set(gomock.Any(), gomock.Any()).Return(boom)
			},
			call: func(svc service.Auth) error {
				_, err := svc.Register(context.Background(), validRegister())

				return err
			},
		},
		{
			name: "login lookup fails",
			setup: func(users *userMocks.MockUser, _ *sessionMocks.MockSession) {
				users.EXPECT().Find(gomock.Any(), gomock.Any()).Return(userModel.User{}, false, boom)
			},
			call: func(svc service.Auth) error {
				_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "a@b.c", Password: "secret"})

				return err
			},
		},
		{
			name: "logout fails",
			setup: func(_ *userMocks.MockUser, session *sessionMocks.MockSession) {
				session.EXPECT().Clear(gomock.Any()).Return(boom)
			},
			call: func(svc service.Auth) error {
				return svc.Logout(context.Background())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := userMocks.NewMockUser(ctrl)
			session := sessionMocks.NewMockSession(ctrl)
			tt.setup(users, session)

			svc := service.New(users, session, mocks.NewOtel())

			err := tt.call(svc)
			assert.ErrorIs(t, err, boom)
			assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		})
	}
}
