package service

import (
	"context"
	"fmt"
	"slices"
	"unicode/utf8"

	"hostel/infras/otel"
	"hostel/internal/domains/auth/model/dto"
	sessionRepo "hostel/internal/domains/session/repository"
	"hostel/internal/domains/store"
	userModel "hostel/internal/domains/user/model"
	userRepo "hostel/internal/domains/user/repository"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"hostel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	msgPasswordTooShort = "Password must be at least 6 characters"
	msgEmailRegistered  = "Email already registered"
	msgNotLoggedIn      = "Please login first"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (userModel.Profile, error)
}

type serviceImpl struct {
	userRepo    userRepo.User
	sessionRepo sessionRepo.Session
	otel        otel.Otel
}

func New(userRepo userRepo.User, sessionRepo sessionRepo.Session, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		otel:        otel,
	}
}

// Register stores a new user and signs them in.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if utf8.RuneCountInString(req.Password) < dto.MinPasswordLength {
		return res, failure.BadRequestFromString(msgPasswordTooShort) //nolint:wrapcheck
	}

	user := req.ToModel(timezone.ISOString(timezone.Now()))
	duplicate := false

	err = s.userRepo.Mutate(ctx, func(users *[]userModel.User) error {
		duplicate = slices.ContainsFunc(*users, func(u userModel.User) bool { return u.Email == user.Email })
		if duplicate {
			return store.ErrNoChange
		}

		*users = append(*users, user)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to register user")

		return res, fmt.Errorf("failed to register user: %w", err)
	}

	if duplicate {
		return res, failure.Conflict(msgEmailRegistered) //nolint:wrapcheck
	}

	if err = s.sessionRepo.Set(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to start session")

		return res, fmt.Errorf("failed to start session: %w", err)
	}

	log.Info().Str("email", user.Email).Msg("user registered")

	return dto.AuthResponse{
		Message: "Registration successful! Welcome, " + user.Name,
		User:    user.Profile(),
	}, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email := dto.NormalizeEmail(req.Email)

	user, found, err := s.userRepo.Find(ctx, func(u userModel.User) bool {
		return u.Email == email && u.Password == req.Password
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to find user")

		return res, fmt.Errorf("failed to find user: %w", err)
	}

	if !found {
		return res, failure.InvalidCredentialsError
	}

	if err = s.sessionRepo.Set(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to start session")

		return res, fmt.Errorf("failed to start session: %w", err)
	}

	return dto.AuthResponse{
		Message: "Welcome back, " + user.Name + "!",
		User:    user.Profile(),
	}, nil
}

// Logout succeeds whether or not anyone is signed in.
func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.sessionRepo.Clear(ctx); err != nil {
		log.Error().Err(err).Msg("failed to clear session")

		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

func (s *serviceImpl) Me(ctx context.Context) (res userModel.Profile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.sessionRepo.Current(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get current user")

		return res, fmt.Errorf("failed to get current user: %w", err)
	}

	if user == nil {
		return res, failure.Unauthorized(msgNotLoggedIn) //nolint:wrapcheck
	}

	return user.Profile(), nil
}
