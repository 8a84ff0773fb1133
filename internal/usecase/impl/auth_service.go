// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"fitlife/config"
	deliverycontext "fitlife/internal/delivery/context"
	"fitlife/internal/domain/entity"
	domainerrors "fitlife/internal/domain/errors"
	"fitlife/internal/domain/repository"
	"fitlife/internal/domain/service"
	"fitlife/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTokenTTL         = 7 * 24 * time.Hour
	defaultDailyCalorieGoal = 2000
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	tokens    service.TokenSource
	tokenTTL  time.Duration
	logger    *slog.Logger

	now func() time.Time
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Tokens    service.TokenSource
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	tokenTTL := defaultTokenTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.TokenTTL > 0 {
		tokenTTL = params.Config.Auth.TokenTTL
	}

	return &authService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		tokens:    params.Tokens,
		tokenTTL:  tokenTTL,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new user account and issues its first API token.
// The account row and the initial weight history entry are written in one
// transaction so a failed registration leaves nothing behind.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:             input.Name,
		Email:            input.Email,
		PasswordHash:     hashedPassword,
		Age:              input.Age,
		Height:           input.Height,
		Weight:           input.Weight,
		Gender:           input.Gender,
		DailyCalorieGoal: defaultDailyCalorieGoal,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		if input.Weight != nil {
			entry := &entity.WeightEntry{
				UserID: newUser.ID,
				Date:   dateOnly(srv.now()),
				Weight: *input.Weight,
			}
			if err := userRepo.UpsertWeightEntry(ctx, entry); err != nil {
				return errors.Wrap(err, "failed to record initial weight during registration")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", newUser.ID))

	return srv.issueToken(ctx, newUser)
}

// Login verifies credentials and issues a replacement API token. Every failure
// path burns a bcrypt comparison and collapses into the same generic error, so
// an unknown email is indistinguishable from a wrong password.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.hasher.CheckDummy(input.Password)

		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", input.Email))
		} else {
			// Storage errors on the verification path fail closed.
			srv.log(ctx).Error("User lookup failed during login", slog.String("email", input.Email), slog.Any("error", err))
		}

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.ValidHash(user.PasswordHash) {
		// A corrupted stored hash must never verify. Burn the comparison
		// anyway so this path is not observably faster.
		srv.hasher.CheckDummy(input.Password)
		srv.log(ctx).Error("Stored password hash is malformed", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueToken(ctx, user)
}

// Logout clears the stored token and its expiry. The token that carried this
// request is permanently unusable afterwards; there is no undo.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.ClearToken(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to clear token during logout", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to clear token during logout")
	}

	srv.log(ctx).Info("User logged out", slog.Any("userID", userID))

	return nil
}

// Refresh issues a replacement token for an authenticated user. The token
// that carried the request stops matching as soon as the replacement lands.
func (srv *authService) Refresh(ctx context.Context, userID uuid.UUID) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("User lookup failed during token refresh", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("failed to load user during token refresh")
	}

	return srv.issueToken(ctx, user)
}

// Authenticate resolves a bearer token to the identity holding it. All
// rejection reasons collapse into ErrInvalidToken; the real reason only
// reaches the log.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	// Empty tokens are rejected before touching storage.
	if token == "" {
		return nil, domainerrors.ErrInvalidToken
	}

	user, err := srv.userRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Token validation failed: no matching token")
		} else {
			// Storage errors fail closed on the validation path.
			srv.log(ctx).Error("Token lookup failed", slog.Any("error", err))
		}

		return nil, domainerrors.ErrInvalidToken
	}

	if user.Token == nil || user.Token.ExpiresAt.IsZero() {
		srv.log(ctx).Warn("Token row has no expiry", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidToken
	}

	if user.Token.ExpiresAt.Before(srv.now()) {
		srv.log(ctx).Debug("Token validation failed: token expired", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidToken
	}

	return user.Identity(), nil
}

// issueToken mints a fresh token and atomically replaces whatever the user
// row held before. A storage failure here is a hard failure: no token is
// returned and the client must retry the login.
func (srv *authService) issueToken(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokens.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("failed to generate token")
	}

	expiresAt := srv.now().Add(srv.tokenTTL)
	if err := srv.userRepo.ReplaceToken(ctx, user.ID, token, expiresAt); err != nil {
		srv.log(ctx).Error("Failed to persist token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("failed to persist token")
	}

	srv.log(ctx).Debug("Issued token", slog.Any("userID", user.ID), slog.Time("expiresAt", expiresAt))

	return &usecase.AuthOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.Identity(),
	}, nil
}

// dateOnly truncates a timestamp to its calendar day in UTC.
func dateOnly(t time.Time) time.Time {
	u := t.UTC()

	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
