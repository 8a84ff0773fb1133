package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fitlife/internal/delivery/context"
	"fitlife/internal/domain/entity"
	domainerrors "fitlife/internal/domain/errors"
	"fitlife/internal/domain/repository"
	"fitlife/internal/domain/service"
	"fitlife/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	adminRepo repository.AdminRepository
	userRepo  repository.UserRepository
	sessions  service.SessionStore
	hasher    service.PasswordHasher
	logger    *slog.Logger

	now func() time.Time
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	AdminRepo repository.AdminRepository
	UserRepo  repository.UserRepository
	Sessions  service.SessionStore
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		adminRepo: params.AdminRepo,
		userRepo:  params.UserRepo,
		sessions:  params.Sessions,
		hasher:    params.Hasher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies admin credentials and establishes a fresh session. The
// lookup is by username only; unknown usernames, wrong passwords and
// malformed stored hashes all fail with the same generic error after a full
// bcrypt comparison.
func (srv *adminService) Login(ctx context.Context, input *usecase.AdminLoginInput) (*usecase.AdminLoginOutput, error) {
	admin, err := srv.adminRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		srv.hasher.CheckDummy(input.Password)

		if errors.Is(err, repository.ErrAdminNotFound) {
			srv.log(ctx).Warn("Admin login attempt for unknown username", slog.String("username", input.Username))
		} else {
			srv.log(ctx).Error("Admin lookup failed during login", slog.String("username", input.Username), slog.Any("error", err))
		}

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.ValidHash(admin.PasswordHash) {
		srv.hasher.CheckDummy(input.Password)
		srv.log(ctx).Error("Stored admin password hash is malformed", slog.Any("adminID", admin.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.log(ctx).Warn("Admin login attempt with wrong password", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	// Session fixation defense: whatever session the browser presented is
	// destroyed before a fresh ID is minted, so a pre-login session ID can
	// never become an authenticated one.
	if input.PresentedSessionID != "" {
		if err := srv.sessions.Destroy(ctx, input.PresentedSessionID); err != nil {
			srv.log(ctx).Error("Failed to destroy presented session during login", slog.Any("error", err))

			return nil, domainerrors.ErrInvalidSession.WrapMessage("failed to regenerate session")
		}
	}

	sessionID, err := srv.sessions.Create(ctx, &entity.AdminSession{
		AdminID:  admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
		LoginAt:  srv.now(),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create admin session", slog.Any("adminID", admin.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInvalidSession.WrapMessage("failed to create session")
	}

	srv.log(ctx).Info("Admin logged in", slog.Any("adminID", admin.ID))

	return &usecase.AdminLoginOutput{SessionID: sessionID, Admin: admin}, nil
}

// Logout destroys the session unconditionally, whatever state it is in.
func (srv *adminService) Logout(ctx context.Context, sessionID string) error {
	if err := srv.sessions.Destroy(ctx, sessionID); err != nil {
		srv.log(ctx).Error("Failed to destroy admin session during logout", slog.Any("error", err))

		return errors.Wrap(err, "failed to destroy admin session")
	}

	srv.log(ctx).Info("Admin logged out")

	return nil
}

// Authenticate resolves a session cookie to a live session, then re-checks
// the admin row it points at. A deleted admin, a renamed admin or a storage
// error all destroy the session and fail closed; the session payload is
// never trusted on its own.
func (srv *adminService) Authenticate(ctx context.Context, sessionID string) (*entity.AdminSession, error) {
	if sessionID == "" {
		return nil, domainerrors.ErrInvalidSession
	}

	sess, err := srv.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			srv.log(ctx).Debug("Admin session not found")
		} else {
			srv.log(ctx).Error("Session lookup failed", slog.Any("error", err))
		}

		return nil, domainerrors.ErrInvalidSession
	}

	admin, err := srv.adminRepo.FindByID(ctx, sess.AdminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			srv.log(ctx).Warn("Admin behind session no longer exists", slog.Any("adminID", sess.AdminID))
		} else {
			srv.log(ctx).Error("Admin revalidation failed", slog.Any("adminID", sess.AdminID), slog.Any("error", err))
		}
		srv.destroySession(ctx, sessionID)

		return nil, domainerrors.ErrInvalidSession
	}

	if admin.Username != sess.Username {
		srv.log(ctx).Warn("Admin username changed since login, ending session", slog.Any("adminID", admin.ID))
		srv.destroySession(ctx, sessionID)

		return nil, domainerrors.ErrInvalidSession
	}

	return sess, nil
}

// Dashboard returns the user overview shown in the admin panel.
func (srv *adminService) Dashboard(ctx context.Context) (*usecase.DashboardOutput, error) {
	total, err := srv.userRepo.Count(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to count users for dashboard", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to count users")
	}

	users, err := srv.userRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users for dashboard", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	summaries := make([]*usecase.DashboardUserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, &usecase.DashboardUserSummary{
			ID:           user.ID.String(),
			Name:         user.Name,
			Email:        user.Email,
			CreatedAt:    user.CreatedAt,
			LatestWeight: user.Weight,
		})
	}

	return &usecase.DashboardOutput{TotalUsers: total, Users: summaries}, nil
}

// CreateAdmin provisions a new admin account.
func (srv *adminService) CreateAdmin(ctx context.Context, input *usecase.CreateAdminInput) (*entity.Admin, error) {
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash admin password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash admin password")
	}

	admin := &entity.Admin{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}
	if err := srv.adminRepo.Create(ctx, admin); err != nil {
		srv.log(ctx).Warn("Failed to create admin", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Admin created", slog.Any("adminID", admin.ID))

	return admin, nil
}

func (srv *adminService) destroySession(ctx context.Context, sessionID string) {
	if err := srv.sessions.Destroy(ctx, sessionID); err != nil {
		srv.log(ctx).Error("Failed to destroy admin session", slog.Any("error", err))
	}
}
