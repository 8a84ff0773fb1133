package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"fitlife/config"
	"fitlife/internal/delivery"
	"fitlife/internal/delivery/http"
	"fitlife/internal/delivery/http/middleware"
	"fitlife/internal/delivery/http/router/handler"
	"fitlife/internal/domain/service"
	"fitlife/internal/infra/auth"
	logs "fitlife/internal/infra/log"
	"fitlife/internal/infra/persistence/postgres"
	"fitlife/internal/infra/session"
	"fitlife/internal/usecase/impl"

	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

const defaultSessionTTL = 2 * time.Hour

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAdminRepository,
			postgres.NewExerciseRepository,
			postgres.NewFoodLogRepository,
			postgres.NewDailyStatRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewRandomTokenSource,
			newSessionStore,
		),
	)
}

// newPasswordHasher builds the bcrypt hasher with the configured cost.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasherWithCost(cost)
}

// newSessionStore builds the in-memory admin session store with the
// configured TTL.
func newSessionStore(params session.Params, cfg *config.Config) service.SessionStore {
	ttl := defaultSessionTTL
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		ttl = cfg.Auth.SessionTTL
	}

	return session.NewMemoryStore(params, ttl)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAdminService,
			impl.NewExerciseService,
			impl.NewFoodLogService,
			impl.NewStatsService,
			impl.NewProfileService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewAdminMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewExerciseHandler,
			handler.NewFoodLogHandler,
			handler.NewStatsHandler,
			handler.NewProfileHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
