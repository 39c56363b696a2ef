package main

import (
	"context"
	"log/slog"

	"casefile/config"
	"casefile/internal/domain/service"
	"casefile/internal/infra/auth"
	logs "casefile/internal/infra/log"
	"casefile/internal/infra/persistence/postgres"
	"casefile/internal/usecase"
	"casefile/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			logReady,
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
			postgres.NewCaseRepository,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher with the configured cost.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil || cfg.Auth.BcryptCost == 0 {
		return auth.NewBcryptHasher()
	}

	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCaseService,
			impl.NewUserService,
		),
	)
}

// logReady forces the object graph to build and reports the services that
// delivery layers can attach to.
func logReady(logger *slog.Logger, _ usecase.CaseUsecase, _ usecase.UserUsecase) {
	logger.Info("case store ready")
}
