package account_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kindred/internal/repositories"
	"kindred/internal/services"
	"kindred/pkg/config"
	mem "kindred/pkg/memcache"
	"kindred/pkg/middleware"
	"kindred/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(
		provideAccountRepo,
		provideTokenIssuer,
		provideAccountService,
		provideAdminService,
		provideAdminChecker,
	),
	fx.Invoke(bootstrapAdmin),
)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL())
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenIssuer,
	denylist mem.TokenDenylist,
	cfg *config.Config,
	log *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens, denylist, cfg.BcryptCost, log)
}

func provideAdminService(accountRepo repositories.AccountRepository, mailService services.IMailService, log *zap.Logger) services.AdminServiceInterface {
	return services.NewAdminService(accountRepo, mailService, log)
}

func provideAdminChecker(admin services.AdminServiceInterface) middleware.AdminChecker {
	return admin
}

func bootstrapAdmin(lc fx.Lifecycle, admin services.AdminServiceInterface, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return admin.BootstrapAdmin(ctx, cfg.AdminEmail)
		},
	})
}
