package friends_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kindred/internal/repositories"
	"kindred/internal/services"
	"kindred/pkg/config"
)

var Module = fx.Provide(
	provideFriendRepo, provideFriendService,
)

func provideFriendRepo(db *gorm.DB) repositories.FriendRepositoryInterface {
	return repositories.NewFriendRepository(db)
}

func provideFriendService(
	accountRepo repositories.AccountRepository,
	friendRepo repositories.FriendRepositoryInterface,
	events services.EventPublisher,
	cfg *config.Config,
	log *zap.Logger,
) services.FriendServiceInterface {
	return services.NewFriendService(accountRepo, friendRepo, events, cfg.PresenceWindow(), log)
}
