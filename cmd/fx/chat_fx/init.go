package chat_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kindred/internal/repositories"
	"kindred/internal/services"
)

var Module = fx.Provide(
	provideMessageRepo, provideChatService,
)

func provideMessageRepo(db *gorm.DB) repositories.MessageRepositoryInterface {
	return repositories.NewMessageRepository(db)
}

func provideChatService(
	friendRepo repositories.FriendRepositoryInterface,
	messageRepo repositories.MessageRepositoryInterface,
	events services.EventPublisher,
	log *zap.Logger,
) services.ChatServiceInterface {
	return services.NewChatService(friendRepo, messageRepo, events, log)
}
