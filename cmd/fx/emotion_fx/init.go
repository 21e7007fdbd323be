package emotion_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kindred/internal/infra/queue"
	"kindred/internal/repositories"
	"kindred/internal/services"
)

var Module = fx.Provide(
	provideEmotionRepo, provideEmotionService,
)

func provideEmotionRepo(db *gorm.DB) repositories.EmotionRepositoryInterface {
	return repositories.NewEmotionRepository(db)
}

func provideEmotionService(
	accountRepo repositories.AccountRepository,
	friendRepo repositories.FriendRepositoryInterface,
	emotionRepo repositories.EmotionRepositoryInterface,
	events services.EventPublisher,
	producer queue.ProducerHandler,
	log *zap.Logger,
) services.EmotionServiceInterface {
	return services.NewEmotionService(accountRepo, friendRepo, emotionRepo, events, producer, log)
}
