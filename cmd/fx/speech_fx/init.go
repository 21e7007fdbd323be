package speech_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"kindred/internal/repositories"
	"kindred/internal/services"
	"kindred/pkg/config"
	"kindred/pkg/utils"
)

var Module = fx.Provide(provideSpeechClient, provideSpeechService)

func provideSpeechClient(cfg *config.Config) utils.SpeechClient {
	return utils.NewOpenAISpeechClient(cfg.OpenAIAPIKey, cfg.OpenAITTSModel)
}

func provideSpeechService(accountRepo repositories.AccountRepository, client utils.SpeechClient, log *zap.Logger) services.SpeechServiceInterface {
	return services.NewSpeechService(accountRepo, client, log)
}
