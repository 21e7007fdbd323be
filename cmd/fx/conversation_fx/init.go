package conversation_fx

import (
	"context"
	"io"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"kindred/internal/services"
	"kindred/pkg/config"
	"kindred/pkg/utils"
)

var Module = fx.Provide(
	ProvideChatCompletionClient,
	ProvideConversationService)

// ProvideChatCompletionClient picks the completion provider from AI_PROVIDER.
func ProvideChatCompletionClient(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (utils.ChatCompletionClient, error) {
	provider := strings.ToLower(cfg.AIProvider)
	apiKey, model := cfg.OpenAIAPIKey, cfg.OpenAIModel
	if provider == "gemini" {
		apiKey, model = cfg.GeminiAPIKey, cfg.GeminiModel
	}
	if apiKey == "" {
		log.Warn("no API key for completion provider, /conversation will return 500", zap.String("provider", provider))
	}

	log.Info("initializing completion client", zap.String("provider", provider), zap.String("model", model))
	client, err := utils.NewChatCompletionClient(provider, apiKey, model)
	if err != nil {
		return nil, err
	}
	closeOnStop(lc, client, log)
	return client, nil
}

// closeOnStop releases clients that hold connections, such as Gemini's.
func closeOnStop(lc fx.Lifecycle, client utils.ChatCompletionClient, log *zap.Logger) {
	closer, ok := client.(io.Closer)
	if !ok {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := closer.Close(); err != nil {
				log.Warn("completion client close failed", zap.Error(err))
			}
			return nil
		},
	})
}

func ProvideConversationService(client utils.ChatCompletionClient, cfg *config.Config, log *zap.Logger) services.ConversationServiceInterface {
	return services.NewConversationService(client, cfg.AIMaxTokens, cfg.AITemperature, log)
}
