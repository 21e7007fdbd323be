package controllers_fx

import (
	"go.uber.org/fx"

	"kindred/internal/api/controllers"
	"kindred/internal/services"
	"kindred/pkg/config"
	"kindred/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewFriendsController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewEmotionController),
	fx.Provide(provideMoodController),
	fx.Provide(controllers.NewFeedbackController),
	fx.Provide(controllers.NewConversationController),
	fx.Provide(controllers.NewSpeechController),
	fx.Provide(controllers.NewRealtimeController))

func provideMoodController(moodService services.MoodServiceInterface, cfg *config.Config) *controllers.MoodController {
	return controllers.NewMoodController(moodService, utils.LoadLocation(cfg.AppTimezone))
}
