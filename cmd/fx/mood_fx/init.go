package mood_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kindred/internal/repositories"
	"kindred/internal/services"
)

var Module = fx.Provide(
	provideMoodRepo, provideMoodService,
)

func provideMoodRepo(db *gorm.DB) repositories.MoodRepositoryInterface {
	return repositories.NewMoodRepository(db)
}

func provideMoodService(moodRepo repositories.MoodRepositoryInterface, log *zap.Logger) services.MoodServiceInterface {
	return services.NewMoodService(moodRepo, log)
}
