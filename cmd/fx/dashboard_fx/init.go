package dashboard_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kindred/internal/api/controllers"
	"kindred/internal/repositories"
	"kindred/internal/services"
	"kindred/pkg/config"
	"kindred/pkg/utils"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService, provideDashboardController,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(repo repositories.DashboardRepository, log *zap.Logger) services.DashboardService {
	return services.NewDashboardService(repo, log)
}

func provideDashboardController(svc services.DashboardService, cfg *config.Config) *controllers.DashboardController {
	return controllers.NewDashboardController(svc, utils.LoadLocation(cfg.AppTimezone))
}
