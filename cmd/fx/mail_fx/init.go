package mail_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"kindred/internal/services"
	"kindred/pkg/config"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config, log *zap.Logger) services.IMailService {
	return services.NewSMTPMailService(services.SMTPConfig{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort,
		Username:   cfg.SMTPUsername,
		Password:   cfg.SMTPPassword,
		From:       cfg.SMTPFrom,
		FromName:   "Kindred",
		UseSSL:     cfg.SMTPPort == 465,
		RequireTLS: true,
		AppName:    "Kindred",
	}, log)
}
