package realtime_fx

import (
	"go.uber.org/fx"

	"kindred/internal/realtime"
	"kindred/internal/services"
)

var Module = fx.Provide(
	realtime.NewHub,
	providePublisher)

func providePublisher(hub *realtime.Hub) services.EventPublisher {
	return hub
}
