package config_fx

import (
	"go.uber.org/fx"

	"kindred/pkg/config"
)

var Module = fx.Provide(config.Load)
