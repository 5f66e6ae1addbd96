package bootstrap

import (
	"adslot-panel/internal/domain/operator"
	"adslot-panel/internal/pkg/config"

	"go.uber.org/fx"
)

var OperatorsModule = fx.Module("operators",
	fx.Provide(
		NewOperatorDirectory,
	),
)

func NewOperatorDirectory(cfg config.Config) (*operator.Directory, error) {
	return operator.ParseDirectory(cfg.Auth.Operators)
}
