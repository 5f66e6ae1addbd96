package bootstrap

import (
	"adslot-panel/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	JWTModule,
	OperatorsModule,
	components.UseCaseModule,
	components.HandlerModule,
)
