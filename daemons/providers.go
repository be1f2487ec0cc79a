package daemons

import (
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(NewDaemonRunner),
	fx.Invoke(func(runner *DaemonRunner) {
		runner.Start()
	}),
)
