package registrar

import (
	"go.uber.org/fx"

	pkgif "github.com/dep2p/go-middleware-registrar/pkg/interfaces"
)

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("registrar",
		fx.Provide(
			ProvideRegistry,
			fx.Annotate(
				ProvideRegistrar,
				fx.ResultTags(`name:"base_registrar"`),
			),
		),
	)
}

// ProvideRegistry 提供内存注册表
func ProvideRegistry() *Registry {
	return NewRegistry()
}

// ProvideRegistrar 以 Registrar 契约提供内存注册表
func ProvideRegistrar(registry *Registry) pkgif.Registrar {
	return registry
}
