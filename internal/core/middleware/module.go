package middleware

import (
	"context"

	"go.uber.org/fx"

	pkgif "github.com/dep2p/go-middleware-registrar/pkg/interfaces"
)

// Params 装饰注册表依赖参数
type Params struct {
	fx.In

	Registrar  pkgif.Registrar `name:"base_registrar"`
	Middleware pkgif.Middleware
	Options    Options `optional:"true"`
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("middleware",
		fx.Provide(
			ProvideRegistrar,
			fx.Annotate(
				ProvideMiddlewareRegistrar,
				fx.As(new(pkgif.MiddlewareRegistrar)),
			),
		),
		// 挂载中间件生命周期
		fx.Invoke(registerLifecycle),
	)
}

// ProvideRegistrar 提供装饰注册表
func ProvideRegistrar(params Params) (*Registrar, error) {
	return New(Components{
		Registrar:  params.Registrar,
		Middleware: params.Middleware,
	}, params.Options)
}

// ProvideMiddlewareRegistrar 以 MiddlewareRegistrar 契约提供装饰注册表
func ProvideMiddlewareRegistrar(registrar *Registrar) *Registrar {
	return registrar
}

// lifecycleInput 生命周期挂载输入
type lifecycleInput struct {
	fx.In

	Lifecycle fx.Lifecycle
	Registrar *Registrar
}

// registerLifecycle 将装饰注册表挂载到 Fx 生命周期
func registerLifecycle(input lifecycleInput) {
	input.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return input.Registrar.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return input.Registrar.Stop(ctx)
		},
	})
}
