package mwregistrar

import (
	"go.uber.org/fx"

	"github.com/dep2p/go-middleware-registrar/internal/core/middleware"
	"github.com/dep2p/go-middleware-registrar/internal/core/registrar"
)

// Module 返回完整的 Fx 模块
//
// 聚合内存注册表与装饰注册表两个子模块。
// 调用方需要额外提供 interfaces.Middleware 实现；
// 可选提供 types.MiddlewareOptions 覆盖默认配置。
func Module() fx.Option {
	return fx.Options(
		registrar.Module(),
		middleware.Module(),
	)
}
