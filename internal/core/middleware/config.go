package middleware

import (
	"github.com/dep2p/go-middleware-registrar/pkg/types"
)

// Options 装饰注册表装配配置
//
// 公共类型的别名，外部装配（含 Fx）直接使用 types.MiddlewareOptions。
type Options = types.MiddlewareOptions

// DefaultOptions 返回默认配置
func DefaultOptions() Options {
	return Options{
		Protocols: make(map[types.ProtocolID]types.ProtocolOptions),
	}
}
