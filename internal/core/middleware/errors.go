package middleware

import "errors"

// 装饰注册表错误定义
var (
	// ErrNilRegistrar 底层注册表为空
	ErrNilRegistrar = errors.New("middleware: registrar is nil")

	// ErrNilMiddleware 中间件为空
	ErrNilMiddleware = errors.New("middleware: middleware provider is nil")

	// ErrInvalidProtocolID 无效的协议 ID
	ErrInvalidProtocolID = errors.New("middleware: invalid protocol ID")

	// ErrNilHandler 处理器为空
	ErrNilHandler = errors.New("middleware: handler is nil")

	// ErrDecorationRefused 中间件拒绝了连接
	ErrDecorationRefused = errors.New("middleware: connection decoration refused")

	// ErrNoConnectionID 连接未提供标识符
	ErrNoConnectionID = errors.New("middleware: connection does not expose an identifier")
)
