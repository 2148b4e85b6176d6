package registrar

import "errors"

// 注册表模块错误定义
var (
	// ErrProtocolNotRegistered 协议未注册
	ErrProtocolNotRegistered = errors.New("registrar: protocol not registered")

	// ErrDuplicateProtocol 协议已注册
	ErrDuplicateProtocol = errors.New("registrar: protocol already registered")

	// ErrInvalidProtocolID 无效的协议 ID
	ErrInvalidProtocolID = errors.New("registrar: invalid protocol ID")

	// ErrNilHandler 处理器为空
	ErrNilHandler = errors.New("registrar: handler is nil")

	// ErrNilTopology 拓扑订阅者为空
	ErrNilTopology = errors.New("registrar: topology is nil")

	// ErrSubscriptionNotFound 拓扑订阅不存在
	ErrSubscriptionNotFound = errors.New("registrar: topology subscription not found")
)
