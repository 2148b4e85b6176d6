// Package interfaces 定义 go-middleware-registrar 公共接口
//
// 本文件定义 Registrar 相关接口，管理协议注册与拓扑订阅。
package interfaces

import (
	"context"

	"github.com/dep2p/go-middleware-registrar/pkg/types"
)

// HandleOptions 处理器注册选项
//
// 原样转发给底层注册表，由传输层的资源控制执行。
type HandleOptions struct {
	// MaxInboundStreams 每连接最大入站流数，0 表示使用默认值
	MaxInboundStreams int

	// MaxOutboundStreams 每连接最大出站流数，0 表示使用默认值
	MaxOutboundStreams int
}

// Registrar 定义协议注册表接口
type Registrar interface {
	// Protocols 返回所有已注册的协议
	Protocols() []types.ProtocolID

	// Handle 注册协议处理器
	//
	// opts 为 nil 时使用默认注册选项。
	Handle(protocolID types.ProtocolID, handler StreamHandler, opts *HandleOptions) error

	// Unhandle 注销协议处理器
	Unhandle(protocolID types.ProtocolID) error

	// GetHandler 获取协议处理器
	//
	// 协议未注册时返回错误。
	GetHandler(protocolID types.ProtocolID) (StreamHandler, error)

	// Register 为协议注册拓扑订阅，返回订阅 ID
	Register(protocolID types.ProtocolID, topology Topology) (string, error)

	// Unregister 按订阅 ID 移除拓扑订阅
	Unregister(id string) error

	// GetTopologies 返回协议的所有拓扑订阅者
	GetTopologies(protocolID types.ProtocolID) []Topology
}

// MiddlewareRegistrar 定义装饰注册表接口
//
// 在 Registrar 契约之上增加中间件生命周期和按协议的中间件配置，
// 可作为底层 Registrar 的直接替代品。
type MiddlewareRegistrar interface {
	Registrar

	// Start 启动中间件并进入 started 状态
	//
	// 已启动时为幂等空操作。
	Start(ctx context.Context) error

	// Stop 停止中间件并回到 stopped 状态
	//
	// 已停止时为幂等空操作。
	Stop(ctx context.Context) error

	// IsStarted 报告当前生命周期状态
	IsStarted() bool

	// SetProtocolOptions 设置协议的中间件配置
	//
	// 对之后的 Handle 调用生效；已注册协议的包装处理器不受影响。
	SetProtocolOptions(protocolID types.ProtocolID, opts types.ProtocolOptions)
}
