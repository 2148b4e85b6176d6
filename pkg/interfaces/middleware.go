// Package interfaces 定义 go-middleware-registrar 公共接口
//
// 本文件定义 Middleware 接口，描述可插拔的连接门禁中间件。
package interfaces

import (
	"context"

	"github.com/dep2p/go-middleware-registrar/pkg/types"
)

// Middleware 定义连接门禁中间件接口
//
// 装饰注册表在每条入站流到达应用处理器之前询问中间件：
// 连接已通过门禁则直接放行，否则先执行 Decorate。
// 门禁状态由中间件自身持有，注册表从不缓存或推断。
type Middleware interface {
	// Start 启动中间件
	Start(ctx context.Context) error

	// Stop 停止中间件
	Stop(ctx context.Context) error

	// IsStarted 检查中间件是否已启动
	IsStarted() bool

	// Decorate 对连接执行门禁，返回 true 表示通过
	//
	// 同一连接上多条流并发到达时，Decorate 可能被并发调用。
	// 实现必须保证对同一 connID 的并发调用安全（幂等或内部串行化）。
	// 超时策略由实现自行决定。
	Decorate(ctx context.Context, connID string) (bool, error)

	// IsDecorated 检查连接是否已通过门禁
	IsDecorated(connID string) bool

	// Protocol 返回中间件自身的协商协议 ID
	//
	// 返回空值表示中间件没有自己的线上协议。
	// 该协议的处理器永远不会被装饰，否则握手会死锁。
	Protocol() types.ProtocolID

	// Exclude 返回永不装饰的协议列表
	Exclude() []types.ProtocolID
}
