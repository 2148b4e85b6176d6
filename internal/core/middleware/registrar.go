package middleware

import (
	"context"
	"sync"

	pkgif "github.com/dep2p/go-middleware-registrar/pkg/interfaces"
	"github.com/dep2p/go-middleware-registrar/pkg/lib/log"
	"github.com/dep2p/go-middleware-registrar/pkg/types"
)

var logger = log.Logger("core/middleware")

// Registrar 装饰注册表
//
// 包装一个底层注册表和一个门禁中间件：Handle 为每个协议安装
// 包装处理器，入站流先经过装饰管线再到达应用处理器；其余
// 注册表操作原样委托。
type Registrar struct {
	inner      pkgif.Registrar
	middleware pkgif.Middleware

	// handlers/options 只由 Handle/Unhandle/SetProtocolOptions 修改
	mu       sync.RWMutex
	handlers map[types.ProtocolID]pkgif.StreamHandler
	options  map[types.ProtocolID]types.ProtocolOptions
	defaults types.ProtocolOptions

	// 生命周期
	lifecycleMu sync.Mutex
	started     bool
}

var _ pkgif.MiddlewareRegistrar = (*Registrar)(nil)

// Components 装配依赖
type Components struct {
	// Registrar 被包装的底层注册表
	Registrar pkgif.Registrar

	// Middleware 连接门禁中间件
	Middleware pkgif.Middleware
}

// New 创建装饰注册表
//
// 应用 opts 中的按协议配置后，返回满足 Registrar 契约的
// 直接替代品。
func New(components Components, opts Options) (*Registrar, error) {
	if components.Registrar == nil {
		return nil, ErrNilRegistrar
	}
	if components.Middleware == nil {
		return nil, ErrNilMiddleware
	}

	r := &Registrar{
		inner:      components.Registrar,
		middleware: components.Middleware,
		handlers:   make(map[types.ProtocolID]pkgif.StreamHandler),
		options:    make(map[types.ProtocolID]types.ProtocolOptions),
		defaults:   opts.Defaults,
	}
	for protocolID, po := range opts.Protocols {
		r.options[protocolID] = po
	}
	return r, nil
}

// ============================================================================
//                              注册与配置
// ============================================================================

// Handle 注册协议处理器
//
// 中间件自身的协商协议、排除列表中的协议以及配置了
// SkipDecoration 的协议直接注册到底层注册表；其余协议
// 记录原始处理器并注册包装处理器，注册选项原样转发。
func (r *Registrar) Handle(protocolID types.ProtocolID, handler pkgif.StreamHandler, opts *pkgif.HandleOptions) error {
	if protocolID == "" {
		return ErrInvalidProtocolID
	}
	if handler == nil {
		return ErrNilHandler
	}

	if mwProto := r.middleware.Protocol(); mwProto != "" && mwProto == protocolID {
		// 装饰中间件自己的握手处理器会导致握手死锁
		logger.Debug("直接注册中间件自身协议", "protocolID", protocolID)
		return r.inner.Handle(protocolID, handler, opts)
	}

	if r.isExcluded(protocolID) {
		logger.Debug("直接注册排除协议", "protocolID", protocolID)
		return r.inner.Handle(protocolID, handler, opts)
	}

	if r.protocolOptions(protocolID).SkipDecoration {
		logger.Debug("协议配置跳过门禁，直接注册", "protocolID", protocolID)
		return r.inner.Handle(protocolID, handler, opts)
	}

	r.mu.Lock()
	r.handlers[protocolID] = handler
	r.mu.Unlock()

	wrapped := r.wrapHandler(protocolID, handler)
	if err := r.inner.Handle(protocolID, wrapped, opts); err != nil {
		// 底层注册失败时回滚处理器记录；
		// 配置记录保留，允许在注册前单独设置
		r.mu.Lock()
		delete(r.handlers, protocolID)
		r.mu.Unlock()
		return err
	}

	logger.Debug("注册装饰协议处理器", "protocolID", protocolID)
	return nil
}

// Unhandle 注销协议处理器
//
// 本地处理器和配置记录的清理是幂等的；
// 底层注册表的删除结果原样返回。
func (r *Registrar) Unhandle(protocolID types.ProtocolID) error {
	r.mu.Lock()
	delete(r.handlers, protocolID)
	delete(r.options, protocolID)
	r.mu.Unlock()

	logger.Debug("注销协议处理器", "protocolID", protocolID)
	return r.inner.Unhandle(protocolID)
}

// SetProtocolOptions 设置协议的中间件配置
//
// 对之后的 Handle 调用生效；已注册协议的包装处理器
// 在注册时捕获配置，不受影响。
func (r *Registrar) SetProtocolOptions(protocolID types.ProtocolID, opts types.ProtocolOptions) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.options[protocolID] = opts
}

// protocolOptions 返回协议的有效配置
func (r *Registrar) protocolOptions(protocolID types.ProtocolID) types.ProtocolOptions {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if po, ok := r.options[protocolID]; ok {
		return po
	}
	return r.defaults
}

// isExcluded 检查协议是否在中间件的排除列表中
func (r *Registrar) isExcluded(protocolID types.ProtocolID) bool {
	for _, excluded := range r.middleware.Exclude() {
		if excluded == protocolID {
			return true
		}
	}
	return false
}

// ============================================================================
//                              生命周期
// ============================================================================

// Start 启动中间件并进入 started 状态
//
// 已启动时为幂等空操作。中间件启动失败时保持 stopped，
// 错误原样返回，调用方可重试。
func (r *Registrar) Start(ctx context.Context) error {
	r.lifecycleMu.Lock()
	defer r.lifecycleMu.Unlock()

	if r.started {
		return nil
	}
	if err := r.middleware.Start(ctx); err != nil {
		return err
	}
	r.started = true

	logger.Info("装饰注册表已启动")
	return nil
}

// Stop 停止中间件并回到 stopped 状态
//
// 已停止时为幂等空操作。中间件停止失败时保持 started，
// 错误原样返回。
func (r *Registrar) Stop(ctx context.Context) error {
	r.lifecycleMu.Lock()
	defer r.lifecycleMu.Unlock()

	if !r.started {
		return nil
	}
	if err := r.middleware.Stop(ctx); err != nil {
		return err
	}
	r.started = false

	logger.Info("装饰注册表已停止")
	return nil
}

// IsStarted 报告当前生命周期状态
func (r *Registrar) IsStarted() bool {
	r.lifecycleMu.Lock()
	defer r.lifecycleMu.Unlock()
	return r.started
}

// ============================================================================
//                              纯委托操作
// ============================================================================

// Protocols 返回底层注册表的协议列表
func (r *Registrar) Protocols() []types.ProtocolID {
	return r.inner.Protocols()
}

// GetHandler 获取底层注册表中的协议处理器
func (r *Registrar) GetHandler(protocolID types.ProtocolID) (pkgif.StreamHandler, error) {
	return r.inner.GetHandler(protocolID)
}

// Register 为协议注册拓扑订阅
func (r *Registrar) Register(protocolID types.ProtocolID, topology pkgif.Topology) (string, error) {
	return r.inner.Register(protocolID, topology)
}

// Unregister 按订阅 ID 移除拓扑订阅
func (r *Registrar) Unregister(id string) error {
	return r.inner.Unregister(id)
}

// GetTopologies 返回协议的所有拓扑订阅者
func (r *Registrar) GetTopologies(protocolID types.ProtocolID) []pkgif.Topology {
	return r.inner.GetTopologies(protocolID)
}
