package mwregistrar

import (
	"context"

	"github.com/dep2p/go-middleware-registrar/internal/core/middleware"
	"github.com/dep2p/go-middleware-registrar/internal/core/registrar"
	pkgif "github.com/dep2p/go-middleware-registrar/pkg/interfaces"
	"github.com/dep2p/go-middleware-registrar/pkg/types"
)

// Version 当前版本
const Version = "v0.1.0"

// 类型别名，方便调用方少导入一个包
type (
	// Registrar 协议注册表契约
	Registrar = pkgif.Registrar

	// MiddlewareRegistrar 装饰注册表契约
	MiddlewareRegistrar = pkgif.MiddlewareRegistrar

	// Middleware 连接门禁中间件契约
	Middleware = pkgif.Middleware

	// Topology 拓扑订阅者契约
	Topology = pkgif.Topology

	// StreamHandler 流处理函数类型
	StreamHandler = pkgif.StreamHandler

	// ProtocolID 协议标识符类型
	ProtocolID = types.ProtocolID
)

// config 装配配置
type config struct {
	inner pkgif.Registrar
	opts  middleware.Options
}

// Option 装配选项
type Option func(*config)

// WithRegistrar 指定被包装的底层注册表
//
// 不指定时使用内置的内存注册表。
func WithRegistrar(r pkgif.Registrar) Option {
	return func(c *config) {
		c.inner = r
	}
}

// WithDefaultProtocolOptions 设置所有协议的默认中间件配置
func WithDefaultProtocolOptions(po types.ProtocolOptions) Option {
	return func(c *config) {
		c.opts.Defaults = po
	}
}

// WithProtocolOptions 设置单个协议的中间件配置
//
// 与注册后调用 SetProtocolOptions 不同，装配时设置的配置
// 对首次 Handle 即生效。
func WithProtocolOptions(protocolID types.ProtocolID, po types.ProtocolOptions) Option {
	return func(c *config) {
		c.opts.Protocols[protocolID] = po
	}
}

// New 创建装饰注册表
//
// 将底层注册表与中间件装配为 Registrar 契约的直接替代品。
func New(mw pkgif.Middleware, opts ...Option) (pkgif.MiddlewareRegistrar, error) {
	c := &config{
		opts: middleware.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.inner == nil {
		c.inner = registrar.NewRegistry()
	}

	return middleware.New(middleware.Components{
		Registrar:  c.inner,
		Middleware: mw,
	}, c.opts)
}

// Start 创建并启动装饰注册表
func Start(ctx context.Context, mw pkgif.Middleware, opts ...Option) (pkgif.MiddlewareRegistrar, error) {
	reg, err := New(mw, opts...)
	if err != nil {
		return nil, err
	}
	if err := reg.Start(ctx); err != nil {
		return nil, err
	}
	return reg, nil
}
