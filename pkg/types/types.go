// Package types 定义 go-middleware-registrar 公共基础类型
package types

// ProtocolID 协议标识符类型
//
// 命名流子协议的字符串键，例如 "/chat/1.0.0"。
type ProtocolID string

// String 返回协议 ID 字符串
func (p ProtocolID) String() string {
	return string(p)
}

// PeerID 节点标识符类型
type PeerID string

// String 返回节点 ID 字符串
func (p PeerID) String() string {
	return string(p)
}

// ProtocolOptions 单个协议的中间件配置
//
// 在注册协议处理器之前设置。注册之后再修改
// 不影响已安装的包装处理器（闭包在注册时捕获配置）。
type ProtocolOptions struct {
	// SkipDecoration 跳过该协议的门禁管线，直接注册原始处理器
	SkipDecoration bool

	// Extra 扩展配置，由具体中间件实现解释
	//
	// 各中间件实现应在自身文档中列出可识别的键。
	Extra map[string]any
}

// MiddlewareOptions 装饰注册表装配配置
type MiddlewareOptions struct {
	// Defaults 未单独配置的协议使用的默认中间件配置
	Defaults ProtocolOptions

	// Protocols 按协议覆盖的中间件配置
	Protocols map[ProtocolID]ProtocolOptions
}
