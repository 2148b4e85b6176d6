// Package interfaces 定义 go-middleware-registrar 公共接口
//
// 本包只声明契约，不包含实现：
//
//   - Registrar: 协议注册表接口（协议 → 处理器/拓扑订阅）
//   - MiddlewareRegistrar: 装饰注册表接口（Registrar + 生命周期 + 协议配置）
//   - Middleware: 连接门禁中间件接口
//   - Topology: 拓扑订阅者接口
//   - Stream / Connection: 装饰管线所需的最小网络接口
//
// 实现位于 internal/core/registrar（内存注册表）和
// internal/core/middleware（装饰注册表）。
package interfaces
