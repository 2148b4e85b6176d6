// Package registrar 实现内存协议注册表
//
// # 核心功能
//
// 1. 处理器注册
//   - 管理协议 ID 与处理器记录的映射
//   - 同步注册到 multistream-select muxer（入站协商）
//   - 线程安全的注册/注销
//
// 2. 拓扑订阅
//   - 按协议订阅节点上下线事件
//   - 订阅 ID 使用 UUID，按 ID 移除
//   - 节点级连接去重：首条连接触发 OnConnect，
//     最后一条连接断开触发 OnDisconnect
//
// 3. 入站分发
//   - HandleInbound 对入站流执行协议协商并调用对应处理器
//
// 本包实现 interfaces.Registrar 契约，可直接使用，
// 也可被 internal/core/middleware 的装饰注册表包装。
package registrar
