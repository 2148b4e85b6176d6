// Package middleware 实现装饰注册表
//
// # 核心功能
//
// 1. 条件装饰 (Handle)
//   - 中间件自身的协商协议直接注册，避免递归装饰握手处理器
//   - 排除列表中的协议直接注册
//   - 其余协议安装包装处理器，入站流先过门禁再到应用处理器
//
// 2. 装饰管线 (dispatch)
//   - 每条入站流在独立 goroutine 中执行，注册表的同步分发
//     路径不会被中间件协商阻塞
//   - 已装饰的连接直接放行；未装饰的连接先执行 Decorate
//   - 门禁失败中止整条连接（fail-closed）；
//     处理器 panic 只重置当前流，连接保持可用
//
// 3. 生命周期
//   - Start/Stop 保护中间件的启动与停止，重复调用幂等
//
// 4. 纯委托
//   - Protocols / GetHandler / Register / Unregister / GetTopologies
//     原样转发到底层注册表，参数、结果和错误均不做转换
//
// # 并发模型
//
// "查询装饰状态，再执行装饰"是一个无原子性保证的 check-then-act
// 序列：同一连接上并发到达的两条流可能都观察到未装饰并各自调用
// Decorate。按 Middleware 契约，实现必须保证对同一连接的并发
// Decorate 调用安全，本包不跨流协调。
package middleware
