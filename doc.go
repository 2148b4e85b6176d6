// Package mwregistrar 提供带连接门禁的装饰协议注册表
//
// 本库包装一个协议注册表（协议 → 流处理器/拓扑订阅），在每条
// 入站流到达应用处理器之前透明插入可插拔的中间件门禁（如认证），
// 应用无需修改各个处理器或底层网络栈。
//
// # 核心概念
//
//   - Registrar: 协议注册表契约，见 pkg/interfaces
//   - Middleware: 连接门禁中间件契约，由调用方实现
//   - 装饰: 连接成功通过中间件门禁后记录的结果，
//     每条连接至多执行一次
//
// # 快速开始
//
//	import (
//	    mwregistrar "github.com/dep2p/go-middleware-registrar"
//	)
//
//	// mw 为调用方实现的 interfaces.Middleware
//	reg, err := mwregistrar.New(mw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := reg.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer reg.Stop(ctx)
//
//	// 与普通注册表完全一致的用法，入站流自动过门禁
//	reg.Handle("/chat/1.0.0", chatHandler, nil)
//
// # 拆除语义
//
// 门禁失败（Decorate 返回 false 或出错）中止整条连接，原始
// 处理器不会执行；处理器自身 panic 只重置当前流，已通过门禁
// 的连接保持可用。
package mwregistrar
