package middleware

import (
	"context"
	"fmt"

	pkgif "github.com/dep2p/go-middleware-registrar/pkg/interfaces"
	"github.com/dep2p/go-middleware-registrar/pkg/types"
)

// wrapHandler 构造包装处理器
//
// 每条入站流在独立 goroutine 中执行装饰管线，
// 底层注册表的同步分发路径不会被中间件协商阻塞。
func (r *Registrar) wrapHandler(protocolID types.ProtocolID, handler pkgif.StreamHandler) pkgif.StreamHandler {
	return func(stream pkgif.Stream) {
		go r.dispatch(protocolID, handler, stream)
	}
}

// dispatch 执行装饰管线
//
// 该 goroutine 的结果没有调用方观察，任何从管线逃逸的
// 错误都在此处理：门禁失败中止连接，处理器 panic 重置流。
func (r *Registrar) dispatch(protocolID types.ProtocolID, handler pkgif.StreamHandler, stream pkgif.Stream) {
	conn := stream.Conn()
	if conn == nil {
		logger.Error("入站流缺少底层连接，无法执行门禁",
			"protocolID", protocolID, "err", ErrNoConnectionID)
		decorationsTotal.WithLabelValues(outcomeMissingConnID).Inc()
		_ = stream.Reset()
		return
	}

	connID := conn.ID()
	if connID == "" {
		logger.Error("连接未提供标识符，无法执行门禁",
			"protocolID", protocolID, "remotePeer", conn.RemotePeer(), "err", ErrNoConnectionID)
		decorationsTotal.WithLabelValues(outcomeMissingConnID).Inc()
		_ = stream.Reset()
		return
	}

	if r.middleware.IsDecorated(connID) {
		// 连接已通过门禁，避免对同连接上的每条流重复协商
		decorationsTotal.WithLabelValues(outcomeAlreadyDecorated).Inc()
		r.invokeHandler(protocolID, handler, stream)
		return
	}

	// 超时策略由中间件实现自行决定
	ok, err := r.middleware.Decorate(context.Background(), connID)
	if err != nil {
		decorationsTotal.WithLabelValues(outcomeError).Inc()
		r.abortConnection(conn, protocolID,
			fmt.Errorf("middleware: decorate connection %s for protocol %s: %w", connID, protocolID, err))
		return
	}
	if !ok {
		decorationsTotal.WithLabelValues(outcomeRefused).Inc()
		r.abortConnection(conn, protocolID,
			fmt.Errorf("%w: connection %s, protocol %s", ErrDecorationRefused, connID, protocolID))
		return
	}

	decorationsTotal.WithLabelValues(outcomeDecorated).Inc()
	logger.Debug("连接通过门禁", "connID", connID, "protocolID", protocolID)
	r.invokeHandler(protocolID, handler, stream)
}

// invokeHandler 调用原始处理器
//
// 处理器 panic 只中止当前流，连接保持可用。
func (r *Registrar) invokeHandler(protocolID types.ProtocolID, handler pkgif.StreamHandler, stream pkgif.Stream) {
	defer func() {
		if rec := recover(); rec != nil {
			handlerPanicsTotal.Inc()
			logger.Warn("协议处理器 panic，重置流",
				"protocolID", protocolID, "panic", rec)
			_ = stream.Reset()
		}
	}()

	handler(stream)
}

// abortConnection 中止整条连接（fail-closed）
//
// 门禁失败时原始处理器不会执行，流不单独重置，
// 随连接一并拆除。
func (r *Registrar) abortConnection(conn pkgif.Connection, protocolID types.ProtocolID, err error) {
	logger.Warn("连接门禁失败，中止连接",
		"connID", conn.ID(), "protocolID", protocolID, "err", err)

	if cerr := conn.CloseWithError(err); cerr != nil {
		logger.Error("中止连接失败", "connID", conn.ID(), "err", cerr)
	}
}
