// Package interfaces 定义 go-middleware-registrar 公共接口
//
// 本文件定义 Stream 与 Connection 接口，只覆盖注册表
// 和装饰管线所需的最小能力子集。
package interfaces

import (
	"io"

	"github.com/dep2p/go-middleware-registrar/pkg/types"
)

// Connection 定义连接接口
type Connection interface {
	// ID 返回连接标识符
	//
	// 注意：部分传输实现可能返回空字符串。
	// 调用者必须检查返回值，不能假定标识符存在。
	ID() string

	// RemotePeer 返回远端节点 ID
	RemotePeer() types.PeerID

	// Close 关闭连接
	Close() error

	// CloseWithError 以错误原因中止连接
	//
	// 门禁失败时的 fail-closed 拆除路径。
	// 错误原因由传输层决定是否传递给对端。
	CloseWithError(err error) error

	// IsClosed 检查连接是否已关闭
	IsClosed() bool
}

// Stream 定义流接口
type Stream interface {
	io.Reader
	io.Writer
	io.Closer

	// Protocol 返回流使用的协议 ID
	Protocol() types.ProtocolID

	// Conn 返回底层连接
	//
	// 注意：某些合成流（如测试替身）可能返回 nil，
	// 调用者必须检查返回值。
	Conn() Connection

	// Reset 重置流（异常关闭）
	//
	// 只拆除当前流，底层连接保持可用。
	Reset() error
}

// StreamHandler 流处理函数类型
//
// 入站流完成协议协商后回调。
type StreamHandler func(Stream)
