// Package interfaces 定义 go-middleware-registrar 公共接口
//
// 本文件定义 Topology 接口，描述对节点上下线事件的订阅。
package interfaces

import (
	"github.com/dep2p/go-middleware-registrar/pkg/types"
)

// Topology 定义拓扑订阅者接口
//
// 通过 Registrar.Register 绑定到某个协议后，
// 节点上线/下线时收到回调。
type Topology interface {
	// OnConnect 节点的首条连接建立时回调
	OnConnect(peerID types.PeerID, conn Connection)

	// OnDisconnect 节点的最后一条连接断开时回调
	OnDisconnect(peerID types.PeerID)
}
