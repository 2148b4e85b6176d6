package registrar

import (
	"github.com/google/uuid"

	pkgif "github.com/dep2p/go-middleware-registrar/pkg/interfaces"
	"github.com/dep2p/go-middleware-registrar/pkg/types"
)

// topologySub 拓扑订阅条目
type topologySub struct {
	id         string
	protocolID types.ProtocolID
	topology   pkgif.Topology
}

// Register 为协议注册拓扑订阅
func (r *Registry) Register(protocolID types.ProtocolID, topology pkgif.Topology) (string, error) {
	if protocolID == "" {
		return "", ErrInvalidProtocolID
	}
	if topology == nil {
		return "", ErrNilTopology
	}

	id := uuid.NewString()

	r.mu.Lock()
	r.subs[id] = &topologySub{
		id:         id,
		protocolID: protocolID,
		topology:   topology,
	}
	r.mu.Unlock()

	logger.Debug("注册拓扑订阅", "protocolID", protocolID, "subscriptionID", id)
	return id, nil
}

// Unregister 按订阅 ID 移除拓扑订阅
func (r *Registry) Unregister(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subs[id]; !ok {
		return ErrSubscriptionNotFound
	}
	delete(r.subs, id)

	logger.Debug("移除拓扑订阅", "subscriptionID", id)
	return nil
}

// GetTopologies 返回协议的所有拓扑订阅者
func (r *Registry) GetTopologies(protocolID types.ProtocolID) []pkgif.Topology {
	r.mu.RLock()
	defer r.mu.RUnlock()

	topologies := make([]pkgif.Topology, 0)
	for _, sub := range r.subs {
		if sub.protocolID == protocolID {
			topologies = append(topologies, sub.topology)
		}
	}
	return topologies
}

// NotifyConnected 连接建立通知
//
// 连接去重：只在节点的首条连接建立时分发 OnConnect。
// 协议支持过滤由上层的节点识别信息驱动，这里按连接事件
// 向全部订阅者分发。
func (r *Registry) NotifyConnected(peerID types.PeerID, conn pkgif.Connection) {
	r.mu.Lock()
	r.peerConns[peerID]++
	first := r.peerConns[peerID] == 1

	var targets []pkgif.Topology
	if first {
		for _, sub := range r.subs {
			targets = append(targets, sub.topology)
		}
	}
	r.mu.Unlock()

	if !first {
		return
	}

	logger.Debug("节点上线", "peerID", peerID)
	for _, t := range targets {
		t.OnConnect(peerID, conn)
	}
}

// NotifyDisconnected 连接断开通知
//
// 只在节点的最后一条连接断开时分发 OnDisconnect。
func (r *Registry) NotifyDisconnected(peerID types.PeerID) {
	r.mu.Lock()
	if r.peerConns[peerID] == 0 {
		r.mu.Unlock()
		return
	}
	r.peerConns[peerID]--
	last := r.peerConns[peerID] == 0
	if last {
		delete(r.peerConns, peerID)
	}

	var targets []pkgif.Topology
	if last {
		for _, sub := range r.subs {
			targets = append(targets, sub.topology)
		}
	}
	r.mu.Unlock()

	if !last {
		return
	}

	logger.Debug("节点下线", "peerID", peerID)
	for _, t := range targets {
		t.OnDisconnect(peerID)
	}
}
