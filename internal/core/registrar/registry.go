package registrar

import (
	"fmt"
	"io"
	"sync"

	mss "github.com/multiformats/go-multistream"

	pkgif "github.com/dep2p/go-middleware-registrar/pkg/interfaces"
	"github.com/dep2p/go-middleware-registrar/pkg/lib/log"
	"github.com/dep2p/go-middleware-registrar/pkg/types"
)

var logger = log.Logger("core/registrar")

// handlerRecord 处理器记录
type handlerRecord struct {
	handler pkgif.StreamHandler
	// options 注册时携带的选项，流数限制由传输层执行
	options pkgif.HandleOptions
}

// Registry 内存协议注册表
//
// 处理器同时注册到 multistream-select muxer，
// 入站流经 HandleInbound 协商后分发到对应处理器。
type Registry struct {
	mu       sync.RWMutex
	handlers map[types.ProtocolID]*handlerRecord
	mux      *mss.MultistreamMuxer[string]

	// 拓扑订阅状态，见 topology.go
	subs      map[string]*topologySub
	peerConns map[types.PeerID]int
}

var _ pkgif.Registrar = (*Registry)(nil)

// NewRegistry 创建内存注册表
func NewRegistry() *Registry {
	return &Registry{
		handlers:  make(map[types.ProtocolID]*handlerRecord),
		mux:       mss.NewMultistreamMuxer[string](),
		subs:      make(map[string]*topologySub),
		peerConns: make(map[types.PeerID]int),
	}
}

// Handle 注册协议处理器
//
// 同时注册到 multistream-select muxer，使入站协商能识别此协议。
func (r *Registry) Handle(protocolID types.ProtocolID, handler pkgif.StreamHandler, opts *pkgif.HandleOptions) error {
	if protocolID == "" {
		return ErrInvalidProtocolID
	}
	if handler == nil {
		return ErrNilHandler
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[protocolID]; exists {
		return ErrDuplicateProtocol
	}

	record := &handlerRecord{handler: handler}
	if opts != nil {
		record.options = *opts
	}
	r.handlers[protocolID] = record

	r.mux.AddHandler(string(protocolID), func(proto string, rwc io.ReadWriteCloser) error {
		stream, ok := rwc.(pkgif.Stream)
		if !ok {
			return fmt.Errorf("registrar: unexpected stream type for protocol %s", proto)
		}
		handler(stream)
		return nil
	})

	logger.Debug("注册协议处理器", "protocolID", protocolID)
	return nil
}

// Unhandle 注销协议处理器
func (r *Registry) Unhandle(protocolID types.ProtocolID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[protocolID]; !exists {
		return ErrProtocolNotRegistered
	}

	delete(r.handlers, protocolID)
	r.mux.RemoveHandler(string(protocolID))

	logger.Debug("注销协议处理器", "protocolID", protocolID)
	return nil
}

// GetHandler 获取协议处理器
func (r *Registry) GetHandler(protocolID types.ProtocolID) (pkgif.StreamHandler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.handlers[protocolID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProtocolNotRegistered, protocolID)
	}
	return record.handler, nil
}

// Protocols 返回所有已注册的协议
func (r *Registry) Protocols() []types.ProtocolID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	protocols := make([]types.ProtocolID, 0, len(r.handlers))
	for id := range r.handlers {
		protocols = append(protocols, id)
	}
	return protocols
}

// HandleInbound 对入站流执行协议协商并分发
//
// 底层传输在接受新流后调用。协商失败或处理器返回的
// 错误原样返回，由调用方决定如何拆除流。
func (r *Registry) HandleInbound(stream pkgif.Stream) error {
	return r.mux.Handle(stream)
}
