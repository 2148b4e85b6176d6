package middleware

import (
	"context"
	"sync"

	pkgif "github.com/dep2p/go-middleware-registrar/pkg/interfaces"
	"github.com/dep2p/go-middleware-registrar/pkg/types"
)

// ============================================================================
//                              底层注册表替身
// ============================================================================

// mockRegistrar 计数型底层注册表
type mockRegistrar struct {
	mu sync.Mutex

	handlers   map[types.ProtocolID]pkgif.StreamHandler
	handleOpts map[types.ProtocolID]*pkgif.HandleOptions

	handleCalls        int
	unhandleCalls      int
	getHandlerCalls    int
	protocolsCalls     int
	registerCalls      int
	unregisterCalls    int
	getTopologiesCalls int

	lastUnhandled    types.ProtocolID
	lastRegistered   types.ProtocolID
	lastTopology     pkgif.Topology
	lastUnregistered string

	protocolsResult  []types.ProtocolID
	registerResult   string
	topologiesResult []pkgif.Topology

	handleErr     error
	unhandleErr   error
	getHandlerErr error
	registerErr   error
	unregisterErr error
}

var _ pkgif.Registrar = (*mockRegistrar)(nil)

func newMockRegistrar() *mockRegistrar {
	return &mockRegistrar{
		handlers:       make(map[types.ProtocolID]pkgif.StreamHandler),
		handleOpts:     make(map[types.ProtocolID]*pkgif.HandleOptions),
		registerResult: "sub-1",
	}
}

func (m *mockRegistrar) Protocols() []types.ProtocolID {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.protocolsCalls++
	return m.protocolsResult
}

func (m *mockRegistrar) Handle(protocolID types.ProtocolID, handler pkgif.StreamHandler, opts *pkgif.HandleOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handleCalls++
	if m.handleErr != nil {
		return m.handleErr
	}
	m.handlers[protocolID] = handler
	m.handleOpts[protocolID] = opts
	return nil
}

func (m *mockRegistrar) Unhandle(protocolID types.ProtocolID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unhandleCalls++
	m.lastUnhandled = protocolID
	if m.unhandleErr != nil {
		return m.unhandleErr
	}
	delete(m.handlers, protocolID)
	delete(m.handleOpts, protocolID)
	return nil
}

func (m *mockRegistrar) GetHandler(protocolID types.ProtocolID) (pkgif.StreamHandler, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getHandlerCalls++
	if m.getHandlerErr != nil {
		return nil, m.getHandlerErr
	}
	return m.handlers[protocolID], nil
}

func (m *mockRegistrar) Register(protocolID types.ProtocolID, topology pkgif.Topology) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registerCalls++
	m.lastRegistered = protocolID
	m.lastTopology = topology
	if m.registerErr != nil {
		return "", m.registerErr
	}
	return m.registerResult, nil
}

func (m *mockRegistrar) Unregister(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unregisterCalls++
	m.lastUnregistered = id
	return m.unregisterErr
}

func (m *mockRegistrar) GetTopologies(protocolID types.ProtocolID) []pkgif.Topology {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getTopologiesCalls++
	return m.topologiesResult
}

// registeredHandler 返回底层记录的处理器
func (m *mockRegistrar) registeredHandler(protocolID types.ProtocolID) pkgif.StreamHandler {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handlers[protocolID]
}

// ============================================================================
//                              中间件替身
// ============================================================================

// mockMiddleware 计数型门禁中间件
type mockMiddleware struct {
	mu sync.Mutex

	started    bool
	startCalls int
	stopCalls  int
	startErr   error
	stopErr    error

	protocol types.ProtocolID
	exclude  []types.ProtocolID

	decorated        map[string]bool
	decorateResult   bool
	decorateErr      error
	decorateCalls    int
	isDecoratedCalls int
}

var _ pkgif.Middleware = (*mockMiddleware)(nil)

func newMockMiddleware() *mockMiddleware {
	return &mockMiddleware{
		decorated:      make(map[string]bool),
		decorateResult: true,
	}
}

func (m *mockMiddleware) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startCalls++
	if m.startErr != nil {
		return m.startErr
	}
	m.started = true
	return nil
}

func (m *mockMiddleware) Stop(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopCalls++
	if m.stopErr != nil {
		return m.stopErr
	}
	m.started = false
	return nil
}

func (m *mockMiddleware) IsStarted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.started
}

func (m *mockMiddleware) Decorate(ctx context.Context, connID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decorateCalls++
	if m.decorateErr != nil {
		return false, m.decorateErr
	}
	if m.decorateResult {
		m.decorated[connID] = true
	}
	return m.decorateResult, nil
}

func (m *mockMiddleware) IsDecorated(connID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isDecoratedCalls++
	return m.decorated[connID]
}

func (m *mockMiddleware) Protocol() types.ProtocolID {
	return m.protocol
}

func (m *mockMiddleware) Exclude() []types.ProtocolID {
	return m.exclude
}

// counts 返回当前调用计数快照
func (m *mockMiddleware) counts() (isDecorated, decorate int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isDecoratedCalls, m.decorateCalls
}

// ============================================================================
//                              连接与流替身
// ============================================================================

// mockConn 连接替身
type mockConn struct {
	mu sync.Mutex

	id     string
	remote types.PeerID

	closed              bool
	closeCalls          int
	closeWithErrorCalls int
	lastAbortErr        error
}

var _ pkgif.Connection = (*mockConn)(nil)

func newMockConn(id string) *mockConn {
	return &mockConn{id: id, remote: "peer-" + types.PeerID(id)}
}

func (c *mockConn) ID() string {
	return c.id
}

func (c *mockConn) RemotePeer() types.PeerID {
	return c.remote
}

func (c *mockConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeCalls++
	c.closed = true
	return nil
}

func (c *mockConn) CloseWithError(err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeWithErrorCalls++
	c.lastAbortErr = err
	c.closed = true
	return nil
}

func (c *mockConn) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// abortState 返回中止计数与原因
func (c *mockConn) abortState() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeWithErrorCalls, c.lastAbortErr
}

// mockStream 流替身
type mockStream struct {
	mu sync.Mutex

	conn       pkgif.Connection
	protocolID types.ProtocolID
	resetCalls int
}

var _ pkgif.Stream = (*mockStream)(nil)

func newMockStream(conn pkgif.Connection, protocolID types.ProtocolID) *mockStream {
	return &mockStream{conn: conn, protocolID: protocolID}
}

func (s *mockStream) Read(p []byte) (int, error) { return 0, nil }

func (s *mockStream) Write(p []byte) (int, error) { return len(p), nil }

func (s *mockStream) Close() error { return nil }

func (s *mockStream) Protocol() types.ProtocolID {
	return s.protocolID
}

func (s *mockStream) Conn() pkgif.Connection {
	return s.conn
}

func (s *mockStream) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetCalls++
	return nil
}

func (s *mockStream) resetCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resetCalls
}
