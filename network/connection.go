package network

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// PeerID uniquely identifies a connected spectator
type PeerID uint32

// Peer is one websocket spectator with its own bounded send queue
type Peer struct {
	ID   PeerID
	Addr string

	LastSeen atomic.Int64 // UnixNano of last pong or read
	Dropped  atomic.Uint64

	conn   *websocket.Conn
	cfg    *Config
	sendCh chan []byte

	closeCh   chan struct{}
	closeOnce sync.Once
}

func newPeer(id PeerID, conn *websocket.Conn, cfg *Config) *Peer {
	p := &Peer{
		ID:      id,
		Addr:    conn.RemoteAddr().String(),
		conn:    conn,
		cfg:     cfg,
		sendCh:  make(chan []byte, cfg.SendQueueSize),
		closeCh: make(chan struct{}),
	}
	p.LastSeen.Store(time.Now().UnixNano())
	return p
}

// Send queues an encoded frame, returning false if the peer is closed or its queue is full
func (p *Peer) Send(data []byte) bool {
	select {
	case <-p.closeCh:
		return false
	default:
	}

	select {
	case p.sendCh <- data:
		return true
	default:
		p.Dropped.Add(1)
		return false
	}
}

// Close tears the connection down once
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		p.conn.Close()
	})
}

// Done is closed when the peer shuts down
func (p *Peer) Done() <-chan struct{} { return p.closeCh }

// readLoop drains inbound frames so control messages are processed
func (p *Peer) readLoop() {
	defer p.Close()

	p.conn.SetReadLimit(p.cfg.ReadLimit)
	_ = p.conn.SetReadDeadline(time.Now().Add(p.cfg.PongTimeout))
	p.conn.SetPongHandler(func(string) error {
		p.LastSeen.Store(time.Now().UnixNano())
		return p.conn.SetReadDeadline(time.Now().Add(p.cfg.PongTimeout))
	})

	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			return
		}
		p.LastSeen.Store(time.Now().UnixNano())
	}
}

// writeLoop sends queued frames and keepalive pings
func (p *Peer) writeLoop() {
	defer p.Close()

	ticker := time.NewTicker(p.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.closeCh:
			return
		case data := <-p.sendCh:
			_ = p.conn.SetWriteDeadline(time.Now().Add(p.cfg.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = p.conn.SetWriteDeadline(time.Now().Add(p.cfg.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// PeerManager tracks connected spectators
type PeerManager struct {
	mu       sync.RWMutex
	peers    map[PeerID]*Peer
	nextID   atomic.Uint32
	maxPeers int
}

func NewPeerManager(maxPeers int) *PeerManager {
	return &PeerManager{
		peers:    make(map[PeerID]*Peer),
		maxPeers: maxPeers,
	}
}

// nextPeerID reserves an id for a new connection
func (pm *PeerManager) nextPeerID() PeerID {
	return PeerID(pm.nextID.Add(1))
}

// Add registers p, returning false when the peer limit is reached
func (pm *PeerManager) Add(p *Peer) bool {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if pm.maxPeers > 0 && len(pm.peers) >= pm.maxPeers {
		return false
	}
	pm.peers[p.ID] = p
	return true
}

// Remove forgets the peer with the given id
func (pm *PeerManager) Remove(id PeerID) {
	pm.mu.Lock()
	delete(pm.peers, id)
	pm.mu.Unlock()
}

// Broadcast queues data on every peer, returning how many accepted it
func (pm *PeerManager) Broadcast(data []byte) int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	sent := 0
	for _, p := range pm.peers {
		if p.Send(data) {
			sent++
		}
	}
	return sent
}

// Count returns the number of connected peers
func (pm *PeerManager) Count() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return len(pm.peers)
}

// CloseAll disconnects every peer
func (pm *PeerManager) CloseAll() {
	pm.mu.Lock()
	peers := pm.peers
	pm.peers = make(map[PeerID]*Peer)
	pm.mu.Unlock()

	for _, p := range peers {
		p.Close()
	}
}
