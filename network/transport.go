package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ErrAlreadyRunning is returned when Start is called on a running server
var ErrAlreadyRunning = errors.New("spectator server already running")

// Transport owns the HTTP listener and upgrades spectator connections
type Transport struct {
	cfg      *Config
	peers    *PeerManager
	upgrader websocket.Upgrader
	onJoin   func(*Peer)

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
	wg       sync.WaitGroup
}

// NewTransport creates a stopped transport
func NewTransport(cfg *Config, peers *PeerManager) *Transport {
	return &Transport{
		cfg:   cfg,
		peers: peers,
		upgrader: websocket.Upgrader{
			// Spectators are read-only; any origin may watch
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns the websocket endpoint handler
func (t *Transport) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(t.cfg.Path, t.serveWS)
	return mux
}

func (t *Transport) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := t.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("spectator: upgrade: %v", err)
		return
	}

	p := newPeer(t.peers.nextPeerID(), conn, t.cfg)
	if !t.peers.Add(p) {
		log.Printf("spectator: rejecting %s, peer limit reached", p.Addr)
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "full"))
		conn.Close()
		return
	}
	log.Printf("spectator: peer %d connected from %s", p.ID, p.Addr)

	if t.onJoin != nil {
		t.onJoin(p)
	}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		p.writeLoop()
	}()

	p.readLoop()
	t.peers.Remove(p.ID)
	log.Printf("spectator: peer %d disconnected, %d frames dropped", p.ID, p.Dropped.Load())
}

// Start binds the configured address and serves in the background
func (t *Transport) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.server != nil {
		return ErrAlreadyRunning
	}

	ln, err := net.Listen("tcp", t.cfg.Address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", t.cfg.Address, err)
	}

	srv := &http.Server{Handler: t.Handler()}
	t.server = srv
	t.listener = ln

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectator: serve: %v", err)
		}
	}()
	return nil
}

// Addr returns the bound address, or empty when stopped
func (t *Transport) Addr() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.listener == nil {
		return ""
	}
	return t.listener.Addr().String()
}

// Stop closes the listener and every peer, then waits for goroutines
func (t *Transport) Stop(ctx context.Context) error {
	t.mu.Lock()
	srv := t.server
	t.server = nil
	t.listener = nil
	t.mu.Unlock()

	if srv == nil {
		return nil
	}

	err := srv.Shutdown(ctx)
	t.peers.CloseAll()
	t.wg.Wait()
	return err
}

// IsRunning reports whether the listener is open
func (t *Transport) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.server != nil
}
