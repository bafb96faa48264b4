package network

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/bounce-arena/game"
)

// Spectator streams game snapshots to websocket clients
type Spectator struct {
	cfg       *Config
	peers     *PeerManager
	transport *Transport
	seq       atomic.Uint32
}

// NewSpectator creates a stopped spectator stream
func NewSpectator(cfg *Config) *Spectator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	peers := NewPeerManager(cfg.MaxPeers)
	s := &Spectator{
		cfg:       cfg,
		peers:     peers,
		transport: NewTransport(cfg, peers),
	}
	s.transport.onJoin = s.greet
	return s
}

func (s *Spectator) greet(p *Peer) {
	data, err := (&Message{Type: MsgHello, Seq: s.seq.Load(), PeerID: p.ID}).Encode()
	if err != nil {
		log.Printf("spectator: %v", err)
		return
	}
	p.Send(data)
}

// Start begins accepting spectators
func (s *Spectator) Start() error { return s.transport.Start() }

// Stop disconnects everyone and closes the listener
func (s *Spectator) Stop(ctx context.Context) error { return s.transport.Stop(ctx) }

// Addr returns the bound listen address
func (s *Spectator) Addr() string { return s.transport.Addr() }

// Transport exposes the HTTP side, for mounting under a test server
func (s *Spectator) Transport() *Transport { return s.transport }

// Publish encodes one snapshot and queues it on every peer; slow peers drop it
func (s *Spectator) Publish(snap game.Snapshot) (int, error) {
	if s.peers.Count() == 0 {
		return 0, nil
	}
	msg := &Message{Type: MsgSnapshot, Seq: s.seq.Add(1), Snapshot: &snap}
	data, err := msg.Encode()
	if err != nil {
		return 0, err
	}
	return s.peers.Broadcast(data), nil
}

// ClientCount returns connected spectators
func (s *Spectator) ClientCount() int { return s.peers.Count() }
