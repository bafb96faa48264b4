package network

import "time"

// Config holds spectator stream settings
type Config struct {
	// Address to bind, host:port
	Address string
	// Path of the websocket endpoint
	Path string

	// Connection limits
	MaxPeers  int
	ReadLimit int64

	// Timing
	WriteTimeout time.Duration
	PongTimeout  time.Duration
	PingInterval time.Duration

	// Frames buffered per peer before new ones are dropped
	SendQueueSize int
}

// DefaultConfig returns defaults suitable for a local spectator
func DefaultConfig() *Config {
	return &Config{
		Address:       "127.0.0.1:7777",
		Path:          "/ws",
		MaxPeers:      16,
		ReadLimit:     1 << 20,
		WriteTimeout:  10 * time.Second,
		PongTimeout:   60 * time.Second,
		PingInterval:  25 * time.Second,
		SendQueueSize: 32,
	}
}
