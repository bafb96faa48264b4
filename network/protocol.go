package network

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/bounce-arena/game"
)

// MessageType identifies a spectator frame
type MessageType uint8

const (
	MsgHello    MessageType = iota + 1 // sent once on connect
	MsgSnapshot                        // one per simulation frame
)

func (t MessageType) String() string {
	switch t {
	case MsgHello:
		return "hello"
	case MsgSnapshot:
		return "snapshot"
	default:
		return fmt.Sprintf("message(%d)", uint8(t))
	}
}

// Message is the msgpack envelope carried in each binary websocket frame
type Message struct {
	Type     MessageType    `msgpack:"t"`
	Seq      uint32         `msgpack:"seq"`
	PeerID   PeerID         `msgpack:"peer,omitempty"`
	Snapshot *game.Snapshot `msgpack:"snap,omitempty"`
}

// Encode serializes the message
func (m *Message) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode %v: %w", m.Type, err)
	}
	return data, nil
}

// Decode parses a message produced by Encode
func Decode(data []byte) (*Message, error) {
	var m Message
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}
	return &m, nil
}
