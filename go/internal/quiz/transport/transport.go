package transport

import "context"

// Ack statuses returned by the server (or synthesized locally).
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Ack is the acknowledgement paired with an emitted intent. Room fields are
// populated on create/join acks.
type Ack struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	RoomID   string `json:"roomId,omitempty"`
	RoomCode string `json:"roomCode,omitempty"`
}

// OK reports whether the intent was accepted.
func (a Ack) OK() bool {
	return a.Status == StatusOK
}

// ErrorAck builds a locally synthesized rejection.
func ErrorAck(message string) Ack {
	return Ack{Status: StatusError, Message: message}
}

// AckFunc receives the acknowledgement for an emitted intent.
type AckFunc func(ack Ack)

// Handler receives the raw payload of a named server event.
type Handler func(data []byte)

// Transport is the bidirectional channel to the game server. Emits carry an
// optional ack callback; Emit without a live connection must resolve the ack
// with a synthetic "not connected" error instead of failing. Handlers and ack
// callbacks may be invoked from the transport's own goroutines.
type Transport interface {
	// Connect establishes the connection using the given credential.
	Connect(ctx context.Context, credential string) error
	// Disconnect tears down the connection. Safe to call when not connected.
	Disconnect() error
	// Emit sends an intent. ack may be nil when no acknowledgement is needed.
	Emit(event string, payload any, ack AckFunc)
	// On subscribes a handler to a named server event, replacing any prior
	// handler for the same name. Subscriptions survive reconnects.
	On(event string, handler Handler)
	// OnConnect registers the handler invoked with a fresh connection id each
	// time a connection is established.
	OnConnect(handler func(connectionID string))
	// OnDisconnect registers the handler invoked when the connection drops.
	OnDisconnect(handler func(reason string))
}
