package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Config holds configuration for the websocket transport.
type Config struct {
	URL             string
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	AckTimeout      time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
}

// DefaultConfig returns default websocket transport configuration.
func DefaultConfig(url string) Config {
	return Config{
		URL:             url,
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		AckTimeout:      15 * time.Second,
		MaxMessageSize:  16 * 1024,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
}

// frame is the wire envelope. Events and acks share one frame shape; an ack
// echoes the id of the emit it answers.
type frame struct {
	Type    string          `json:"type"` // "event" or "ack"
	Event   string          `json:"event,omitempty"`
	ID      string          `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

const (
	frameEvent = "event"
	frameAck   = "ack"
)

// SocketClient is the websocket implementation of Transport. One read pump
// dispatches server events and acks; one write pump serializes outbound
// frames and keepalive pings.
type SocketClient struct {
	config Config
	clock  clockwork.Clock

	mu           sync.Mutex
	conn         *websocket.Conn
	send         chan []byte
	connClosed   chan struct{}
	connectionID string
	handlers     map[string]Handler
	pending      map[string]*pendingAck
	onConnect    func(connectionID string)
	onDisconnect func(reason string)
}

type pendingAck struct {
	ack   AckFunc
	timer clockwork.Timer
}

// NewSocketClient creates a websocket transport for the given server.
func NewSocketClient(config Config, clock clockwork.Clock) *SocketClient {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &SocketClient{
		config:   config,
		clock:    clock,
		handlers: make(map[string]Handler),
		pending:  make(map[string]*pendingAck),
	}
}

// Connect dials the server, authenticating with the given credential. A
// fresh connection id is minted per connection and announced through the
// OnConnect handler.
func (c *SocketClient) Connect(ctx context.Context, credential string) error {
	c.mu.Lock()
	if c.conn != nil {
		c.mu.Unlock()
		log.Debug().Msg("socket already connected")
		return nil
	}
	c.mu.Unlock()

	dialer := websocket.Dialer{
		ReadBufferSize:  c.config.ReadBufferSize,
		WriteBufferSize: c.config.WriteBufferSize,
	}
	header := http.Header{}
	if credential != "" {
		header.Set("Authorization", "Bearer "+credential)
	}

	conn, _, err := dialer.DialContext(ctx, c.config.URL, header)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.config.URL, err)
	}

	connectionID := uuid.New().String()

	c.mu.Lock()
	c.conn = conn
	c.send = make(chan []byte, 256)
	c.connClosed = make(chan struct{})
	c.connectionID = connectionID
	onConnect := c.onConnect
	c.mu.Unlock()

	go c.writePump(conn, c.send, c.connClosed)
	go c.readPump(conn)

	log.Info().
		Str("connection_id", connectionID).
		Str("url", c.config.URL).
		Msg("socket connected")

	if onConnect != nil {
		onConnect(connectionID)
	}
	return nil
}

// Disconnect closes the connection. Idempotent.
func (c *SocketClient) Disconnect() error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return nil
	}
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(c.config.WriteTimeout))
	return conn.Close()
}

// Emit sends an intent frame. Without a live connection the ack, if any, is
// resolved with a synthetic error and nothing is sent.
func (c *SocketClient) Emit(event string, payload any, ack AckFunc) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to marshal emit payload")
		if ack != nil {
			ack(ErrorAck("internal error"))
		}
		return
	}

	f := frame{Type: frameEvent, Event: event, Payload: data}

	c.mu.Lock()
	if c.conn == nil {
		c.mu.Unlock()
		log.Warn().Str("event", event).Msg("socket not connected, cannot emit")
		if ack != nil {
			ack(ErrorAck("not connected"))
		}
		return
	}
	if ack != nil {
		f.ID = uuid.New().String()
		id := f.ID
		c.pending[id] = &pendingAck{
			ack: ack,
			timer: c.clock.AfterFunc(c.config.AckTimeout, func() {
				c.expireAck(id, event)
			}),
		}
	}
	send := c.send
	c.mu.Unlock()

	raw, err := json.Marshal(f)
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to marshal frame")
		c.resolveAck(f.ID, ErrorAck("internal error"))
		return
	}

	select {
	case send <- raw:
	default:
		log.Warn().Str("event", event).Msg("send buffer full, dropping emit")
		c.resolveAck(f.ID, ErrorAck("send buffer full"))
	}
}

// On subscribes a handler to a named server event. Replaces any prior
// handler for the same event, so re-subscribing after a reconnect is
// idempotent.
func (c *SocketClient) On(event string, handler Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[event] = handler
}

// OnConnect registers the connection-established handler.
func (c *SocketClient) OnConnect(handler func(connectionID string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onConnect = handler
}

// OnDisconnect registers the connection-lost handler.
func (c *SocketClient) OnDisconnect(handler func(reason string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onDisconnect = handler
}

// ConnectionID returns the id of the current connection, empty when
// disconnected.
func (c *SocketClient) ConnectionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connectionID
}

func (c *SocketClient) expireAck(id, event string) {
	c.mu.Lock()
	p, ok := c.pending[id]
	if ok {
		delete(c.pending, id)
	}
	c.mu.Unlock()
	if !ok {
		return
	}
	log.Warn().Str("event", event).Str("ack_id", id).Msg("ack timed out")
	p.ack(ErrorAck("request timed out"))
}

func (c *SocketClient) resolveAck(id string, ack Ack) {
	if id == "" {
		return
	}
	c.mu.Lock()
	p, ok := c.pending[id]
	if ok {
		delete(c.pending, id)
		p.timer.Stop()
	}
	c.mu.Unlock()
	if ok {
		p.ack(ack)
	}
}

// writePump serializes outbound frames and keepalive pings for one
// connection.
func (c *SocketClient) writePump(conn *websocket.Conn, send chan []byte, closed chan struct{}) {
	ticker := time.NewTicker(c.config.PingInterval)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case <-closed:
			return
		case message := <-send:
			conn.SetWriteDeadline(time.Now().Add(c.config.WriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Error().Err(err).Msg("failed to write frame")
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(c.config.WriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Error().Err(err).Msg("failed to send ping")
				return
			}
		}
	}
}

// readPump dispatches inbound frames for one connection until it drops.
func (c *SocketClient) readPump(conn *websocket.Conn) {
	defer c.handleConnectionLost(conn)

	conn.SetReadLimit(c.config.MaxMessageSize)
	conn.SetReadDeadline(time.Now().Add(c.config.ReadTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(c.config.ReadTimeout))
		return nil
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error().Err(err).Msg("unexpected socket close")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(c.config.ReadTimeout))
		c.dispatch(message)
	}
}

func (c *SocketClient) dispatch(message []byte) {
	var f frame
	if err := json.Unmarshal(message, &f); err != nil {
		log.Error().Err(err).Msg("failed to parse inbound frame")
		return
	}

	switch f.Type {
	case frameAck:
		var ack Ack
		if err := json.Unmarshal(f.Payload, &ack); err != nil {
			log.Error().Err(err).Str("ack_id", f.ID).Msg("failed to parse ack payload")
			ack = ErrorAck("malformed ack")
		}
		c.resolveAck(f.ID, ack)

	case frameEvent:
		c.mu.Lock()
		handler := c.handlers[f.Event]
		c.mu.Unlock()
		if handler == nil {
			log.Debug().Str("event", f.Event).Msg("no handler for server event")
			return
		}
		handler(f.Payload)

	default:
		log.Debug().Str("type", f.Type).Msg("unknown frame type")
	}
}

func (c *SocketClient) handleConnectionLost(conn *websocket.Conn) {
	conn.Close()

	c.mu.Lock()
	if c.conn != conn {
		c.mu.Unlock()
		return
	}
	c.conn = nil
	c.connectionID = ""
	close(c.connClosed)
	onDisconnect := c.onDisconnect
	stale := c.pending
	c.pending = make(map[string]*pendingAck)
	c.mu.Unlock()

	for _, p := range stale {
		p.timer.Stop()
		p.ack(ErrorAck("connection lost"))
	}

	log.Warn().Msg("socket disconnected")
	if onDisconnect != nil {
		onDisconnect("connection lost")
	}
}
