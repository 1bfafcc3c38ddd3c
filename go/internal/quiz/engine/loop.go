package engine

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Dispatcher serializes engine work. Every server event, ack callback, timer
// tick and user intent is posted here, so all handlers run to completion
// before the next one starts and the engine never needs internal locking.
type Dispatcher interface {
	Post(fn func())
}

// Loop is the production Dispatcher: a single goroutine draining a buffered
// work channel.
type Loop struct {
	ch chan func()
}

// NewLoop creates a run loop.
func NewLoop() *Loop {
	return &Loop{ch: make(chan func(), 256)}
}

// Post enqueues work. Non-blocking so it is safe to call from the loop
// itself; overflow is dropped with a warning.
func (l *Loop) Post(fn func()) {
	select {
	case l.ch <- fn:
	default:
		log.Warn().Msg("engine loop full, dropping work")
	}
}

// Run drains the loop until the context is cancelled.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-l.ch:
			fn()
		}
	}
}
