package main

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/quizclash/go/internal/identity"
	"github.com/mcdev12/quizclash/go/internal/quiz/engine"
	"github.com/mcdev12/quizclash/go/internal/quiz/transport"
	"github.com/mcdev12/quizclash/go/internal/quiz/view"
	"github.com/mcdev12/quizclash/go/internal/roomstore"
)

// setupClient wires the collaborator chain: transport, identity, room store
// and presenter into a session engine.
func setupClient(config *Config) (*engine.Engine, *engine.Loop, view.Presenter, error) {
	clock := clockwork.NewRealClock()
	presenter := view.NewLogPresenter()

	transportConfig := transport.DefaultConfig(config.Server.URL)
	if config.Server.AckTimeout > 0 {
		transportConfig.AckTimeout = time.Duration(config.Server.AckTimeout) * time.Second
	}
	socket := transport.NewSocketClient(transportConfig, clock)

	var store roomstore.Store
	if config.State.Path != "" {
		store = roomstore.NewFile(config.State.Path)
	} else {
		store = roomstore.NewMemory()
	}

	loop := engine.NewLoop()
	eng, err := engine.New(engine.Deps{
		Transport:  socket,
		Presenter:  presenter,
		Identity:   identity.NewTokenProvider(config.Auth.Token),
		Store:      store,
		Clock:      clock,
		Dispatcher: loop,
	})
	if err != nil {
		return nil, nil, presenter, err
	}
	return eng, loop, presenter, nil
}
