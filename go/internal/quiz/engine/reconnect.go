package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/quizclash/go/internal/quiz/events"
	"github.com/mcdev12/quizclash/go/internal/quiz/transport"
	"github.com/mcdev12/quizclash/go/internal/quiz/view"
)

// ReconnectionManager restores room membership after a transport reconnect.
// It re-registers event subscriptions, re-announces the local connection
// identity, then attempts a single idempotent rejoin from the persisted
// (roomID, roomCode) pair. A failed rejoin clears the pair and leaves the
// player at the room-management entry point; there is no automatic retry.
type ReconnectionManager struct {
	engine *Engine

	// rejoinInFlight collapses concurrent reconnect events into one rejoin
	// request.
	rejoinInFlight bool
}

func newReconnectionManager(e *Engine) *ReconnectionManager {
	return &ReconnectionManager{engine: e}
}

// onConnect runs on every established connection, first and subsequent.
func (r *ReconnectionManager) onConnect(connectionID string) {
	e := r.engine

	// Handler registration is replace-on-subscribe, so doing it again per
	// connection is harmless and guarantees a fresh transport still routes
	// to us.
	e.subscribe()
	e.state.setConnectionID(connectionID)

	log.Info().Str("connection_id", connectionID).Msg("connected to game server")
	e.notify("Connected to game server!", view.SeveritySuccess)

	r.attemptRejoin()
}

func (r *ReconnectionManager) attemptRejoin() {
	e := r.engine

	if r.rejoinInFlight {
		log.Debug().Msg("rejoin already in flight, skipping")
		return
	}
	if e.state.Session().InRoom() {
		return
	}

	roomID, roomCode, ok := e.store.Load()
	if !ok {
		return
	}

	user, err := e.currentUser()
	if err != nil {
		log.Warn().Err(err).Msg("cannot rejoin without an authenticated user")
		return
	}

	log.Info().Str("room_code", roomCode).Str("room_id", roomID).Msg("attempting to rejoin previous room")
	r.rejoinInFlight = true

	req := events.JoinRoomRequest{RoomCode: roomCode, PlayerName: user.PlayerName()}
	e.emit(events.IntentJoinRoom, req, func(ack transport.Ack) {
		r.rejoinInFlight = false
		if !ack.OK() {
			log.Warn().Str("room_code", roomCode).Str("reason", ack.Message).Msg("rejoin failed")
			if err := e.store.Clear(); err != nil {
				log.Warn().Err(err).Msg("failed to clear persisted room")
			}
			e.presenter.ShowScreen(view.ScreenRoomManagement)
			e.notify(orDefault(ack.Message, "Could not rejoin your previous room."), view.SeverityWarning)
			return
		}
		e.state.setRoomIdentity(ack.RoomID, ack.RoomCode)
		e.persistRoom()
		e.presenter.ShowScreen(view.ScreenLobby)
		e.notify(fmt.Sprintf("Rejoined room %s.", ack.RoomCode), view.SeveritySuccess)
	})
}
