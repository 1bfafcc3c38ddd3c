package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/quizclash/go/internal/models"
	"github.com/mcdev12/quizclash/go/internal/quiz/events"
	"github.com/mcdev12/quizclash/go/internal/quiz/transport"
	"github.com/mcdev12/quizclash/go/internal/quiz/view"
)

// playAgainWindowSeconds mirrors the server's vote-aggregation window. The
// local countdown is a safety net only; the server's resolution event is
// authoritative and whichever arrives first wins.
const playAgainWindowSeconds = 30

// PlayAgainCoordinator runs the post-game replay vote. The trigger is
// disabled optimistically to prevent duplicate votes, and exactly one
// terminal outcome happens per vote cycle: a new game starts, the server
// reports failure, or the local countdown expires and is treated as failure.
type PlayAgainCoordinator struct {
	engine *Engine

	requested bool
	countdown int
	stop      chan struct{} // nil when no local countdown runs
}

func newPlayAgainCoordinator(e *Engine) *PlayAgainCoordinator {
	return &PlayAgainCoordinator{engine: e}
}

// request is the vote intent. If the player is no longer a room member
// (dropped after the game ended), a rejoin by room code happens first.
func (p *PlayAgainCoordinator) request() {
	e := p.engine

	if p.requested {
		return
	}
	p.requested = true
	p.pushView()

	if !e.state.Session().InRoom() {
		p.requested = false
		p.pushView()
		e.presenter.ShowScreen(view.ScreenRoomManagement)
		return
	}

	if !e.state.IsMember() {
		p.rejoinThenVote()
		return
	}
	p.sendVote()
}

func (p *PlayAgainCoordinator) rejoinThenVote() {
	e := p.engine

	user, err := e.currentUser()
	if err != nil {
		p.requested = false
		p.pushView()
		e.notify("Please log in to start a new game.", view.SeverityWarning)
		return
	}

	e.notify("Re-establishing connection for new game...", view.SeverityInfo)
	req := events.JoinRoomRequest{RoomCode: e.state.RoomCode(), PlayerName: user.PlayerName()}
	e.emit(events.IntentJoinRoom, req, func(ack transport.Ack) {
		if !ack.OK() {
			p.requested = false
			p.pushView()
			e.notify(orDefault(ack.Message, "Failed to re-join room. Please try creating or joining manually."), view.SeverityDanger)
			e.presenter.ShowScreen(view.ScreenRoomManagement)
			return
		}
		e.state.setRoomIdentity(ack.RoomID, ack.RoomCode)
		p.sendVote()
	})
}

func (p *PlayAgainCoordinator) sendVote() {
	e := p.engine

	e.emit(events.IntentPlayAgainRequest, events.PlayAgainRequest{RoomID: e.state.RoomID()}, func(ack transport.Ack) {
		if !ack.OK() {
			p.requested = false
			p.pushView()
			e.notify(orDefault(ack.Message, "Failed to request new game."), view.SeverityDanger)
			return
		}
		p.startCountdown()
	})
}

// startCountdown begins the local mirror of the server's vote window.
func (p *PlayAgainCoordinator) startCountdown() {
	e := p.engine

	p.cancelCountdown()
	p.countdown = playAgainWindowSeconds
	p.pushView()

	stop := make(chan struct{})
	p.stop = stop

	go func() {
		ticker := e.clock.NewTicker(time.Second)
		defer ticker.Stop()

		for remaining := playAgainWindowSeconds; remaining > 0; {
			select {
			case <-stop:
				return
			case <-ticker.Chan():
				remaining--
				left := remaining
				e.loop.Post(func() {
					if p.stop != stop {
						return // superseded
					}
					p.countdown = left
					p.pushView()
					if left <= 0 {
						p.stop = nil
						p.voteFailed("Not enough players wanted to play again.")
					}
				})
			}
		}
	}()
}

// cancelCountdown stops the local countdown. Idempotent.
func (p *PlayAgainCoordinator) cancelCountdown() {
	if p.stop == nil {
		return
	}
	close(p.stop)
	p.stop = nil
	p.countdown = 0
}

// reset clears the vote cycle, e.g. when a new game starts or the room is
// left.
func (p *PlayAgainCoordinator) reset() {
	p.cancelCountdown()
	p.requested = false
	p.pushView()
}

// handleStatus reflects the server's running vote tally.
func (p *PlayAgainCoordinator) handleStatus(data []byte) {
	var payload events.PlayAgainStatusPayload
	if err := decodeJSON(data, &payload); err != nil {
		log.Error().Err(err).Msg("dropping playAgainStatus event")
		return
	}
	if !p.requested {
		return
	}
	p.engine.presenter.UpdatePlayAgain(view.PlayAgainView{
		Pending:          true,
		Votes:            payload.Votes,
		TotalRequired:    payload.TotalRequired,
		CountdownSeconds: p.countdown,
	})
}

// handleFailed is the server's terminal failure for the vote cycle.
func (p *PlayAgainCoordinator) handleFailed(data []byte) {
	var payload events.PlayAgainFailedPayload
	if err := decodeJSON(data, &payload); err != nil {
		log.Error().Err(err).Msg("dropping playAgainFailed event")
		return
	}
	p.voteFailed(orDefault(payload.Message, "Not enough players to start a new game."))
}

// voteFailed resolves the cycle as failed. Idempotent: whichever of the
// server event and the local timeout arrives first wins and the other is a
// no-op.
func (p *PlayAgainCoordinator) voteFailed(message string) {
	e := p.engine

	if !p.requested {
		return
	}
	p.requested = false
	p.cancelCountdown()
	p.pushView()

	e.notify(message, view.SeverityWarning)
	if e.state.IsMember() {
		e.presenter.ShowScreen(view.ScreenLobby)
	} else {
		e.presenter.ShowScreen(view.ScreenRoomManagement)
	}
	log.Info().Str("reason", message).Msg("play again vote failed")
}

func (p *PlayAgainCoordinator) pushView() {
	p.engine.state.vote = models.PlayAgainVote{
		Requested:        p.requested,
		CountdownSeconds: p.countdown,
	}
	p.engine.presenter.UpdatePlayAgain(view.PlayAgainView{
		Pending:          p.requested,
		CountdownSeconds: p.countdown,
	})
}
