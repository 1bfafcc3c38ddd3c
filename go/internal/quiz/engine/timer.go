package engine

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/quizclash/go/internal/quiz/view"
)

// TimerKind distinguishes the regular turn countdown from the steal-window
// countdown.
type TimerKind string

const (
	TimerTurn  TimerKind = "turn"
	TimerSteal TimerKind = "steal"
)

// TimerService owns the single active countdown. Start always cancels any
// running timer first, so two live countdowns can never coexist. Reaching
// zero disables answer input but never transitions turn state: the server's
// next event is the only authority for that.
//
// Start and Cancel must be called from the dispatcher; ticks are posted back
// onto it.
type TimerService struct {
	clock     clockwork.Clock
	post      func(fn func())
	presenter view.Presenter

	stop chan struct{} // nil when idle
}

// NewTimerService creates an idle timer service.
func NewTimerService(clock clockwork.Clock, dispatcher Dispatcher, presenter view.Presenter) *TimerService {
	return &TimerService{
		clock:     clock,
		post:      dispatcher.Post,
		presenter: presenter,
	}
}

// Active reports whether a countdown is running.
func (t *TimerService) Active() bool {
	return t.stop != nil
}

// Start begins a countdown, ticking the presenter once immediately and once
// per subsequent second.
func (t *TimerService) Start(durationSeconds int, kind TimerKind) {
	t.Cancel()

	steal := kind == TimerSteal
	t.presenter.UpdateTimer(view.TimerView{SecondsLeft: durationSeconds, Steal: steal})
	if durationSeconds <= 0 {
		t.presenter.EnableAnswers(false)
		return
	}

	stop := make(chan struct{})
	t.stop = stop
	log.Debug().Int("duration_sec", durationSeconds).Str("kind", string(kind)).Msg("countdown started")

	go func() {
		ticker := t.clock.NewTicker(time.Second)
		defer ticker.Stop()

		remaining := durationSeconds
		for remaining > 0 {
			select {
			case <-stop:
				return
			case <-ticker.Chan():
				remaining--
				left := remaining
				t.post(func() {
					// A tick that raced a cancel must not render into the
					// new state.
					if t.stop != stop {
						return
					}
					t.presenter.UpdateTimer(view.TimerView{SecondsLeft: left, Steal: steal})
					if left <= 0 {
						t.stop = nil
						t.presenter.EnableAnswers(false)
					}
				})
			}
		}
	}()
}

// Cancel stops the active countdown. Idempotent.
func (t *TimerService) Cancel() {
	if t.stop == nil {
		return
	}
	close(t.stop)
	t.stop = nil
	log.Debug().Msg("countdown cancelled")
}
