package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/quizclash/go/internal/identity"
	"github.com/mcdev12/quizclash/go/internal/models"
	"github.com/mcdev12/quizclash/go/internal/quiz/events"
	"github.com/mcdev12/quizclash/go/internal/quiz/transport"
	"github.com/mcdev12/quizclash/go/internal/quiz/view"
	"github.com/mcdev12/quizclash/go/internal/roomstore"
)

const (
	defaultNoticeDuration = 3 * time.Second
	resultNoticeDuration  = 2500 * time.Millisecond
)

// Deps are the collaborators consumed by the engine. Transport, Presenter
// and Identity are required; the rest default sensibly.
type Deps struct {
	Transport  transport.Transport
	Presenter  view.Presenter
	Identity   identity.Provider
	Store      roomstore.Store
	Clock      clockwork.Clock
	Dispatcher Dispatcher
}

// Engine is the client-side session engine: it consumes server events,
// mutates the session state, drives the countdown timer and pushes view
// models to the presenter. One Engine serves one authenticated connection.
type Engine struct {
	transport transport.Transport
	presenter view.Presenter
	identity  identity.Provider
	store     roomstore.Store
	clock     clockwork.Clock
	loop      Dispatcher

	state     *SessionState
	timer     *TimerService
	reconnect *ReconnectionManager
	playAgain *PlayAgainCoordinator
	relay     *MessagingRelay

	ctx context.Context
}

// New constructs an engine. A missing transport, presenter or identity
// provider is fatal: the engine cannot run without them.
func New(deps Deps) (*Engine, error) {
	if deps.Transport == nil {
		return nil, fmt.Errorf("%w: transport", ErrMissingCollaborator)
	}
	if deps.Presenter == nil {
		return nil, fmt.Errorf("%w: presenter", ErrMissingCollaborator)
	}
	if deps.Identity == nil {
		return nil, fmt.Errorf("%w: identity provider", ErrMissingCollaborator)
	}
	if deps.Store == nil {
		deps.Store = roomstore.NewMemory()
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Dispatcher == nil {
		deps.Dispatcher = NewLoop()
	}

	e := &Engine{
		transport: deps.Transport,
		presenter: deps.Presenter,
		identity:  deps.Identity,
		store:     deps.Store,
		clock:     deps.Clock,
		loop:      deps.Dispatcher,
		ctx:       context.Background(),
	}
	e.state = NewSessionState(deps.Presenter)
	e.timer = NewTimerService(deps.Clock, deps.Dispatcher, deps.Presenter)
	e.reconnect = newReconnectionManager(e)
	e.playAgain = newPlayAgainCoordinator(e)
	e.relay = newMessagingRelay(e)
	return e, nil
}

// State exposes the session state for read access.
func (e *Engine) State() *SessionState { return e.state }

// Timer exposes the countdown service.
func (e *Engine) Timer() *TimerService { return e.timer }

// Loop exposes the dispatcher, for callers that need to run the production
// loop.
func (e *Engine) Loop() Dispatcher { return e.loop }

// Start resolves the current user, wires transport subscriptions and
// connects. The caller runs the dispatcher loop.
func (e *Engine) Start(ctx context.Context) error {
	e.ctx = ctx

	user, err := e.identity.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("resolve current user: %w", err)
	}
	if user == nil {
		e.presenter.ShowScreen(view.ScreenAuth)
		return ErrNotAuthenticated
	}
	e.state.setMyUID(user.UID)

	token, err := e.identity.Token(ctx)
	if err != nil {
		return fmt.Errorf("resolve auth token: %w", err)
	}

	e.subscribe()
	e.transport.OnConnect(func(connectionID string) {
		e.loop.Post(func() { e.reconnect.onConnect(connectionID) })
	})
	e.transport.OnDisconnect(func(reason string) {
		e.loop.Post(func() { e.handleDisconnected(reason) })
	})

	e.presenter.ShowScreen(view.ScreenRoomManagement)

	if err := e.transport.Connect(ctx, token); err != nil {
		return fmt.Errorf("connect transport: %w", err)
	}
	return nil
}

// subscribe registers all server-event handlers, each wrapped so it runs on
// the dispatcher. Idempotent: handlers replace themselves, which is what
// re-registration after a reconnect relies on.
func (e *Engine) subscribe() {
	on := func(event string, h func(data []byte)) {
		e.transport.On(event, func(data []byte) {
			e.loop.Post(func() { h(data) })
		})
	}

	on(events.EventUpdatePlayerList, e.handlePlayerList)
	on(events.EventPlayerJoined, e.handlePlayerJoined)
	on(events.EventPlayerLeft, e.handlePlayerLeft)
	on(events.EventPlayerOffline, e.handlePlayerOffline)
	on(events.EventGameStarted, e.handleGameStarted)
	on(events.EventNextTurn, e.handleNextTurn)
	on(events.EventAnswerResult, e.handleAnswerResult)
	on(events.EventScoreUpdate, e.handleScoreUpdate)
	on(events.EventStealOpportunity, e.handleStealOpportunity)
	on(events.EventStealResult, e.handleStealResult)
	on(events.EventGameEnded, e.handleGameEnded)
	on(events.EventPlayAgainStatus, e.playAgain.handleStatus)
	on(events.EventPlayAgainFailed, e.playAgain.handleFailed)
	on(events.EventPrivateMessage, e.relay.handleIncoming)
	on(events.EventGameError, e.handleGameError)
	on(events.EventServerMessage, e.handleServerMessage)
}

// emit sends an intent, re-dispatching the ack onto the loop.
func (e *Engine) emit(event string, payload any, ack transport.AckFunc) {
	if ack == nil {
		e.transport.Emit(event, payload, nil)
		return
	}
	e.transport.Emit(event, payload, func(a transport.Ack) {
		e.loop.Post(func() { ack(a) })
	})
}

func (e *Engine) notify(message string, severity view.Severity) {
	e.presenter.Notify(view.Notification{
		Message:  message,
		Severity: severity,
		Duration: defaultNoticeDuration,
	})
}

// ---- user intents ----

// CreateRoom asks the server for a new room with this player as host.
func (e *Engine) CreateRoom() {
	e.loop.Post(e.createRoom)
}

func (e *Engine) createRoom() {
	user, err := e.currentUser()
	if err != nil {
		e.notify("Please log in to create a room.", view.SeverityWarning)
		return
	}

	e.emit(events.IntentCreateRoom, events.CreateRoomRequest{PlayerName: user.PlayerName()}, func(ack transport.Ack) {
		if !ack.OK() {
			e.notify(orDefault(ack.Message, "Failed to create room."), view.SeverityDanger)
			return
		}
		e.state.setRoomIdentity(ack.RoomID, ack.RoomCode)
		e.state.setHost(e.state.MyUID()) // creator is the host
		e.persistRoom()
		e.presenter.ShowScreen(view.ScreenLobby)
		e.notify(fmt.Sprintf("Room %s created! Waiting for players...", ack.RoomCode), view.SeveritySuccess)
	})
}

// JoinRoom joins an existing room by its short code.
func (e *Engine) JoinRoom(roomCode string) {
	e.loop.Post(func() { e.joinRoom(roomCode) })
}

func (e *Engine) joinRoom(roomCode string) {
	user, err := e.currentUser()
	if err != nil {
		e.notify("Please log in to join a room.", view.SeverityWarning)
		return
	}
	roomCode = strings.ToUpper(strings.TrimSpace(roomCode))
	if roomCode == "" {
		e.notify("Please enter a room code.", view.SeverityWarning)
		return
	}

	req := events.JoinRoomRequest{RoomCode: roomCode, PlayerName: user.PlayerName()}
	e.emit(events.IntentJoinRoom, req, func(ack transport.Ack) {
		if !ack.OK() {
			e.notify(orDefault(ack.Message, "Failed to join room."), view.SeverityDanger)
			return
		}
		// Host is learned from the next membership update.
		e.state.setRoomIdentity(ack.RoomID, ack.RoomCode)
		e.persistRoom()
		e.presenter.ShowScreen(view.ScreenLobby)
		e.notify(fmt.Sprintf("Successfully joined room %s.", ack.RoomCode), view.SeveritySuccess)
	})
}

// StartGame asks the server to start. Host only, needs two online players.
func (e *Engine) StartGame() {
	e.loop.Post(e.startGame)
}

func (e *Engine) startGame() {
	if !e.state.Session().InRoom() {
		e.notify("Not in a room to start game.", view.SeverityWarning)
		return
	}
	if !e.state.IsHost() {
		e.notify("Only the host can start the game.", view.SeverityWarning)
		return
	}
	online := 0
	for _, p := range e.state.Players() {
		if p.Online {
			online++
		}
	}
	if online < 2 {
		e.notify("Need at least 2 online players to start.", view.SeverityWarning)
		return
	}

	e.emit(events.IntentStartGame, events.StartGameRequest{RoomID: e.state.RoomID()}, func(ack transport.Ack) {
		if !ack.OK() {
			e.notify(orDefault(ack.Message, "Failed to start game."), view.SeverityDanger)
			return
		}
		e.notify("Game starting...", view.SeveritySuccess)
	})
}

// SubmitAnswer submits the selected option for the active question. The
// turn-ownership guard rejects out-of-turn submissions before any network
// call.
func (e *Engine) SubmitAnswer(answerIndex int) {
	e.loop.Post(func() { e.submitAnswer(answerIndex) })
}

func (e *Engine) submitAnswer(answerIndex int) {
	stealing := e.state.StealActive() && e.state.StealerUID() == e.state.MyUID()
	if !e.state.IsMyTurn() && !stealing {
		log.Debug().Err(ErrTurnViolation).Int("answer_index", answerIndex).Msg("submission rejected")
		e.notify("Not your turn to answer!", view.SeverityWarning)
		return
	}

	question := e.state.CurrentQuestion()
	if !e.state.Session().InRoom() || question == nil {
		e.notify("Game or question data missing.", view.SeverityDanger)
		return
	}

	e.state.pendingAnswerIndex = answerIndex
	e.presenter.EnableAnswers(false)

	intent := events.IntentSubmitAnswer
	var payload any = events.SubmitAnswerRequest{
		RoomID:      e.state.RoomID(),
		QuestionID:  question.ID,
		AnswerIndex: answerIndex,
	}
	failure := "Failed to submit answer."
	if stealing {
		intent = events.IntentSubmitSteal
		payload = events.SubmitStealRequest{
			RoomID:      e.state.RoomID(),
			QuestionID:  question.ID,
			AnswerIndex: answerIndex,
		}
		failure = "Failed to submit steal."
	}

	e.emit(intent, payload, func(ack transport.Ack) {
		if ack.OK() {
			return
		}
		// Roll back the optimistic lockout so the still-entitled player can
		// try again.
		e.notify(orDefault(ack.Message, failure), view.SeverityDanger)
		e.state.pendingAnswerIndex = -1
		if stealing {
			e.presenter.EnableAnswers(e.state.StealerUID() == e.state.MyUID())
		} else {
			e.presenter.EnableAnswers(e.state.IsMyTurn())
		}
	})
}

// LeaveRoom leaves the current room and resets to the room-management entry
// point.
func (e *Engine) LeaveRoom() {
	e.loop.Post(e.leaveRoom)
}

func (e *Engine) leaveRoom() {
	if !e.state.Session().InRoom() {
		e.resetAfterLeave()
		return
	}
	e.emit(events.IntentLeaveRoom, events.LeaveRoomRequest{RoomID: e.state.RoomID()}, func(ack transport.Ack) {
		if ack.OK() {
			e.notify("You have left the room.", view.SeverityInfo)
		} else {
			e.notify(orDefault(ack.Message, "Error leaving room."), view.SeverityWarning)
		}
		e.resetAfterLeave()
	})
}

func (e *Engine) resetAfterLeave() {
	e.timer.Cancel()
	e.playAgain.reset()
	e.state.Reset()
	if err := e.store.Clear(); err != nil {
		log.Warn().Err(err).Msg("failed to clear persisted room")
	}
	e.presenter.ShowScreen(view.ScreenRoomManagement)
}

// SendPrivateMessage relays a chat message to another room member.
func (e *Engine) SendPrivateMessage(toUID, text string) {
	e.loop.Post(func() { e.relay.send(toUID, text) })
}

// RequestPlayAgain votes to replay with the same room.
func (e *Engine) RequestPlayAgain() {
	e.loop.Post(e.playAgain.request)
}

// Logout disconnects and clears all session state, including the persisted
// room pair.
func (e *Engine) Logout() {
	e.loop.Post(e.logout)
}

func (e *Engine) logout() {
	if err := e.transport.Disconnect(); err != nil {
		log.Warn().Err(err).Msg("disconnect on logout")
	}
	e.timer.Cancel()
	e.playAgain.reset()
	e.state.Reset()
	e.state.setMyUID("")
	if err := e.store.Clear(); err != nil {
		log.Warn().Err(err).Msg("failed to clear persisted room")
	}
	e.presenter.ShowScreen(view.ScreenAuth)
}

// ---- server event handlers ----

func (e *Engine) handlePlayerList(data []byte) {
	payload, err := events.DecodePlayerList(data)
	if err != nil {
		log.Error().Err(err).Msg("dropping player list update")
		return
	}
	if payload.HostID == "" {
		log.Warn().Msg("player list update without host id; host unchanged")
	}
	e.state.replaceRoster(payload.Players, payload.HostID)
}

func (e *Engine) handlePlayerJoined(data []byte) {
	var p events.PlayerJoinedPayload
	if err := decodeJSON(data, &p); err != nil || p.UID == "" {
		log.Error().Err(err).Msg("dropping playerJoined notice")
		return
	}
	if p.UID == e.state.MyUID() {
		return
	}
	name := p.Name
	if name == "" {
		name = p.UID
	}
	e.notify(fmt.Sprintf("%s has joined the lobby.", name), view.SeverityInfo)
}

func (e *Engine) handlePlayerLeft(data []byte) {
	var p events.PlayerLeftPayload
	if err := decodeJSON(data, &p); err != nil || p.UID == "" {
		log.Error().Err(err).Msg("dropping playerLeft notice")
		return
	}
	if p.UID == e.state.MyUID() {
		return
	}
	if _, ok := findPlayer(e.state.Players(), p.UID); !ok {
		return
	}
	e.notify(fmt.Sprintf("%s has left the room.", e.state.PlayerName(p.UID)), view.SeverityInfo)
}

func (e *Engine) handlePlayerOffline(data []byte) {
	var p events.PlayerOfflinePayload
	if err := decodeJSON(data, &p); err != nil || p.UID == "" {
		log.Error().Err(err).Msg("dropping playerOffline notice")
		return
	}
	if p.RoomID != e.state.RoomID() {
		log.Debug().Str("room_id", p.RoomID).Msg("offline notice for another room, ignoring")
		return
	}
	if !e.state.markOffline(p.UID) {
		return
	}
	e.notify(fmt.Sprintf("%s went offline.", e.state.PlayerName(p.UID)), view.SeverityWarning)
}

func (e *Engine) handleGameStarted(data []byte) {
	payload, err := events.DecodeGameStarted(data)
	if err != nil {
		log.Error().Err(err).Msg("dropping gameStarted event")
		return
	}

	e.playAgain.reset()

	if len(payload.Players) > 0 {
		e.state.replaceRoster(payload.Players, payload.HostID)
	} else if payload.HostID != "" {
		e.state.setHost(payload.HostID)
	}

	e.state.totalQuestions = payload.TotalQuestions
	e.state.currentQuestionNum = clampQuestionNum(payload.CurrentQuestionNum, 1, payload.TotalQuestions)

	deadline := e.clock.Now().Add(time.Duration(payload.TurnTimeout) * time.Second)
	e.state.beginTurn(payload.Question, payload.TurnUID, deadline)
	e.state.seedTurnRecords(payload.TotalQuestions, payload.Questions)

	if payload.Scores != nil {
		e.state.applyScores(payload.Scores)
	} else {
		e.presenter.UpdateScoreboard(e.state.scoreboardView())
	}

	e.pushQuestion()
	e.pushTurnIndicator()
	e.timer.Start(payload.TurnTimeout, TimerTurn)
	e.presenter.HideStealBanner()
	e.presenter.ShowScreen(view.ScreenGame)

	log.Info().
		Str("turn_uid", payload.TurnUID).
		Int("total_questions", payload.TotalQuestions).
		Int("my_turn_questions", len(e.state.myTurnRecords)).
		Msg("game started")
}

func (e *Engine) handleNextTurn(data []byte) {
	payload, err := events.DecodeNextTurn(data)
	if err != nil {
		log.Error().Err(err).Msg("dropping nextTurn event")
		return
	}

	// Tolerate a missing server counter by guessing the increment, then
	// clamp into the valid range either way.
	next := payload.CurrentQuestionNum
	if next == 0 {
		next = e.state.currentQuestionNum + 1
	}
	e.state.currentQuestionNum = clampQuestionNum(next, 1, e.state.totalQuestions)

	deadline := e.clock.Now().Add(time.Duration(payload.Timeout) * time.Second)
	e.state.beginTurn(payload.Question, payload.TurnUID, deadline)

	e.presenter.ResetAnswerHighlights()
	e.pushQuestion()
	e.pushTurnIndicator()
	e.timer.Start(payload.Timeout, TimerTurn)
	e.presenter.HideStealBanner()
}

func (e *Engine) handleAnswerResult(data []byte) {
	payload, err := events.DecodeAnswerResult(data)
	if err != nil {
		log.Error().Err(err).Msg("dropping answerResult event")
		return
	}

	question := e.state.CurrentQuestion()
	if question != nil && question.ID == payload.QuestionID {
		verdict := "answered incorrectly."
		severity := view.SeverityWarning
		if payload.Correct {
			verdict = "answered correctly!"
			severity = view.SeveritySuccess
		}
		e.presenter.Notify(view.Notification{
			Message:  fmt.Sprintf("%s %s", e.state.PlayerName(payload.UID), verdict),
			Severity: severity,
			Duration: resultNoticeDuration,
		})

		selected := e.state.pendingAnswerIndex
		e.presenter.HighlightAnswer(selected, payload.CorrectIndex, payload.Correct)

		if payload.UID == e.state.MyUID() {
			e.recordOwnAttempt(*question, selected, payload.CorrectIndex)
		}
		e.state.resolveTurn()
		e.state.pendingAnswerIndex = -1
	} else {
		log.Debug().
			Err(ErrStaleEvent).
			Str("question_id", payload.QuestionID).
			Msg("answerResult for inactive question")
	}

	// Answering stays locked and the countdown dies regardless of staleness.
	e.presenter.EnableAnswers(false)
	e.timer.Cancel()
}

func (e *Engine) handleScoreUpdate(data []byte) {
	scores, err := events.DecodeScores(data)
	if err != nil {
		log.Error().Err(err).Msg("dropping scoreUpdate event")
		return
	}
	e.state.applyScores(scores)
}

func (e *Engine) handleStealOpportunity(data []byte) {
	payload, err := events.DecodeStealOpportunity(data)
	if err != nil {
		log.Error().Err(err).Msg("dropping stealOpportunity event")
		return
	}

	question := e.state.CurrentQuestion()
	if question == nil || question.ID != payload.QuestionID {
		// Duplicate or re-ordered delivery after the question moved on.
		log.Debug().
			Err(ErrStaleEvent).
			Str("question_id", payload.QuestionID).
			Msg("stealOpportunity for inactive question, ignoring")
		return
	}

	deadline := e.clock.Now().Add(time.Duration(payload.StealTimeout) * time.Second)
	e.presenter.ResetAnswerHighlights()
	e.state.beginSteal(payload.NextUID, deadline)

	mine := payload.NextUID == e.state.MyUID()
	e.presenter.ShowStealBanner(view.StealBanner{
		StealerName: e.state.PlayerName(payload.NextUID),
		QuestionID:  payload.QuestionID,
		Mine:        mine,
	})
	e.pushTurnIndicator()
	e.presenter.EnableAnswers(mine)
	e.timer.Start(payload.StealTimeout, TimerSteal)
}

func (e *Engine) handleStealResult(data []byte) {
	payload, err := events.DecodeStealResult(data)
	if err != nil {
		log.Error().Err(err).Msg("dropping stealResult event")
		return
	}

	question := e.state.CurrentQuestion()
	if question != nil && question.ID == payload.QuestionID {
		correctIndex := -1
		if question.CorrectIndex != nil {
			correctIndex = *question.CorrectIndex
		}
		selected := e.state.pendingAnswerIndex
		e.presenter.HighlightAnswer(selected, correctIndex, payload.Correct)

		if payload.UID == e.state.MyUID() {
			e.recordOwnAttempt(*question, selected, correctIndex)
		}
		e.state.resolveTurn()
		e.state.pendingAnswerIndex = -1
	} else {
		log.Debug().
			Err(ErrStaleEvent).
			Str("question_id", payload.QuestionID).
			Msg("stealResult for inactive question")
	}

	e.presenter.EnableAnswers(false)
	e.presenter.HideStealBanner()
	e.timer.Cancel()
}

func (e *Engine) handleGameEnded(data []byte) {
	finalScores, err := events.DecodeScores(data)
	if err != nil {
		log.Error().Err(err).Msg("dropping gameEnded event")
		return
	}

	e.timer.Cancel()
	e.playAgain.cancelCountdown()
	e.state.applyScores(finalScores)

	summary := e.state.buildSummary()
	entries := make([]view.SummaryEntryView, 0, len(summary))
	for _, s := range summary {
		entries = append(entries, view.SummaryEntryView{
			Question:          s.Question.Text,
			Options:           s.Question.Options,
			PlayerAnswerIndex: s.PlayerAnswerIndex,
			CorrectIndex:      s.CorrectIndex,
		})
	}
	e.presenter.ShowGameResults(e.state.scoreboardView(), view.SummaryView{Entries: entries})
	e.presenter.ShowScreen(view.ScreenResults)

	e.state.endGame()
	e.state.myTurnRecords = nil
	e.state.attempts = nil
	if err := e.store.Clear(); err != nil {
		log.Warn().Err(err).Msg("failed to clear persisted room")
	}

	log.Info().Int("summary_entries", len(entries)).Msg("game ended")
}

func (e *Engine) handleGameError(data []byte) {
	var p events.NoticePayload
	if err := decodeJSON(data, &p); err != nil || p.Message == "" {
		log.Error().Err(err).Msg("dropping gameError notice")
		return
	}
	log.Error().Str("message", p.Message).Msg("server reported game error")
	e.notify("Error: "+p.Message, view.SeverityDanger)
}

func (e *Engine) handleServerMessage(data []byte) {
	var message string
	if err := decodeJSON(data, &message); err != nil {
		var p events.NoticePayload
		if err := decodeJSON(data, &p); err != nil || p.Message == "" {
			log.Error().Msg("dropping unreadable server message")
			return
		}
		message = p.Message
	}
	e.notify(message, view.SeverityInfo)
}

func (e *Engine) handleDisconnected(reason string) {
	e.notify("Connection lost. Please check your internet connection.", view.SeverityDanger)
	log.Warn().Str("reason", reason).Msg("transport disconnected")
}

// ---- helpers ----

// recordOwnAttempt appends one AnswerAttempt for a question this client
// personally answered or stole, keyed by the question's sequence index.
func (e *Engine) recordOwnAttempt(question models.Question, selected, correctIndex int) {
	index, ok := question.SequenceIndex()
	if !ok {
		log.Warn().Str("question_id", question.ID).Msg("question id is not a sequence index, skipping summary record")
		return
	}
	e.state.recordAttempt(models.AnswerAttempt{
		QuestionIndex:     index,
		PlayerAnswerIndex: selected,
		CorrectIndex:      correctIndex,
	})
}

func (e *Engine) pushQuestion() {
	question := e.state.CurrentQuestion()
	if question == nil {
		return
	}
	e.presenter.ShowQuestion(view.QuestionView{
		Number:        e.state.currentQuestionNum,
		Total:         e.state.totalQuestions,
		Text:          question.Text,
		Options:       append([]string(nil), question.Options...),
		AnswerEnabled: e.state.IsMyTurn(),
	})
}

func (e *Engine) pushTurnIndicator() {
	holder := e.state.turn.HolderUID
	e.presenter.SetTurnIndicator(view.TurnIndicator{
		HolderName: e.state.PlayerName(holder),
		Mine:       holder == e.state.MyUID(),
		Steal:      e.state.StealActive(),
	})
}

func (e *Engine) persistRoom() {
	if err := e.store.Save(e.state.RoomID(), e.state.RoomCode()); err != nil {
		log.Warn().Err(err).Msg("failed to persist room")
	}
}

func (e *Engine) currentUser() (*identity.User, error) {
	user, err := e.identity.CurrentUser(e.ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}

func clampQuestionNum(n, low, high int) int {
	if n < low {
		return low
	}
	if high > 0 && n > high {
		return high
	}
	return n
}

func orDefault(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}

func findPlayer(players []models.Player, uid string) (models.Player, bool) {
	for _, p := range players {
		if p.UID == uid {
			return p, true
		}
	}
	return models.Player{}, false
}

func decodeJSON(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
