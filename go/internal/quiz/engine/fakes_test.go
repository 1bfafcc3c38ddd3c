package engine

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/quizclash/go/internal/identity"
	"github.com/mcdev12/quizclash/go/internal/quiz/events"
	"github.com/mcdev12/quizclash/go/internal/quiz/transport"
	"github.com/mcdev12/quizclash/go/internal/quiz/view"
	"github.com/mcdev12/quizclash/go/internal/roomstore"
)

const testUID = "me-uid"

// syncDispatcher runs posted work inline so engine behavior is fully
// synchronous in tests.
type syncDispatcher struct{}

func (syncDispatcher) Post(fn func()) { fn() }

// queueDispatcher collects posted work for explicit draining, used where a
// countdown goroutine posts from outside the test flow.
type queueDispatcher struct {
	ch chan func()
}

func newQueueDispatcher() *queueDispatcher {
	return &queueDispatcher{ch: make(chan func(), 64)}
}

func (q *queueDispatcher) Post(fn func()) { q.ch <- fn }

// drainOne runs the next posted fn, failing the test if none arrives.
func (q *queueDispatcher) drainOne(t *testing.T) {
	t.Helper()
	select {
	case fn := <-q.ch:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for posted work")
	}
}

// drainPending runs everything already queued without waiting.
func (q *queueDispatcher) drainPending() {
	for {
		select {
		case fn := <-q.ch:
			fn()
		default:
			return
		}
	}
}

type emittedIntent struct {
	event   string
	payload any
	ack     transport.AckFunc
}

// fakeTransport records emits and routes canned acks and server events.
type fakeTransport struct {
	handlers     map[string]transport.Handler
	emits        []emittedIntent
	acks         map[string]transport.Ack
	onConnect    func(connectionID string)
	onDisconnect func(reason string)
	connectErr   error
	connects     int
	disconnects  int
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		handlers: make(map[string]transport.Handler),
		acks:     make(map[string]transport.Ack),
	}
}

func (f *fakeTransport) Connect(ctx context.Context, credential string) error {
	f.connects++
	return f.connectErr
}

func (f *fakeTransport) Disconnect() error {
	f.disconnects++
	return nil
}

func (f *fakeTransport) Emit(event string, payload any, ack transport.AckFunc) {
	f.emits = append(f.emits, emittedIntent{event: event, payload: payload, ack: ack})
	if ack == nil {
		return
	}
	if canned, ok := f.acks[event]; ok {
		ack(canned)
	}
}

func (f *fakeTransport) On(event string, handler transport.Handler) {
	f.handlers[event] = handler
}

func (f *fakeTransport) OnConnect(handler func(connectionID string)) { f.onConnect = handler }

func (f *fakeTransport) OnDisconnect(handler func(reason string)) { f.onDisconnect = handler }

// deliver routes a server event through the registered handler.
func (f *fakeTransport) deliver(t *testing.T, event string, payload any) {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal %s payload: %v", event, err)
	}
	f.deliverRaw(t, event, data)
}

func (f *fakeTransport) deliverRaw(t *testing.T, event string, data []byte) {
	t.Helper()
	h, ok := f.handlers[event]
	if !ok {
		t.Fatalf("no handler registered for %s", event)
	}
	h(data)
}

// emitted returns all emits for one intent.
func (f *fakeTransport) emitted(event string) []emittedIntent {
	var out []emittedIntent
	for _, e := range f.emits {
		if e.event == event {
			out = append(out, e)
		}
	}
	return out
}

type highlightCall struct {
	selected int
	correct  int
	isRight  bool
}

type resultsCall struct {
	board   view.ScoreboardView
	summary view.SummaryView
}

// fakePresenter records every view push for assertions.
type fakePresenter struct {
	screens         []view.Screen
	playerLists     [][]view.PlayerView
	indicators      []view.TurnIndicator
	timerViews      []view.TimerView
	questions       []view.QuestionView
	enableCalls     []bool
	highlightResets int
	highlights      []highlightCall
	scoreboards     []view.ScoreboardView
	stealBanners    []view.StealBanner
	bannerHides     int
	chat            []view.ChatMessageView
	results         []resultsCall
	playAgainViews  []view.PlayAgainView
	startToggles    []bool
	notifications   []view.Notification
}

func (p *fakePresenter) ShowScreen(screen view.Screen) { p.screens = append(p.screens, screen) }

func (p *fakePresenter) UpdatePlayerList(players []view.PlayerView) {
	p.playerLists = append(p.playerLists, players)
}

func (p *fakePresenter) SetTurnIndicator(indicator view.TurnIndicator) {
	p.indicators = append(p.indicators, indicator)
}

func (p *fakePresenter) UpdateTimer(timer view.TimerView) {
	p.timerViews = append(p.timerViews, timer)
}

func (p *fakePresenter) ShowQuestion(question view.QuestionView) {
	p.questions = append(p.questions, question)
}

func (p *fakePresenter) EnableAnswers(enabled bool) {
	p.enableCalls = append(p.enableCalls, enabled)
}

func (p *fakePresenter) ResetAnswerHighlights() { p.highlightResets++ }

func (p *fakePresenter) HighlightAnswer(selectedIndex, correctIndex int, correct bool) {
	p.highlights = append(p.highlights, highlightCall{selectedIndex, correctIndex, correct})
}

func (p *fakePresenter) UpdateScoreboard(board view.ScoreboardView) {
	p.scoreboards = append(p.scoreboards, board)
}

func (p *fakePresenter) ShowStealBanner(banner view.StealBanner) {
	p.stealBanners = append(p.stealBanners, banner)
}

func (p *fakePresenter) HideStealBanner() { p.bannerHides++ }

func (p *fakePresenter) AppendChatMessage(message view.ChatMessageView) {
	p.chat = append(p.chat, message)
}

func (p *fakePresenter) ShowGameResults(board view.ScoreboardView, summary view.SummaryView) {
	p.results = append(p.results, resultsCall{board: board, summary: summary})
}

func (p *fakePresenter) UpdatePlayAgain(vote view.PlayAgainView) {
	p.playAgainViews = append(p.playAgainViews, vote)
}

func (p *fakePresenter) ToggleStartGame(enabled bool) {
	p.startToggles = append(p.startToggles, enabled)
}

func (p *fakePresenter) Notify(notification view.Notification) {
	p.notifications = append(p.notifications, notification)
}

func (p *fakePresenter) lastScreen(t *testing.T) view.Screen {
	t.Helper()
	if len(p.screens) == 0 {
		t.Fatal("no screen transitions recorded")
	}
	return p.screens[len(p.screens)-1]
}

func (p *fakePresenter) lastNotification(t *testing.T) view.Notification {
	t.Helper()
	if len(p.notifications) == 0 {
		t.Fatal("no notifications recorded")
	}
	return p.notifications[len(p.notifications)-1]
}

func (p *fakePresenter) lastEnable(t *testing.T) bool {
	t.Helper()
	if len(p.enableCalls) == 0 {
		t.Fatal("no EnableAnswers calls recorded")
	}
	return p.enableCalls[len(p.enableCalls)-1]
}

func (p *fakePresenter) screenCount(screen view.Screen) int {
	n := 0
	for _, s := range p.screens {
		if s == screen {
			n++
		}
	}
	return n
}

type testHarness struct {
	engine    *Engine
	transport *fakeTransport
	presenter *fakePresenter
	store     *roomstore.Memory
	clock     *clockwork.FakeClock
	queue     *queueDispatcher // nil for the synchronous harness
}

func newTestEngine(t *testing.T) *testHarness {
	return newTestEngineWith(t, nil)
}

// newTestEngineWith builds a started engine on the fake stack. A nil
// dispatcher uses the inline synchronous one.
func newTestEngineWith(t *testing.T, queue *queueDispatcher) *testHarness {
	t.Helper()

	h := &testHarness{
		transport: newFakeTransport(),
		presenter: &fakePresenter{},
		store:     roomstore.NewMemory(),
		clock:     clockwork.NewFakeClock(),
		queue:     queue,
	}

	var dispatcher Dispatcher = syncDispatcher{}
	if queue != nil {
		dispatcher = queue
	}

	eng, err := New(Deps{
		Transport:  h.transport,
		Presenter:  h.presenter,
		Identity:   &identity.StaticProvider{User: &identity.User{UID: testUID, DisplayName: "Me"}},
		Store:      h.store,
		Clock:      h.clock,
		Dispatcher: dispatcher,
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if err := eng.Start(context.Background()); err != nil {
		t.Fatalf("start engine: %v", err)
	}
	h.engine = eng
	return h
}

// enterRoom shortcuts the create-room handshake.
func (h *testHarness) enterRoom(t *testing.T, roomID, roomCode string) {
	t.Helper()
	h.transport.acks[events.IntentCreateRoom] = transport.Ack{Status: transport.StatusOK, RoomID: roomID, RoomCode: roomCode}
	h.engine.CreateRoom()
	delete(h.transport.acks, events.IntentCreateRoom)
	if h.engine.State().RoomID() != roomID {
		t.Fatalf("expected room %s, got %q", roomID, h.engine.State().RoomID())
	}
}
