package engine

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/mcdev12/quizclash/go/internal/models"
	"github.com/mcdev12/quizclash/go/internal/quiz/events"
	"github.com/mcdev12/quizclash/go/internal/quiz/transport"
	"github.com/mcdev12/quizclash/go/internal/quiz/view"
)

func questionSeq(n int) []models.Question {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{
			ID:      strconv.Itoa(i),
			Text:    fmt.Sprintf("Question %d text", i+1),
			Options: []string{"a", "b", "c", "d"},
		}
	}
	return questions
}

// threePlayerRoster puts the local player second, so with three players they
// own question indexes 1 and 4 out of six.
func threePlayerRoster() []models.Player {
	return []models.Player{
		{UID: "alice-uid", Name: "Alice", Online: true},
		{UID: testUID, Name: "Me", Online: true},
		{UID: "cara-uid", Name: "Cara", Online: true},
	}
}

func gameStartedPayload(turnUID string, questions []models.Question) events.GameStartedPayload {
	q := questions[0]
	return events.GameStartedPayload{
		Question:           &q,
		Players:            threePlayerRoster(),
		TotalQuestions:     len(questions),
		CurrentQuestionNum: 1,
		TurnUID:            turnUID,
		TurnTimeout:        15,
		HostID:             "alice-uid",
		Questions:          questions,
	}
}

func TestCreateRoomPersistsRoomPair(t *testing.T) {
	h := newTestEngine(t)
	h.transport.acks[events.IntentCreateRoom] = transport.Ack{
		Status: transport.StatusOK, RoomID: "room-1", RoomCode: "ABCD",
	}

	h.engine.CreateRoom()

	state := h.engine.State()
	if state.RoomID() != "room-1" || state.RoomCode() != "ABCD" {
		t.Fatalf("expected room room-1/ABCD, got %s/%s", state.RoomID(), state.RoomCode())
	}
	if !state.IsHost() {
		t.Fatal("expected creator to be host")
	}
	roomID, roomCode, ok := h.store.Load()
	if !ok || roomID != "room-1" || roomCode != "ABCD" {
		t.Fatalf("expected persisted pair room-1/ABCD, got %s/%s ok=%v", roomID, roomCode, ok)
	}
	if h.presenter.lastScreen(t) != view.ScreenLobby {
		t.Fatalf("expected lobby screen, got %s", h.presenter.lastScreen(t))
	}
}

func TestCreateRoomFailureLeavesSessionEmpty(t *testing.T) {
	h := newTestEngine(t)
	h.transport.acks[events.IntentCreateRoom] = transport.ErrorAck("server full")

	h.engine.CreateRoom()

	if h.engine.State().Session().InRoom() {
		t.Fatal("expected no room after rejected create")
	}
	if _, _, ok := h.store.Load(); ok {
		t.Fatal("expected nothing persisted after rejected create")
	}
	if got := h.presenter.lastNotification(t); got.Message != "server full" || got.Severity != view.SeverityDanger {
		t.Fatalf("expected danger notification with server message, got %+v", got)
	}
}

func TestJoinRoomNormalizesCode(t *testing.T) {
	h := newTestEngine(t)
	h.transport.acks[events.IntentJoinRoom] = transport.Ack{
		Status: transport.StatusOK, RoomID: "room-2", RoomCode: "WXYZ",
	}

	h.engine.JoinRoom("  wxyz ")

	emits := h.transport.emitted(events.IntentJoinRoom)
	if len(emits) != 1 {
		t.Fatalf("expected 1 joinRoom emit, got %d", len(emits))
	}
	req, ok := emits[0].payload.(events.JoinRoomRequest)
	if !ok {
		t.Fatalf("expected JoinRoomRequest payload, got %T", emits[0].payload)
	}
	if req.RoomCode != "WXYZ" {
		t.Fatalf("expected normalized code WXYZ, got %q", req.RoomCode)
	}
	if h.engine.State().RoomCode() != "WXYZ" {
		t.Fatalf("expected session code WXYZ, got %q", h.engine.State().RoomCode())
	}
}

func TestJoinRoomEmptyCodeRejectedLocally(t *testing.T) {
	h := newTestEngine(t)

	h.engine.JoinRoom("   ")

	if len(h.transport.emitted(events.IntentJoinRoom)) != 0 {
		t.Fatal("expected no joinRoom emit for empty code")
	}
	if got := h.presenter.lastNotification(t); got.Severity != view.SeverityWarning {
		t.Fatalf("expected warning notification, got %+v", got)
	}
}

func TestStartGameGuards(t *testing.T) {
	h := newTestEngine(t)

	// Not in a room yet.
	h.engine.StartGame()
	if len(h.transport.emitted(events.IntentStartGame)) != 0 {
		t.Fatal("expected no start emit outside a room")
	}

	// In a room but not the host.
	h.enterRoom(t, "room-1", "ABCD")
	h.transport.deliver(t, events.EventUpdatePlayerList, events.PlayerListPayload{
		Players: threePlayerRoster(), HostID: "alice-uid",
	})
	h.engine.StartGame()
	if len(h.transport.emitted(events.IntentStartGame)) != 0 {
		t.Fatal("expected no start emit from a non-host")
	}

	// Host but only one player online.
	h.transport.deliver(t, events.EventUpdatePlayerList, events.PlayerListPayload{
		Players: []models.Player{{UID: testUID, Name: "Me", Online: true}},
		HostID:  testUID,
	})
	h.engine.StartGame()
	if len(h.transport.emitted(events.IntentStartGame)) != 0 {
		t.Fatal("expected no start emit with a single online player")
	}

	// Host with two online players.
	h.transport.deliver(t, events.EventUpdatePlayerList, events.PlayerListPayload{
		Players: threePlayerRoster(), HostID: testUID,
	})
	h.engine.StartGame()
	if len(h.transport.emitted(events.IntentStartGame)) != 1 {
		t.Fatal("expected exactly one start emit from an eligible host")
	}
}

func TestGameStartedDerivesMyQuestions(t *testing.T) {
	h := newTestEngine(t)
	h.enterRoom(t, "room-1", "ABCD")

	h.transport.deliver(t, events.EventGameStarted, gameStartedPayload("alice-uid", questionSeq(6)))

	records := h.engine.State().MyTurnRecords()
	if len(records) != 2 {
		t.Fatalf("expected 2 turn records, got %d", len(records))
	}
	if records[0].QuestionIndex != 1 || records[1].QuestionIndex != 4 {
		t.Fatalf("expected question indexes 1 and 4, got %d and %d",
			records[0].QuestionIndex, records[1].QuestionIndex)
	}
	if records[0].Question.Text != "Question 2 text" {
		t.Fatalf("expected full question text, got %q", records[0].Question.Text)
	}
	if h.presenter.lastScreen(t) != view.ScreenGame {
		t.Fatalf("expected game screen, got %s", h.presenter.lastScreen(t))
	}
	if !h.engine.Timer().Active() {
		t.Fatal("expected turn countdown running")
	}
}

func TestGameStartedWithoutFullQuestionListUsesPlaceholders(t *testing.T) {
	h := newTestEngine(t)
	h.enterRoom(t, "room-1", "ABCD")

	payload := gameStartedPayload("alice-uid", questionSeq(6))
	payload.Questions = payload.Questions[:2]
	h.transport.deliver(t, events.EventGameStarted, payload)

	records := h.engine.State().MyTurnRecords()
	if len(records) != 2 {
		t.Fatalf("expected 2 turn records, got %d", len(records))
	}
	if records[0].Question.Text != "Question 2 text" {
		t.Fatalf("expected known question kept, got %q", records[0].Question.Text)
	}
	if records[1].Question.Text != "Question #5" {
		t.Fatalf("expected placeholder for withheld question, got %q", records[1].Question.Text)
	}
}

func TestMalformedGameStartedKeepsPriorState(t *testing.T) {
	h := newTestEngine(t)
	h.enterRoom(t, "room-1", "ABCD")

	h.transport.deliverRaw(t, events.EventGameStarted, []byte(`{"turnUid":"","totalQuestions":0}`))

	if h.engine.State().Phase() != models.PhaseIdle {
		t.Fatalf("expected idle phase after malformed event, got %s", h.engine.State().Phase())
	}
	if h.presenter.screenCount(view.ScreenGame) != 0 {
		t.Fatal("expected no game screen transition")
	}
}

func TestSubmitAnswerOutOfTurnIsRejectedLocally(t *testing.T) {
	h := newTestEngine(t)
	h.enterRoom(t, "room-1", "ABCD")
	h.transport.deliver(t, events.EventGameStarted, gameStartedPayload("alice-uid", questionSeq(6)))

	h.engine.SubmitAnswer(2)

	if len(h.transport.emitted(events.IntentSubmitAnswer)) != 0 {
		t.Fatal("expected no submit emit out of turn")
	}
	got := h.presenter.lastNotification(t)
	if got.Message != "Not your turn to answer!" || got.Severity != view.SeverityWarning {
		t.Fatalf("expected turn-violation warning, got %+v", got)
	}
}

func TestSubmitAnswerLocksInputAndRollsBackOnRejection(t *testing.T) {
	h := newTestEngine(t)
	h.enterRoom(t, "room-1", "ABCD")
	h.transport.deliver(t, events.EventGameStarted, gameStartedPayload(testUID, questionSeq(6)))

	h.engine.SubmitAnswer(2)

	emits := h.transport.emitted(events.IntentSubmitAnswer)
	if len(emits) != 1 {
		t.Fatalf("expected 1 submit emit, got %d", len(emits))
	}
	req := emits[0].payload.(events.SubmitAnswerRequest)
	if req.QuestionID != "0" || req.AnswerIndex != 2 {
		t.Fatalf("expected submission for question 0 answer 2, got %+v", req)
	}
	if h.presenter.lastEnable(t) {
		t.Fatal("expected answers locked while submission is pending")
	}
	if h.engine.State().pendingAnswerIndex != 2 {
		t.Fatalf("expected pending answer 2, got %d", h.engine.State().pendingAnswerIndex)
	}

	// Server rejects: the still-entitled player gets input back.
	emits[0].ack(transport.ErrorAck("too late"))
	if !h.presenter.lastEnable(t) {
		t.Fatal("expected answers re-enabled after rejected submission")
	}
	if h.engine.State().pendingAnswerIndex != -1 {
		t.Fatalf("expected pending answer cleared, got %d", h.engine.State().pendingAnswerIndex)
	}
}

func TestAnswerResultResolvesTurn(t *testing.T) {
	h := newTestEngine(t)
	h.enterRoom(t, "room-1", "ABCD")
	h.transport.deliver(t, events.EventGameStarted, gameStartedPayload(testUID, questionSeq(6)))
	h.engine.SubmitAnswer(2)

	h.transport.deliver(t, events.EventAnswerResult, events.AnswerResultPayload{
		QuestionID: "0", UID: testUID, Correct: true, CorrectIndex: 2,
	})

	state := h.engine.State()
	if state.Phase() != models.PhaseResolved {
		t.Fatalf("expected resolved phase, got %s", state.Phase())
	}
	attempts := state.Attempts()
	if len(attempts) != 1 {
		t.Fatalf("expected 1 recorded attempt, got %d", len(attempts))
	}
	if attempts[0].QuestionIndex != 0 || attempts[0].PlayerAnswerIndex != 2 || attempts[0].CorrectIndex != 2 {
		t.Fatalf("unexpected attempt %+v", attempts[0])
	}
	last := h.presenter.highlights[len(h.presenter.highlights)-1]
	if last.selected != 2 || last.correct != 2 || !last.isRight {
		t.Fatalf("unexpected highlight %+v", last)
	}
	if h.presenter.lastEnable(t) {
		t.Fatal("expected answers locked after resolution")
	}
	if h.engine.Timer().Active() {
		t.Fatal("expected countdown cancelled after resolution")
	}
}

func TestStaleAnswerResultStillLocksInput(t *testing.T) {
	h := newTestEngine(t)
	h.enterRoom(t, "room-1", "ABCD")
	h.transport.deliver(t, events.EventGameStarted, gameStartedPayload(testUID, questionSeq(6)))

	h.transport.deliver(t, events.EventAnswerResult, events.AnswerResultPayload{
		QuestionID: "9", UID: "alice-uid", Correct: false, CorrectIndex: 1,
	})

	if len(h.presenter.highlights) != 0 {
		t.Fatal("expected no highlight for a stale result")
	}
	if len(h.engine.State().Attempts()) != 0 {
		t.Fatal("expected no attempt recorded for a stale result")
	}
	if h.presenter.lastEnable(t) {
		t.Fatal("expected answers locked even for a stale result")
	}
	if h.engine.Timer().Active() {
		t.Fatal("expected countdown cancelled even for a stale result")
	}
}

func TestNextTurnCountsAndClamps(t *testing.T) {
	h := newTestEngine(t)
	h.enterRoom(t, "room-1", "ABCD")
	questions := questionSeq(6)
	h.transport.deliver(t, events.EventGameStarted, gameStartedPayload("alice-uid", questions))

	// Missing counter: the client increments its own.
	q1 := questions[1]
	h.transport.deliver(t, events.EventNextTurn, events.NextTurnPayload{
		Question: &q1, TurnUID: testUID, Timeout: 15,
	})
	if h.engine.State().currentQuestionNum != 2 {
		t.Fatalf("expected question number 2, got %d", h.engine.State().currentQuestionNum)
	}

	// Out-of-range counter clamps to the total.
	q2 := questions[2]
	h.transport.deliver(t, events.EventNextTurn, events.NextTurnPayload{
		Question: &q2, TurnUID: "cara-uid", Timeout: 15, CurrentQuestionNum: 99,
	})
	if h.engine.State().currentQuestionNum != 6 {
		t.Fatalf("expected question number clamped to 6, got %d", h.engine.State().currentQuestionNum)
	}
	if h.presenter.highlightResets == 0 {
		t.Fatal("expected answer highlights reset on turn transitions")
	}
}

func TestStealOpportunityForActiveQuestion(t *testing.T) {
	h := newTestEngine(t)
	h.enterRoom(t, "room-1", "ABCD")
	h.transport.deliver(t, events.EventGameStarted, gameStartedPayload("alice-uid", questionSeq(6)))

	h.transport.deliver(t, events.EventStealOpportunity, events.StealOpportunityPayload{
		QuestionID: "0", NextUID: testUID, StealTimeout: 10,
	})

	state := h.engine.State()
	if !state.StealActive() || state.StealerUID() != testUID {
		t.Fatalf("expected steal window for %s, got phase %s", testUID, state.Phase())
	}
	if state.IsMyTurn() {
		t.Fatal("steal window must not read as a regular turn")
	}
	banner := h.presenter.stealBanners[len(h.presenter.stealBanners)-1]
	if !banner.Mine || banner.QuestionID != "0" {
		t.Fatalf("unexpected steal banner %+v", banner)
	}
	if !h.presenter.lastEnable(t) {
		t.Fatal("expected answers enabled for the designated stealer")
	}

	// The submission now rides the steal intent.
	h.engine.SubmitAnswer(1)
	if len(h.transport.emitted(events.IntentSubmitSteal)) != 1 {
		t.Fatal("expected steal submission intent")
	}
	if len(h.transport.emitted(events.IntentSubmitAnswer)) != 0 {
		t.Fatal("expected no regular submission intent during a steal")
	}
}

func TestStaleStealOpportunityIgnored(t *testing.T) {
	h := newTestEngine(t)
	h.enterRoom(t, "room-1", "ABCD")
	h.transport.deliver(t, events.EventGameStarted, gameStartedPayload("alice-uid", questionSeq(6)))

	h.transport.deliver(t, events.EventStealOpportunity, events.StealOpportunityPayload{
		QuestionID: "3", NextUID: testUID, StealTimeout: 10,
	})

	state := h.engine.State()
	if state.Phase() != models.PhaseActiveTurn {
		t.Fatalf("expected active turn preserved, got %s", state.Phase())
	}
	if state.StealActive() {
		t.Fatal("expected no steal window for a stale opportunity")
	}
	if len(h.presenter.stealBanners) != 0 {
		t.Fatal("expected no steal banner for a stale opportunity")
	}
	if !h.engine.Timer().Active() {
		t.Fatal("expected the turn countdown untouched")
	}
}

func TestStealResultWithoutDisclosedAnswer(t *testing.T) {
	h := newTestEngine(t)
	h.enterRoom(t, "room-1", "ABCD")
	h.transport.deliver(t, events.EventGameStarted, gameStartedPayload("alice-uid", questionSeq(6)))
	h.transport.deliver(t, events.EventStealOpportunity, events.StealOpportunityPayload{
		QuestionID: "0", NextUID: testUID, StealTimeout: 10,
	})
	h.engine.SubmitAnswer(1)

	h.transport.deliver(t, events.EventStealResult, events.StealResultPayload{
		QuestionID: "0", UID: testUID, Correct: false,
	})

	attempts := h.engine.State().Attempts()
	if len(attempts) != 1 {
		t.Fatalf("expected 1 recorded attempt, got %d", len(attempts))
	}
	if attempts[0].CorrectIndex != -1 {
		t.Fatalf("expected undisclosed correct index -1, got %d", attempts[0].CorrectIndex)
	}
	if h.presenter.bannerHides == 0 {
		t.Fatal("expected steal banner hidden after resolution")
	}
	if h.engine.Timer().Active() {
		t.Fatal("expected steal countdown cancelled after resolution")
	}
}

func TestGameEndedBuildsPersonalSummary(t *testing.T) {
	h := newTestEngine(t)
	h.enterRoom(t, "room-1", "ABCD")
	questions := questionSeq(6)
	h.transport.deliver(t, events.EventGameStarted, gameStartedPayload("alice-uid", questions))

	// Answer the first owned question (index 1), leave index 4 unanswered.
	q1 := questions[1]
	h.transport.deliver(t, events.EventNextTurn, events.NextTurnPayload{
		Question: &q1, TurnUID: testUID, Timeout: 15,
	})
	h.engine.SubmitAnswer(3)
	h.transport.deliver(t, events.EventAnswerResult, events.AnswerResultPayload{
		QuestionID: "1", UID: testUID, Correct: false, CorrectIndex: 0,
	})

	h.transport.deliver(t, events.EventGameEnded, map[string]int{
		"alice-uid": 3, testUID: 1, "cara-uid": 0,
	})

	if len(h.presenter.results) != 1 {
		t.Fatalf("expected 1 results push, got %d", len(h.presenter.results))
	}
	summary := h.presenter.results[0].summary
	if len(summary.Entries) != 2 {
		t.Fatalf("expected 2 summary entries, got %d", len(summary.Entries))
	}
	answered := summary.Entries[0]
	if answered.PlayerAnswerIndex == nil || *answered.PlayerAnswerIndex != 3 {
		t.Fatalf("expected answered entry with index 3, got %+v", answered.PlayerAnswerIndex)
	}
	if answered.CorrectIndex == nil || *answered.CorrectIndex != 0 {
		t.Fatalf("expected disclosed correct index 0, got %+v", answered.CorrectIndex)
	}
	unanswered := summary.Entries[1]
	if unanswered.PlayerAnswerIndex != nil {
		t.Fatal("expected nil answer index for the question that was never attempted")
	}

	if h.presenter.lastScreen(t) != view.ScreenResults {
		t.Fatalf("expected results screen, got %s", h.presenter.lastScreen(t))
	}
	if h.engine.State().Phase() != models.PhaseEnded {
		t.Fatalf("expected ended phase, got %s", h.engine.State().Phase())
	}
	if _, _, ok := h.store.Load(); ok {
		t.Fatal("expected persisted room cleared when the game ends")
	}
	if h.engine.Timer().Active() {
		t.Fatal("expected countdown cancelled when the game ends")
	}
}

func TestTurnAndStealNeverOverlap(t *testing.T) {
	h := newTestEngine(t)
	h.enterRoom(t, "room-1", "ABCD")

	check := func(step string) {
		t.Helper()
		state := h.engine.State()
		if state.IsMyTurn() && state.StealActive() {
			t.Fatalf("%s: turn and steal window active at once", step)
		}
	}

	h.transport.deliver(t, events.EventGameStarted, gameStartedPayload(testUID, questionSeq(6)))
	check("gameStarted")
	h.transport.deliver(t, events.EventStealOpportunity, events.StealOpportunityPayload{
		QuestionID: "0", NextUID: testUID, StealTimeout: 10,
	})
	check("stealOpportunity")
	h.transport.deliver(t, events.EventStealResult, events.StealResultPayload{
		QuestionID: "0", UID: testUID, Correct: true,
	})
	check("stealResult")
}

func TestScoreUpdateAppliesToRoster(t *testing.T) {
	h := newTestEngine(t)
	h.enterRoom(t, "room-1", "ABCD")
	h.transport.deliver(t, events.EventUpdatePlayerList, events.PlayerListPayload{
		Players: threePlayerRoster(), HostID: "alice-uid",
	})

	h.transport.deliver(t, events.EventScoreUpdate, map[string]int{"alice-uid": 2, "ghost-uid": 9})

	players := h.engine.State().Players()
	if players[0].Score != 2 {
		t.Fatalf("expected alice at 2 points, got %d", players[0].Score)
	}
	for _, p := range players {
		if p.UID == "ghost-uid" {
			t.Fatal("unknown uid must not enter the roster")
		}
	}
}

func TestPlayerListToleratesBareArray(t *testing.T) {
	h := newTestEngine(t)
	h.enterRoom(t, "room-1", "ABCD")

	h.transport.deliverRaw(t, events.EventUpdatePlayerList,
		[]byte(`[{"uid":"alice-uid","name":"Alice","online":true}]`))

	players := h.engine.State().Players()
	if len(players) != 1 || players[0].UID != "alice-uid" {
		t.Fatalf("expected bare-array roster accepted, got %+v", players)
	}
	// Host from the create ack survives the host-less shape.
	if h.engine.State().HostUID() != testUID {
		t.Fatalf("expected host unchanged, got %q", h.engine.State().HostUID())
	}
}

func TestPlayerOfflineScopedToRoom(t *testing.T) {
	h := newTestEngine(t)
	h.enterRoom(t, "room-1", "ABCD")
	h.transport.deliver(t, events.EventUpdatePlayerList, events.PlayerListPayload{
		Players: threePlayerRoster(), HostID: "alice-uid",
	})

	h.transport.deliver(t, events.EventPlayerOffline, events.PlayerOfflinePayload{
		RoomID: "other-room", UID: "alice-uid",
	})
	if players := h.engine.State().Players(); !players[0].Online {
		t.Fatal("offline notice for another room must be ignored")
	}

	h.transport.deliver(t, events.EventPlayerOffline, events.PlayerOfflinePayload{
		RoomID: "room-1", UID: "alice-uid",
	})
	if players := h.engine.State().Players(); players[0].Online {
		t.Fatal("expected alice marked offline")
	}
	got := h.presenter.lastNotification(t)
	if got.Message != "Alice went offline." || got.Severity != view.SeverityWarning {
		t.Fatalf("unexpected offline notification %+v", got)
	}
}

func TestServerMessageShapes(t *testing.T) {
	h := newTestEngine(t)

	h.transport.deliverRaw(t, events.EventServerMessage, []byte(`"plain string"`))
	if got := h.presenter.lastNotification(t); got.Message != "plain string" {
		t.Fatalf("expected plain string notice, got %+v", got)
	}

	h.transport.deliverRaw(t, events.EventServerMessage, []byte(`{"message":"wrapped"}`))
	if got := h.presenter.lastNotification(t); got.Message != "wrapped" {
		t.Fatalf("expected wrapped notice, got %+v", got)
	}
}

func TestLeaveRoomResetsToEntryPoint(t *testing.T) {
	h := newTestEngine(t)
	h.enterRoom(t, "room-1", "ABCD")
	h.transport.acks[events.IntentLeaveRoom] = transport.Ack{Status: transport.StatusOK}

	h.engine.LeaveRoom()

	if h.engine.State().Session().InRoom() {
		t.Fatal("expected session out of the room")
	}
	if h.engine.State().MyUID() != testUID {
		t.Fatal("expected local identity preserved across leave")
	}
	if _, _, ok := h.store.Load(); ok {
		t.Fatal("expected persisted room cleared on leave")
	}
	if h.presenter.lastScreen(t) != view.ScreenRoomManagement {
		t.Fatalf("expected room management screen, got %s", h.presenter.lastScreen(t))
	}
}

func TestLogoutClearsIdentity(t *testing.T) {
	h := newTestEngine(t)
	h.enterRoom(t, "room-1", "ABCD")

	h.engine.Logout()

	if h.transport.disconnects != 1 {
		t.Fatalf("expected 1 disconnect, got %d", h.transport.disconnects)
	}
	if h.engine.State().MyUID() != "" {
		t.Fatal("expected uid cleared on logout")
	}
	if _, _, ok := h.store.Load(); ok {
		t.Fatal("expected persisted room cleared on logout")
	}
	if h.presenter.lastScreen(t) != view.ScreenAuth {
		t.Fatalf("expected auth screen, got %s", h.presenter.lastScreen(t))
	}
}
