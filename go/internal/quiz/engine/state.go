package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/quizclash/go/internal/models"
	"github.com/mcdev12/quizclash/go/internal/quiz/view"
)

// SessionState is the single source of truth for room identity, membership,
// turn state, score and per-player question bookkeeping. Only the engine's
// own components mutate it, always from the dispatcher, and every mutation
// pushes the relevant view refresh to the presenter.
type SessionState struct {
	presenter view.Presenter

	session            models.Session
	roster             *models.Roster
	turn               models.TurnState
	totalQuestions     int
	currentQuestionNum int
	pendingAnswerIndex int
	myTurnRecords      []models.MyTurnRecord
	attempts           []models.AnswerAttempt
	chat               []models.ChatMessage
	vote               models.PlayAgainVote
}

// NewSessionState creates an empty session bound to a presenter.
func NewSessionState(presenter view.Presenter) *SessionState {
	return &SessionState{
		presenter:          presenter,
		roster:             models.NewRoster(),
		turn:               models.TurnState{Phase: models.PhaseIdle},
		pendingAnswerIndex: -1,
	}
}

// Session returns a copy of the room identity.
func (s *SessionState) Session() models.Session { return s.session }

// MyUID returns the local player's uid.
func (s *SessionState) MyUID() string { return s.session.MyUID }

// RoomID returns the current room id, empty when not in a room.
func (s *SessionState) RoomID() string { return s.session.RoomID }

// RoomCode returns the current room code.
func (s *SessionState) RoomCode() string { return s.session.RoomCode }

// HostUID returns the current host uid.
func (s *SessionState) HostUID() string { return s.session.HostUID }

// IsHost reports whether the local player is the host.
func (s *SessionState) IsHost() bool {
	return s.session.MyUID != "" && s.session.MyUID == s.session.HostUID
}

// Phase returns the current turn phase.
func (s *SessionState) Phase() models.TurnPhase { return s.turn.Phase }

// IsMyTurn reports whether the local player holds the active turn.
func (s *SessionState) IsMyTurn() bool {
	return s.turn.Phase == models.PhaseActiveTurn && s.turn.HolderUID == s.session.MyUID
}

// StealActive reports whether a steal window is open.
func (s *SessionState) StealActive() bool {
	return s.turn.Phase == models.PhaseStealWindow
}

// StealerUID returns the designated stealer, empty outside a steal window.
func (s *SessionState) StealerUID() string {
	if s.turn.Phase != models.PhaseStealWindow {
		return ""
	}
	return s.turn.HolderUID
}

// CurrentQuestion returns the active question, nil when none.
func (s *SessionState) CurrentQuestion() *models.Question { return s.turn.Question }

// IsMember reports whether the local player is in the current roster.
func (s *SessionState) IsMember() bool {
	return s.session.InRoom() && s.roster.Contains(s.session.MyUID)
}

// Players returns the roster in join order.
func (s *SessionState) Players() []models.Player { return s.roster.Players() }

// PlayerName resolves a uid to a display name, degrading to a short
// identifier-derived placeholder for unknown senders.
func (s *SessionState) PlayerName(uid string) string {
	if p, ok := s.roster.Get(uid); ok {
		return p.DisplayName()
	}
	return models.ShortName(uid)
}

// MyTurnRecords returns the locally derived question assignments.
func (s *SessionState) MyTurnRecords() []models.MyTurnRecord {
	out := make([]models.MyTurnRecord, len(s.myTurnRecords))
	copy(out, s.myTurnRecords)
	return out
}

// Attempts returns the recorded answer attempts.
func (s *SessionState) Attempts() []models.AnswerAttempt {
	out := make([]models.AnswerAttempt, len(s.attempts))
	copy(out, s.attempts)
	return out
}

// Transcript returns the chat transcript in arrival order.
func (s *SessionState) Transcript() []models.ChatMessage {
	out := make([]models.ChatMessage, len(s.chat))
	copy(out, s.chat)
	return out
}

// Vote returns the local play-again vote state.
func (s *SessionState) Vote() models.PlayAgainVote { return s.vote }

// Reset clears all session fields except MyUID and MyConnectionID, which
// persist across room transitions within one authenticated session.
func (s *SessionState) Reset() {
	myUID := s.session.MyUID
	connID := s.session.MyConnectionID
	s.session = models.Session{MyUID: myUID, MyConnectionID: connID}
	s.roster = models.NewRoster()
	s.turn = models.TurnState{Phase: models.PhaseIdle}
	s.totalQuestions = 0
	s.currentQuestionNum = 0
	s.pendingAnswerIndex = -1
	s.myTurnRecords = nil
	s.attempts = nil
	s.chat = nil
	s.vote = models.PlayAgainVote{}

	s.presenter.HideStealBanner()
	s.presenter.EnableAnswers(false)
}

func (s *SessionState) setMyUID(uid string) {
	s.session.MyUID = uid
}

func (s *SessionState) setConnectionID(id string) {
	s.session.MyConnectionID = id
}

func (s *SessionState) setRoomIdentity(roomID, roomCode string) {
	s.session.RoomID = roomID
	s.session.RoomCode = roomCode
}

func (s *SessionState) setHost(uid string) {
	if uid == "" || uid == s.session.HostUID {
		return
	}
	log.Debug().Str("host_uid", uid).Msg("host updated")
	s.session.HostUID = uid
	s.refreshPlayerList()
}

// replaceRoster swaps the membership wholesale and refreshes the player list
// view. hostID may be empty when the server sent the bare array shape.
func (s *SessionState) replaceRoster(players []models.Player, hostID string) {
	if hostID != "" {
		s.session.HostUID = hostID
	}
	s.roster.Replace(players)
	s.refreshPlayerList()
}

// markOffline flags a member offline in place. Returns false for unknown
// uids.
func (s *SessionState) markOffline(uid string) bool {
	if !s.roster.SetOffline(uid) {
		return false
	}
	s.refreshPlayerList()
	return true
}

func (s *SessionState) applyScores(scores map[string]int) {
	s.roster.ApplyScores(scores)
	s.presenter.UpdateScoreboard(s.scoreboardView())
}

// beginTurn enters ActiveTurn for the given holder and question.
func (s *SessionState) beginTurn(question *models.Question, holderUID string, deadline time.Time) {
	s.turn = models.TurnState{
		Phase:     models.PhaseActiveTurn,
		HolderUID: holderUID,
		Question:  question,
		Deadline:  deadline,
	}
	s.pendingAnswerIndex = -1
}

// beginSteal enters StealWindow for the designated stealer. The active
// question is unchanged.
func (s *SessionState) beginSteal(stealerUID string, deadline time.Time) {
	s.turn.Phase = models.PhaseStealWindow
	s.turn.HolderUID = stealerUID
	s.turn.Deadline = deadline
	s.pendingAnswerIndex = -1
}

func (s *SessionState) resolveTurn() {
	s.turn.Phase = models.PhaseResolved
	s.turn.HolderUID = ""
}

func (s *SessionState) endGame() {
	s.turn = models.TurnState{Phase: models.PhaseEnded}
}

// seedTurnRecords replays the server's turn-assignment rule: the player at
// ordinal position i (0-indexed by join order) owns question index i when
// i mod playerCount equals their ordinal. This mirrors server-side
// assignment and must match it exactly; the rule is a wire contract, not a
// local choice.
func (s *SessionState) seedTurnRecords(totalQuestions int, questions []models.Question) {
	s.myTurnRecords = nil
	s.attempts = nil

	count := s.roster.Len()
	ordinal := s.roster.Ordinal(s.session.MyUID)
	if count == 0 || ordinal < 0 {
		log.Warn().Msg("cannot derive turn assignments: local player not in roster")
		return
	}

	for i := 0; i < totalQuestions; i++ {
		if i%count != ordinal {
			continue
		}
		record := models.MyTurnRecord{QuestionIndex: i}
		if i < len(questions) {
			record.Question = questions[i]
		} else {
			record.Question = models.PlaceholderQuestion(i)
		}
		s.myTurnRecords = append(s.myTurnRecords, record)
	}
}

// recordAttempt appends an answer attempt, at most once per question index.
func (s *SessionState) recordAttempt(attempt models.AnswerAttempt) {
	for _, a := range s.attempts {
		if a.QuestionIndex == attempt.QuestionIndex {
			return
		}
	}
	s.attempts = append(s.attempts, attempt)
}

// buildSummary left-joins the turn records against recorded attempts. A
// question never attempted yields a nil answer index rather than a missing
// entry.
func (s *SessionState) buildSummary() []models.SummaryEntry {
	entries := make([]models.SummaryEntry, 0, len(s.myTurnRecords))
	for _, record := range s.myTurnRecords {
		entry := models.SummaryEntry{
			Question:     record.Question,
			CorrectIndex: record.Question.CorrectIndex,
		}
		for _, a := range s.attempts {
			if a.QuestionIndex == record.QuestionIndex {
				idx := a.PlayerAnswerIndex
				entry.PlayerAnswerIndex = &idx
				if entry.CorrectIndex == nil && a.CorrectIndex >= 0 {
					ci := a.CorrectIndex
					entry.CorrectIndex = &ci
				}
				break
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

func (s *SessionState) appendChat(message models.ChatMessage) {
	s.chat = append(s.chat, message)
}

// refreshPlayerList pushes the roster view and the host's start-game gating
// (host plus at least two online players).
func (s *SessionState) refreshPlayerList() {
	s.presenter.UpdatePlayerList(s.playerViews())
	s.presenter.ToggleStartGame(s.roster.OnlineCount() >= 2 && s.IsHost())
}

func (s *SessionState) playerViews() []view.PlayerView {
	players := s.roster.Players()
	views := make([]view.PlayerView, 0, len(players))
	for _, p := range players {
		views = append(views, view.PlayerView{
			UID:    p.UID,
			Name:   p.DisplayName(),
			Score:  p.Score,
			Online: p.Online,
			IsHost: p.UID == s.session.HostUID,
			IsMe:   p.UID == s.session.MyUID,
		})
	}
	return views
}

func (s *SessionState) scoreboardView() view.ScoreboardView {
	players := s.roster.Players()
	board := view.ScoreboardView{Entries: make([]view.ScoreEntry, 0, len(players))}
	for _, p := range players {
		board.Entries = append(board.Entries, view.ScoreEntry{
			UID:   p.UID,
			Name:  p.DisplayName(),
			Score: p.Score,
			IsMe:  p.UID == s.session.MyUID,
		})
	}
	return board
}
