package models

import "time"

// Session identifies the room this client currently belongs to. Created on a
// room create/join ack and cleared on leave or logout. MyUID and
// MyConnectionID outlive room transitions within one authenticated session.
type Session struct {
	RoomID         string
	RoomCode       string
	HostUID        string
	MyUID          string
	MyConnectionID string
}

// InRoom reports whether the session is bound to a room.
func (s Session) InRoom() bool {
	return s.RoomID != ""
}

// TurnPhase is the current stage of the turn state machine.
type TurnPhase string

const (
	PhaseIdle        TurnPhase = "IDLE"
	PhaseActiveTurn  TurnPhase = "ACTIVE_TURN"
	PhaseStealWindow TurnPhase = "STEAL_WINDOW"
	PhaseResolved    TurnPhase = "RESOLVED"
	PhaseEnded       TurnPhase = "ENDED"
)

// TurnState is the tagged turn variant. Folding the turn and steal flags into
// a single phase makes "my turn and steal window at once" unrepresentable.
type TurnState struct {
	Phase     TurnPhase
	HolderUID string
	Question  *Question
	Deadline  time.Time
}

// MyTurnRecord snapshots one question assigned to the local player by the
// turn-order arithmetic, kept for the personal end-of-game summary.
type MyTurnRecord struct {
	QuestionIndex int
	Question      Question
}

// AnswerAttempt records the local player's own answer or steal for one
// question. Appended at most once per question index.
type AnswerAttempt struct {
	QuestionIndex     int
	PlayerAnswerIndex int
	CorrectIndex      int // -1 when the server never disclosed it
}

// SummaryEntry is one row of the personal end-of-game summary. A nil
// PlayerAnswerIndex means the question was never attempted.
type SummaryEntry struct {
	Question          Question
	PlayerAnswerIndex *int
	CorrectIndex      *int
}

// PlayAgainVote is the local-only state of the post-game replay vote.
type PlayAgainVote struct {
	Requested        bool
	CountdownSeconds int
}

// ChatMessage is one private-message transcript entry. The transcript is
// append-only and never persisted past a session reset.
type ChatMessage struct {
	FromUID   string
	ToUID     string
	FromName  string
	Text      string
	Timestamp time.Time
	IsOwn     bool
}
