package view

import "time"

// Severity classifies a toast-style notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Screen identifies a top-level application view.
type Screen string

const (
	ScreenAuth           Screen = "auth"
	ScreenRoomManagement Screen = "room_management"
	ScreenLobby          Screen = "lobby"
	ScreenGame           Screen = "game"
	ScreenResults        Screen = "results"
)

// Notification is a transient user-facing notice. Duration zero means the
// notice is persistent and non-dismissible.
type Notification struct {
	Message  string
	Severity Severity
	Duration time.Duration
}

// PlayerView is one roster row.
type PlayerView struct {
	UID    string
	Name   string
	Score  int
	Online bool
	IsHost bool
	IsMe   bool
}

// TurnIndicator announces whose turn it is. The presenter owns the wording;
// the engine only supplies structure.
type TurnIndicator struct {
	HolderName string
	Mine       bool
	Steal      bool
}

// TimerView is one countdown tick.
type TimerView struct {
	SecondsLeft int
	Steal       bool
}

// QuestionView carries the active question and game progress.
type QuestionView struct {
	Number        int
	Total         int
	Text          string
	Options       []string
	AnswerEnabled bool
}

// ScoreEntry is one scoreboard row.
type ScoreEntry struct {
	UID   string
	Name  string
	Score int
	IsMe  bool
}

// ScoreboardView is the full scoreboard.
type ScoreboardView struct {
	Entries []ScoreEntry
}

// StealBanner announces an open steal window.
type StealBanner struct {
	StealerName string
	QuestionID  string
	Mine        bool
}

// ChatMessageView is one transcript row.
type ChatMessageView struct {
	FromName string
	ToName   string
	Text     string
	SentAt   time.Time
	Own      bool
}

// SummaryEntryView is one row of the personal end-of-game summary. A nil
// PlayerAnswerIndex renders as "not answered".
type SummaryEntryView struct {
	Question          string
	Options           []string
	PlayerAnswerIndex *int
	CorrectIndex      *int
}

// SummaryView is the personal end-of-game summary.
type SummaryView struct {
	Entries []SummaryEntryView
}

// PlayAgainView is the state of the replay-vote trigger.
type PlayAgainView struct {
	Pending          bool
	Votes            int
	TotalRequired    int
	CountdownSeconds int
}
