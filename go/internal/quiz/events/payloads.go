package events

import (
	"encoding/json"
	"fmt"

	"github.com/mcdev12/quizclash/go/internal/models"
)

// ErrMalformed wraps payloads that are missing required fields. Handlers drop
// the update and keep prior state when decoding fails.
var ErrMalformed = fmt.Errorf("malformed event payload")

// PlayerListPayload is the payload for an updatePlayerList event. The server
// may send either the full shape or a bare player array (older servers); the
// bare shape leaves HostID empty.
type PlayerListPayload struct {
	Players []models.Player `json:"players"`
	HostID  string          `json:"hostId"`
}

// GameStartedPayload is the payload for a gameStarted event.
type GameStartedPayload struct {
	Question           *models.Question  `json:"question"`
	Players            []models.Player   `json:"players"`
	TotalQuestions     int               `json:"totalQuestions"`
	CurrentQuestionNum int               `json:"currentQuestionNum"`
	TurnUID            string            `json:"turnUid"`
	TurnTimeout        int               `json:"turnTimeout"`
	HostID             string            `json:"hostId"`
	Questions          []models.Question `json:"questions,omitempty"`
	Scores             map[string]int    `json:"scores,omitempty"`
}

// NextTurnPayload is the payload for a nextTurn event. CurrentQuestionNum may
// be absent; the client then increments its own counter.
type NextTurnPayload struct {
	Question           *models.Question `json:"question"`
	TurnUID            string           `json:"turnUid"`
	Timeout            int              `json:"timeout"`
	CurrentQuestionNum int              `json:"currentQuestionNum"`
}

// AnswerResultPayload is the payload for an answerResult event.
type AnswerResultPayload struct {
	QuestionID   string `json:"questionId"`
	UID          string `json:"uid"`
	Correct      bool   `json:"correct"`
	CorrectIndex int    `json:"correctIndex"`
}

// StealOpportunityPayload is the payload for a stealOpportunity event.
type StealOpportunityPayload struct {
	QuestionID   string `json:"questionId"`
	NextUID      string `json:"nextUid"`
	StealTimeout int    `json:"stealTimeout"`
}

// StealResultPayload is the payload for a stealResult event.
type StealResultPayload struct {
	QuestionID string `json:"questionId"`
	UID        string `json:"uid"`
	Correct    bool   `json:"correct"`
}

// PlayAgainStatusPayload is the payload for a playAgainStatus event.
type PlayAgainStatusPayload struct {
	Votes         int `json:"votes"`
	TotalRequired int `json:"totalRequired"`
}

// PlayAgainFailedPayload is the payload for a playAgainFailed event.
type PlayAgainFailedPayload struct {
	Message string `json:"message"`
}

// PrivateMessagePayload is the payload for an inbound privateMessage event.
type PrivateMessagePayload struct {
	FromUID   string `json:"fromUid"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// PlayerJoinedPayload is the payload for a playerJoined notice.
type PlayerJoinedPayload struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
}

// PlayerLeftPayload is the payload for a playerLeft notice.
type PlayerLeftPayload struct {
	UID string `json:"uid"`
}

// PlayerOfflinePayload is the payload for a playerOffline notice.
type PlayerOfflinePayload struct {
	RoomID string `json:"roomId"`
	UID    string `json:"uid"`
}

// NoticePayload is the payload for gameError and other message-bearing
// events.
type NoticePayload struct {
	Message string `json:"message"`
}

// DecodeGameStarted decodes and validates a gameStarted payload.
func DecodeGameStarted(data []byte) (GameStartedPayload, error) {
	var p GameStartedPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("%w: gameStarted: %v", ErrMalformed, err)
	}
	if p.Question == nil || p.TurnUID == "" || p.TotalQuestions <= 0 {
		return p, fmt.Errorf("%w: gameStarted missing question, turnUid or totalQuestions", ErrMalformed)
	}
	return p, nil
}

// DecodeNextTurn decodes and validates a nextTurn payload.
func DecodeNextTurn(data []byte) (NextTurnPayload, error) {
	var p NextTurnPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("%w: nextTurn: %v", ErrMalformed, err)
	}
	if p.Question == nil || p.TurnUID == "" {
		return p, fmt.Errorf("%w: nextTurn missing question or turnUid", ErrMalformed)
	}
	return p, nil
}

// DecodeAnswerResult decodes and validates an answerResult payload.
func DecodeAnswerResult(data []byte) (AnswerResultPayload, error) {
	var p AnswerResultPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("%w: answerResult: %v", ErrMalformed, err)
	}
	if p.QuestionID == "" || p.UID == "" {
		return p, fmt.Errorf("%w: answerResult missing questionId or uid", ErrMalformed)
	}
	return p, nil
}

// DecodeStealOpportunity decodes and validates a stealOpportunity payload.
func DecodeStealOpportunity(data []byte) (StealOpportunityPayload, error) {
	var p StealOpportunityPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("%w: stealOpportunity: %v", ErrMalformed, err)
	}
	if p.QuestionID == "" || p.NextUID == "" {
		return p, fmt.Errorf("%w: stealOpportunity missing questionId or nextUid", ErrMalformed)
	}
	return p, nil
}

// DecodeStealResult decodes and validates a stealResult payload.
func DecodeStealResult(data []byte) (StealResultPayload, error) {
	var p StealResultPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("%w: stealResult: %v", ErrMalformed, err)
	}
	if p.QuestionID == "" || p.UID == "" {
		return p, fmt.Errorf("%w: stealResult missing questionId or uid", ErrMalformed)
	}
	return p, nil
}

// DecodePlayerList decodes an updatePlayerList payload, tolerating the bare
// player-array shape from older servers.
func DecodePlayerList(data []byte) (PlayerListPayload, error) {
	var p PlayerListPayload
	if err := json.Unmarshal(data, &p); err == nil && p.Players != nil {
		return p, nil
	}
	var bare []models.Player
	if err := json.Unmarshal(data, &bare); err != nil {
		return p, fmt.Errorf("%w: updatePlayerList: %v", ErrMalformed, err)
	}
	return PlayerListPayload{Players: bare}, nil
}

// DecodeScores decodes a uid to score mapping, used by both scoreUpdate and
// gameEnded events.
func DecodeScores(data []byte) (map[string]int, error) {
	var scores map[string]int
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("%w: scores: %v", ErrMalformed, err)
	}
	return scores, nil
}

// DecodePrivateMessage decodes and validates an inbound privateMessage
// payload.
func DecodePrivateMessage(data []byte) (PrivateMessagePayload, error) {
	var p PrivateMessagePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("%w: privateMessage: %v", ErrMalformed, err)
	}
	if p.FromUID == "" || p.Message == "" {
		return p, fmt.Errorf("%w: privateMessage missing fromUid or message", ErrMalformed)
	}
	return p, nil
}
