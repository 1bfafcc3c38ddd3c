package events

// Request payloads for client-emitted intents.

// CreateRoomRequest asks the server to create a new room with this client as
// host.
type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
}

// JoinRoomRequest asks to join an existing room by its short code.
type JoinRoomRequest struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

// StartGameRequest asks the server to start the game. Host only.
type StartGameRequest struct {
	RoomID string `json:"roomId"`
}

// SubmitAnswerRequest submits the turn holder's answer.
type SubmitAnswerRequest struct {
	RoomID      string `json:"roomId"`
	QuestionID  string `json:"questionId"`
	AnswerIndex int    `json:"answerIndex"`
}

// SubmitStealRequest submits the designated stealer's answer.
type SubmitStealRequest struct {
	RoomID      string `json:"roomId"`
	QuestionID  string `json:"questionId"`
	AnswerIndex int    `json:"answerIndex"`
}

// LeaveRoomRequest leaves the current room.
type LeaveRoomRequest struct {
	RoomID string `json:"roomId"`
}

// PrivateMessageRequest sends a private message to another room member.
type PrivateMessageRequest struct {
	ToUID   string `json:"toUid"`
	Message string `json:"message"`
}

// PlayAgainRequest votes to replay with the same room.
type PlayAgainRequest struct {
	RoomID string `json:"roomId"`
}
