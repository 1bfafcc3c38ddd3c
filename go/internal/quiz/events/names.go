package events

// Server events consumed by the client. Names are the wire contract with the
// game server.
const (
	EventUpdatePlayerList = "updatePlayerList"
	EventPlayerJoined     = "playerJoined"
	EventPlayerLeft       = "playerLeft"
	EventPlayerOffline    = "playerOffline"
	EventGameStarted      = "gameStarted"
	EventNextTurn         = "nextTurn"
	EventAnswerResult     = "answerResult"
	EventScoreUpdate      = "scoreUpdate"
	EventStealOpportunity = "stealOpportunity"
	EventStealResult      = "stealResult"
	EventGameEnded        = "gameEnded"
	EventPlayAgainStatus  = "playAgainStatus"
	EventPlayAgainFailed  = "playAgainFailed"
	EventPrivateMessage   = "privateMessage"
	EventGameError        = "gameError"
	EventServerMessage    = "message"
)

// Client intents emitted to the server. Every intent expects an ack.
const (
	IntentCreateRoom       = "createRoom"
	IntentJoinRoom         = "joinRoom"
	IntentStartGame        = "game:start"
	IntentSubmitAnswer     = "submitAnswer"
	IntentSubmitSteal      = "submitSteal"
	IntentLeaveRoom        = "leaveRoom"
	IntentPrivateMessage   = "privateMessage"
	IntentPlayAgainRequest = "playAgainRequest"
)
