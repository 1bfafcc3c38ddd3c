package view

// Presenter is the one-way rendering sink consumed by the engine. It receives
// structured view models and never drives game logic. Implementations must
// not call back into the engine.
type Presenter interface {
	ShowScreen(screen Screen)
	UpdatePlayerList(players []PlayerView)
	SetTurnIndicator(indicator TurnIndicator)
	UpdateTimer(timer TimerView)
	ShowQuestion(question QuestionView)
	EnableAnswers(enabled bool)
	ResetAnswerHighlights()
	HighlightAnswer(selectedIndex, correctIndex int, correct bool)
	UpdateScoreboard(board ScoreboardView)
	ShowStealBanner(banner StealBanner)
	HideStealBanner()
	AppendChatMessage(message ChatMessageView)
	ShowGameResults(board ScoreboardView, summary SummaryView)
	UpdatePlayAgain(vote PlayAgainView)
	ToggleStartGame(enabled bool)
	Notify(notification Notification)
}
