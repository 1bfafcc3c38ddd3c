package view

import (
	"github.com/rs/zerolog/log"
)

// LogPresenter renders every view-model push as a structured log line. Used
// by the CLI client and as a safe default sink when no UI is attached.
type LogPresenter struct{}

// NewLogPresenter creates a LogPresenter.
func NewLogPresenter() *LogPresenter {
	return &LogPresenter{}
}

func (p *LogPresenter) ShowScreen(screen Screen) {
	log.Info().Str("screen", string(screen)).Msg("screen changed")
}

func (p *LogPresenter) UpdatePlayerList(players []PlayerView) {
	log.Info().Int("players", len(players)).Msg("player list updated")
	for _, pl := range players {
		log.Debug().
			Str("uid", pl.UID).
			Str("name", pl.Name).
			Int("score", pl.Score).
			Bool("online", pl.Online).
			Bool("host", pl.IsHost).
			Msg("roster entry")
	}
}

func (p *LogPresenter) SetTurnIndicator(indicator TurnIndicator) {
	log.Info().
		Str("holder", indicator.HolderName).
		Bool("mine", indicator.Mine).
		Bool("steal", indicator.Steal).
		Msg("turn indicator")
}

func (p *LogPresenter) UpdateTimer(timer TimerView) {
	log.Debug().Int("seconds_left", timer.SecondsLeft).Bool("steal", timer.Steal).Msg("timer tick")
}

func (p *LogPresenter) ShowQuestion(question QuestionView) {
	log.Info().
		Int("number", question.Number).
		Int("total", question.Total).
		Str("text", question.Text).
		Bool("answer_enabled", question.AnswerEnabled).
		Msg("question")
}

func (p *LogPresenter) EnableAnswers(enabled bool) {
	log.Debug().Bool("enabled", enabled).Msg("answer input toggled")
}

func (p *LogPresenter) ResetAnswerHighlights() {
	log.Debug().Msg("answer highlights reset")
}

func (p *LogPresenter) HighlightAnswer(selectedIndex, correctIndex int, correct bool) {
	log.Info().
		Int("selected", selectedIndex).
		Int("correct_index", correctIndex).
		Bool("correct", correct).
		Msg("answer resolved")
}

func (p *LogPresenter) UpdateScoreboard(board ScoreboardView) {
	for _, e := range board.Entries {
		log.Info().Str("name", e.Name).Int("score", e.Score).Msg("score")
	}
}

func (p *LogPresenter) ShowStealBanner(banner StealBanner) {
	log.Info().Str("stealer", banner.StealerName).Bool("mine", banner.Mine).Msg("steal window open")
}

func (p *LogPresenter) HideStealBanner() {
	log.Debug().Msg("steal window closed")
}

func (p *LogPresenter) AppendChatMessage(message ChatMessageView) {
	log.Info().Str("from", message.FromName).Str("text", message.Text).Bool("own", message.Own).Msg("chat")
}

func (p *LogPresenter) ShowGameResults(board ScoreboardView, summary SummaryView) {
	log.Info().Int("summary_entries", len(summary.Entries)).Msg("game results")
	for _, e := range board.Entries {
		log.Info().Str("name", e.Name).Int("score", e.Score).Msg("final score")
	}
}

func (p *LogPresenter) UpdatePlayAgain(vote PlayAgainView) {
	log.Info().
		Bool("pending", vote.Pending).
		Int("votes", vote.Votes).
		Int("total_required", vote.TotalRequired).
		Int("countdown", vote.CountdownSeconds).
		Msg("play again vote")
}

func (p *LogPresenter) ToggleStartGame(enabled bool) {
	log.Debug().Bool("enabled", enabled).Msg("start game toggled")
}

func (p *LogPresenter) Notify(notification Notification) {
	log.Info().
		Str("severity", string(notification.Severity)).
		Dur("duration", notification.Duration).
		Msg(notification.Message)
}
