package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/quizclash/go/internal/quiz/engine"
)

// runPrompt reads user intents from stdin. Every line maps onto one engine
// intent; all game output arrives through the presenter.
func runPrompt(eng *engine.Engine) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "create":
			eng.CreateRoom()
		case "join":
			if len(fields) < 2 {
				log.Warn().Msg("usage: join <room-code>")
				continue
			}
			eng.JoinRoom(fields[1])
		case "start":
			eng.StartGame()
		case "answer":
			if len(fields) < 2 {
				log.Warn().Msg("usage: answer <option-index>")
				continue
			}
			index, err := strconv.Atoi(fields[1])
			if err != nil {
				log.Warn().Str("input", fields[1]).Msg("answer index must be a number")
				continue
			}
			eng.SubmitAnswer(index)
		case "msg":
			if len(fields) < 3 {
				log.Warn().Msg("usage: msg <uid> <text>")
				continue
			}
			eng.SendPrivateMessage(fields[1], strings.Join(fields[2:], " "))
		case "again":
			eng.RequestPlayAgain()
		case "leave":
			eng.LeaveRoom()
		case "logout":
			eng.Logout()
		default:
			log.Warn().Str("command", fields[0]).Msg("unknown command")
		}
	}
}
