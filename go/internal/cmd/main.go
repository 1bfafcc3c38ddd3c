package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/quizclash/go/internal/quiz/engine"
	"github.com/mcdev12/quizclash/go/internal/quiz/view"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	config, err := loadConfig(getEnv("QUIZCLASH_CONFIG", ""))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogging(config.Log.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eng, loop, presenter, err := setupClient(config)
	if err != nil {
		// A missing collaborator is the one unrecoverable startup failure.
		if errors.Is(err, engine.ErrMissingCollaborator) && presenter != nil {
			presenter.Notify(view.Notification{
				Message:  "Critical error: application components not available.",
				Severity: view.SeverityDanger,
				Duration: 0, // persistent
			})
		}
		log.Fatal().Err(err).Msg("failed to set up client")
	}

	go loop.Run(ctx)

	if err := eng.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start session engine")
	}

	go runPrompt(eng)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	eng.Logout()
	time.Sleep(200 * time.Millisecond) // let the loop drain the logout
}

func setupLogging(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}
