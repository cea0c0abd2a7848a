package main

import (
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"stagetimer/internal/api"
	"stagetimer/internal/assets"
	"stagetimer/internal/auth"
	"stagetimer/internal/settings"
	"stagetimer/internal/timer"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file loaded")
	}

	config, err := loadConfig(getEnv("STAGETIMER_CONFIG", "stagetimer.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	clock := clockwork.NewRealClock()
	registry := timer.NewRegistry(clock, config.Timers)
	store := settings.NewStore(config.SettingsFile)
	sessions := auth.NewSessions(clock, time.Duration(config.SessionTTLMinutes)*time.Minute)

	assetMgr, err := assets.NewManager(config.StaticDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare asset directories")
	}

	hub := api.NewHub()
	handlers := api.NewHandlers(registry, store, sessions, assetMgr, hub)
	server := setupServer(config.Listen, api.NewRouter(handlers))

	log.Info().
		Str("addr", config.Listen).
		Int("timers", len(config.Timers)).
		Str("settings_file", config.SettingsFile).
		Msg("stagetimer listening")

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
