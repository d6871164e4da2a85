package state

import (
	"io"

	"go-battle-city/internal/app"
	"go-battle-city/internal/audio"
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/event"
	"go-battle-city/internal/input"
	"go-battle-city/internal/storage"
	"go-battle-city/internal/utils"

	"github.com/rs/zerolog"
)

// Assemble собирает сессию по настройкам: определения врагов, мир,
// звук, хранилище рекорда. Возвращает функцию освобождения ресурсов.
func Assemble(settings config.Settings, in input.Poller, logger zerolog.Logger) (*Session, func()) {
	if path := settings.Defs.Enemies; path != "" {
		if n, err := defs.LoadEnemyDefinitions(path); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Enemy definitions not loaded, using built-in")
		} else {
			logger.Info().Int("count", n).Str("path", path).Msg("Enemy definitions loaded")
		}
	}

	events := event.NewDispatcher()
	sink := audio.New(settings.Audio, logger)
	audio.NewListener(sink).Attach(events)
	store := storage.Open(settings.Storage, logger)

	game := app.NewGame(app.Deps{
		Rng:    utils.NewPRNGService(settings.Seed),
		Events: events,
		Rules:  settings.Rules,
		Logger: logger,
	})
	s := NewSession(Deps{
		Game:     game,
		Input:    in,
		Audio:    sink,
		Store:    store,
		Events:   events,
		Settings: settings,
		Logger:   logger,
	})

	cleanup := func() {
		if c, ok := sink.(interface{ Close() }); ok {
			c.Close()
		}
		if c, ok := store.(io.Closer); ok {
			if err := c.Close(); err != nil {
				logger.Warn().Err(err).Msg("Failed to close high score store")
			}
		}
	}
	return s, cleanup
}
