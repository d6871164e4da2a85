// cmd/term/main.go
package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"go-battle-city/internal/clock"
	"go-battle-city/internal/config"
	"go-battle-city/internal/input"
	"go-battle-city/internal/logging"
	"go-battle-city/internal/state"
	"go-battle-city/pkg/render"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

func main() {
	settings, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}

	// экран занят игрой, журнал только в файл
	logger, closer, err := logging.OpenFile(settings.LogLevel, settings.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create screen")
	}
	if err := screen.Init(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize screen")
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nBATTLE CITY CRASHED: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()
	screen.HideCursor()

	play(screen, settings, logger)
}

// play крутит сессию на screen до выхода из меню или закрытия экрана
func play(screen tcell.Screen, settings config.Settings, logger zerolog.Logger) {
	keys := input.NewTerminal()
	session, cleanup := state.Assemble(settings, keys, logger)
	defer cleanup()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	frame := render.NewFrame(config.ScreenWidth, config.ScreenHeight)
	stepper := clock.NewStepper()
	ticker := time.NewTicker(clock.FrameTime)
	defer ticker.Stop()

	logger.Info().Uint32("seed", settings.Seed).Msg("Terminal session started")
	for !session.Quit() {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			keys.HandleEvent(ev)
		case <-ticker.C:
			ticks, _ := stepper.Step()
			for i := 0; i < ticks && !session.Quit(); i++ {
				session.Tick()
			}
			frame.Clear(config.BackgroundColor)
			session.Draw(frame)
			screen.Clear()
			render.BlitCells(screen, frame, 0, 0)
			screen.Show()
		}
	}
	logger.Info().Int("highScore", session.HighScore()).Msg("Terminal session finished")
}
