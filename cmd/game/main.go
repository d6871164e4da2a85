// cmd/game/main.go
package main

import (
	"os"

	"go-battle-city/internal/clock"
	"go-battle-city/internal/config"
	"go-battle-city/internal/input"
	"go-battle-city/internal/logging"
	"go-battle-city/internal/state"
	"go-battle-city/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

type AppGame struct {
	session *state.Session
	stepper *clock.Stepper
	logger  zerolog.Logger
}

func (a *AppGame) Update() error {
	ticks, _ := a.stepper.Step()
	for i := 0; i < ticks; i++ {
		a.session.Tick()
		if a.session.Quit() {
			a.logger.Info().Msg("Quit requested")
			return ebiten.Termination
		}
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.session.Draw(render.NewEbitenSink(screen))
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	os.Exit(run(ebiten.RunGame))
}

// run собирает игру и крутит цикл runGame. Код выхода ненулевой, если
// окно или цикл не поднялись; defer успевают отработать до os.Exit.
func run(runGame func(ebiten.Game) error) int {
	settings, err := config.Load(".")
	if err != nil {
		fallback := logging.New("info", os.Stderr, nil)
		fallback.Error().Err(err).Msg("Failed to load settings")
		return 1
	}

	logger, closer, err := logging.Open(settings.LogLevel, os.Stderr, settings.LogFile)
	if err != nil {
		logger.Warn().Err(err).Msg("Logging to console only")
	}
	defer closer.Close()

	session, cleanup := state.Assemble(settings, input.NewKeyboard(), logger)
	defer cleanup()

	app := &AppGame{
		session: session,
		stepper: clock.NewStepper(),
		logger:  logger,
	}
	logger.Info().Uint32("seed", settings.Seed).Str("storage", settings.Storage.Type).Msg("Starting Battle City")

	ebiten.SetWindowSize(config.ScreenWidth*config.WindowScale, config.ScreenHeight*config.WindowScale)
	ebiten.SetWindowTitle("Battle City")
	if err := runGame(app); err != nil {
		logger.Error().Err(err).Msg("Game loop failed")
		return 1
	}
	return 0
}
