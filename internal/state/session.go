package state

import (
	"go-battle-city/internal/app"
	"go-battle-city/internal/audio"
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/event"
	"go-battle-city/internal/input"
	"go-battle-city/internal/storage"
	"go-battle-city/internal/system"
	"go-battle-city/internal/ui"
	"go-battle-city/pkg/render"

	"github.com/rs/zerolog"
)

// Deps службы сессии, создаются в cmd/*
type Deps struct {
	Game     *app.Game
	Input    input.Poller
	Audio    audio.Sink
	Store    storage.HighScoreStore
	Events   *event.Dispatcher
	Settings config.Settings
	Logger   zerolog.Logger
}

// Session ведёт смену экранов и раз в тик опрашивает ввод
type Session struct {
	sm        *StateMachine
	game      *app.Game
	input     input.Poller
	audio     audio.Sink
	store     storage.HighScoreStore
	events    *event.Dispatcher
	settings  config.Settings
	logger    zerolog.Logger
	scene     *system.RenderSystem
	hud       *ui.HUD
	highScore int
	frames    uint64
	quit      bool
}

// NewSession читает рекорд и открывает меню
func NewSession(deps Deps) *Session {
	if deps.Audio == nil {
		deps.Audio = audio.Nop{}
	}
	if deps.Store == nil {
		deps.Store = storage.NewMemoryStore()
	}
	if deps.Input == nil {
		deps.Input = input.NewScript()
	}
	if deps.Settings.Rules.FinalLevel <= 0 {
		deps.Settings.Rules.FinalLevel = config.MaxLevels
	}
	if deps.Game == nil {
		deps.Game = app.NewGame(app.Deps{Events: deps.Events, Rules: deps.Settings.Rules, Logger: deps.Logger})
	}
	s := &Session{
		sm:       NewStateMachine(),
		game:     deps.Game,
		input:    deps.Input,
		audio:    deps.Audio,
		store:    deps.Store,
		events:   deps.Events,
		settings: deps.Settings,
		logger:   deps.Logger.With().Str("component", "session").Logger(),
		scene:    system.NewRenderSystem(deps.Game),
		hud:      ui.NewHUD(),
	}
	if best, err := s.store.Load(); err != nil {
		s.logger.Error().Err(err).Msg("Failed to load high score")
	} else {
		s.highScore = best
	}
	s.sm.SetState(NewMenuState(s))
	return s
}

// Tick один тик: снимок ввода и обновление текущего экрана
func (s *Session) Tick() {
	if s.quit {
		return
	}
	s.frames++
	s.input.Poll()
	s.sm.Update()
}

// Draw рисует текущий экран
func (s *Session) Draw(dst render.Sink) {
	s.sm.Draw(dst)
}

// Quit true после выхода из меню
func (s *Session) Quit() bool {
	return s.quit
}

func (s *Session) Phase() component.GameState {
	if cur := s.sm.Current(); cur != nil {
		return cur.Phase()
	}
	return component.MenuState
}

func (s *Session) HighScore() int {
	return s.highScore
}

func (s *Session) Game() *app.Game {
	return s.game
}

func (s *Session) setState(next State) {
	from := s.Phase()
	s.sm.SetState(next)
	s.logger.Info().Stringer("from", from).Stringer("to", next.Phase()).Int("level", s.game.Level.Level()).Msg("Session state changed")
}

func (s *Session) pressed(a input.Action) bool {
	return input.AnyJustPressed(s.input, a)
}

// recordHighScore сохраняет рекорд; ошибка хранилища не прерывает игру
func (s *Session) recordHighScore() {
	best, err := storage.SaveIfHigher(s.store, s.game.TotalScore())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to save high score")
	}
	s.highScore = max(s.highScore, best, s.game.TotalScore())
}

func (s *Session) scores() []int {
	out := make([]int, len(s.game.Players))
	for i, p := range s.game.Players {
		out[i] = p.Score
	}
	return out
}

func (s *Session) drawScene(dst render.Sink) {
	s.scene.Draw(dst)
	s.hud.Draw(dst, s.game)
}
