package state

import (
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/ui"
	"go-battle-city/pkg/render"
)

// LevelCompleteState таблица очков, затем следующий уровень
type LevelCompleteState struct {
	s     *Session
	timer int
}

func NewLevelCompleteState(s *Session) *LevelCompleteState {
	return &LevelCompleteState{s: s}
}

func (l *LevelCompleteState) Enter() {
	l.timer = 0
}

func (l *LevelCompleteState) Update() {
	l.timer++
	if l.timer < config.LevelCompleteDelay {
		return
	}
	g := l.s.game
	next := g.Level.Level() + 1
	if next > l.s.settings.Rules.FinalLevel {
		l.s.recordHighScore()
		l.s.logger.Info().Int("score", g.TotalScore()).Msg("All levels cleared")
		l.s.setState(NewMenuState(l.s))
		return
	}
	g.StartLevel(next)
	l.s.setState(NewPlayingState(l.s))
}

func (l *LevelCompleteState) Draw(dst render.Sink) {
	ui.DrawStageClear(dst, l.s.game.Level.Level(), l.s.scores(), max(l.s.highScore, l.s.game.TotalScore()))
}

func (l *LevelCompleteState) Exit() {}

func (l *LevelCompleteState) Phase() component.GameState { return component.LevelCompleteState }
