package state

import (
	"go-battle-city/internal/component"
	"go-battle-city/internal/input"
	"go-battle-city/internal/ui"
	"go-battle-city/pkg/render"
)

// GameOverState итог партии до нажатия START
type GameOverState struct {
	s *Session
}

func NewGameOverState(s *Session) *GameOverState {
	return &GameOverState{s: s}
}

func (g *GameOverState) Enter() {
	g.s.recordHighScore()
	g.s.logger.Info().
		Int("score", g.s.game.TotalScore()).
		Int("highScore", g.s.highScore).
		Bool("baseDestroyed", g.s.game.BaseDestroyed()).
		Msg("Game over")
}

func (g *GameOverState) Update() {
	if g.s.pressed(input.ActionStart) {
		g.s.setState(NewMenuState(g.s))
	}
}

func (g *GameOverState) Draw(dst render.Sink) {
	g.s.drawScene(dst)
	ui.DrawGameOver(dst, g.s.scores(), g.s.highScore)
}

func (g *GameOverState) Exit() {}

func (g *GameOverState) Phase() component.GameState { return component.GameOverState }
