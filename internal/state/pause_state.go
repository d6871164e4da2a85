// internal/state/pause_state.go
package state

import (
	"go-battle-city/internal/component"
	"go-battle-city/internal/input"
	"go-battle-city/internal/ui"
	"go-battle-city/pkg/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState мир стоит, поверх поля мигает надпись
type PauseState struct {
	s             *Session
	previousState State
}

func NewPauseState(s *Session, prevState State) *PauseState {
	return &PauseState{s: s, previousState: prevState}
}

func (p *PauseState) Enter() {}

func (p *PauseState) Update() {
	switch {
	case p.s.pressed(input.ActionPause), p.s.pressed(input.ActionStart):
		p.s.setState(p.previousState)
	case p.s.pressed(input.ActionQuit):
		// повторный выход из паузы бросает партию
		p.s.recordHighScore()
		p.s.setState(NewMenuState(p.s))
	}
}

func (p *PauseState) Draw(dst render.Sink) {
	if p.previousState != nil {
		p.previousState.Draw(dst)
	}
	ui.DrawPause(dst, (p.s.frames/30)%2 == 0)
}

func (p *PauseState) Exit() {}

func (p *PauseState) Phase() component.GameState { return component.PausedState }
