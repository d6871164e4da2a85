package state

import (
	"go-battle-city/internal/audio"
	"go-battle-city/internal/component"
	"go-battle-city/internal/event"
	"go-battle-city/internal/input"
	"go-battle-city/pkg/render"
)

// moveSoundPeriod тиков между звуками гусениц
const moveSoundPeriod = 8

// PlayingState идёт уровень
type PlayingState struct {
	s *Session
}

func NewPlayingState(s *Session) *PlayingState {
	return &PlayingState{s: s}
}

// Enter вызывается и при возврате из паузы, поэтому уровень здесь не грузится
func (p *PlayingState) Enter() {}

func (p *PlayingState) Update() {
	s := p.s
	if s.pressed(input.ActionPause) || s.pressed(input.ActionStart) || s.pressed(input.ActionQuit) {
		s.setState(NewPauseState(s, p))
		return
	}

	g := s.game
	g.Tick(s.input)
	if s.frames%moveSoundPeriod == 0 && p.anyPlayerMoving() {
		s.audio.PlaySound(audio.TankMove)
	}

	switch {
	case g.IsGameOver():
		s.events.Dispatch(event.Event{Type: event.GameOver})
		s.setState(NewGameOverState(s))
	case g.IsLevelComplete():
		s.events.Dispatch(event.Event{Type: event.LevelCompleted, Data: event.LevelData{Level: g.Level.Level()}})
		s.setState(NewLevelCompleteState(s))
	}
}

func (p *PlayingState) anyPlayerMoving() bool {
	for _, pl := range p.s.game.Players {
		if pl.Active && !pl.Velocity.IsZero() {
			return true
		}
	}
	return false
}

func (p *PlayingState) Draw(dst render.Sink) {
	p.s.drawScene(dst)
}

func (p *PlayingState) Exit() {}

func (p *PlayingState) Phase() component.GameState { return component.PlayingState }
