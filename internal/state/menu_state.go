// internal/state/menu_state.go
package state

import (
	"go-battle-city/internal/component"
	"go-battle-city/internal/input"
	"go-battle-city/internal/ui"
	"go-battle-city/pkg/render"
)

// MenuState выбор одного или двух игроков
type MenuState struct {
	s        *Session
	selected int
}

func NewMenuState(s *Session) *MenuState {
	return &MenuState{s: s}
}

// Enter сбрасывает партию: из меню всегда начинается новая
func (m *MenuState) Enter() {
	m.s.game.Reset()
	m.s.audio.StopMusic()
}

func (m *MenuState) Update() {
	switch {
	case m.s.pressed(input.ActionQuit):
		m.s.quit = true
		m.s.logger.Info().Msg("Quit from menu")
	case m.s.pressed(input.ActionUp), m.s.pressed(input.ActionDown):
		m.selected = (m.selected + 1) % len(ui.MenuItems)
	case m.s.pressed(input.ActionStart), m.s.pressed(input.ActionShoot):
		m.start(m.selected + 1)
	}
}

func (m *MenuState) start(players int) {
	g := m.s.game
	g.EnsurePlayers(players)
	g.StartLevel(g.Level.Level())
	m.s.setState(NewPlayingState(m.s))
}

func (m *MenuState) Draw(dst render.Sink) {
	ui.DrawMenu(dst, m.selected, m.s.highScore)
}

func (m *MenuState) Exit() {}

func (m *MenuState) Phase() component.GameState { return component.MenuState }
