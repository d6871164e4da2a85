// internal/state/state.go
package state

import (
	"go-battle-city/internal/component"
	"go-battle-city/pkg/render"
)

// State интерфейс для всех состояний
type State interface {
	Enter()
	Update()
	Draw(dst render.Sink)
	Exit()
	Phase() component.GameState
}

// StateMachine структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current текущее состояние
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update() {
	if sm.current != nil {
		sm.current.Update()
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(dst render.Sink) {
	if sm.current != nil {
		sm.current.Draw(dst)
	}
}
