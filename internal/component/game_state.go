package component

// GameState экран сессии
type GameState int

const (
	MenuState GameState = iota
	PlayingState
	PausedState
	GameOverState
	LevelCompleteState
)

func (s GameState) String() string {
	switch s {
	case MenuState:
		return "MENU"
	case PlayingState:
		return "PLAYING"
	case PausedState:
		return "PAUSED"
	case GameOverState:
		return "GAME_OVER"
	case LevelCompleteState:
		return "LEVEL_COMPLETE"
	}
	return "UNKNOWN"
}
