package input

// Action логическое действие игрока
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionShoot
	ActionStart
	ActionPause
	ActionQuit

	actionCount
)

// MaxPlayers количество независимых наборов управления
const MaxPlayers = 2

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "UP"
	case ActionDown:
		return "DOWN"
	case ActionLeft:
		return "LEFT"
	case ActionRight:
		return "RIGHT"
	case ActionShoot:
		return "SHOOT"
	case ActionStart:
		return "START"
	case ActionPause:
		return "PAUSE"
	case ActionQuit:
		return "QUIT"
	}
	return "UNKNOWN"
}

// Source опрос состояния действий для игрока с индексом player
type Source interface {
	IsPressed(a Action, player int) bool
	IsJustPressed(a Action, player int) bool
	IsJustReleased(a Action, player int) bool
}

// Poller источник, который обновляет снимок раз в тик симуляции
type Poller interface {
	Source
	Poll()
}

// Snapshot текущий и предыдущий снимки кнопок; основа всех источников
type Snapshot struct {
	cur  [MaxPlayers][actionCount]bool
	prev [MaxPlayers][actionCount]bool
}

func valid(a Action, player int) bool {
	return a >= 0 && a < actionCount && player >= 0 && player < MaxPlayers
}

// Advance сдвигает текущий снимок в предыдущий
func (s *Snapshot) Advance() {
	s.prev = s.cur
}

// Set задаёт состояние кнопки в текущем снимке
func (s *Snapshot) Set(a Action, player int, down bool) {
	if valid(a, player) {
		s.cur[player][a] = down
	}
}

// Clear отпускает все кнопки текущего снимка
func (s *Snapshot) Clear() {
	s.cur = [MaxPlayers][actionCount]bool{}
}

func (s *Snapshot) IsPressed(a Action, player int) bool {
	return valid(a, player) && s.cur[player][a]
}

func (s *Snapshot) IsJustPressed(a Action, player int) bool {
	return valid(a, player) && s.cur[player][a] && !s.prev[player][a]
}

func (s *Snapshot) IsJustReleased(a Action, player int) bool {
	return valid(a, player) && !s.cur[player][a] && s.prev[player][a]
}

// AnyJustPressed true, если действие нажато у любого игрока
func AnyJustPressed(src Source, a Action) bool {
	for p := 0; p < MaxPlayers; p++ {
		if src.IsJustPressed(a, p) {
			return true
		}
	}
	return false
}
