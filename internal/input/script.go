package input

// Press нажатие действия игроком
type Press struct {
	Action Action
	Player int
}

// Script программируемый источник для тестов и безголового прогона.
// Удерживаемые кнопки действуют до Release, кадры сценария на один тик.
type Script struct {
	Snapshot
	held   [MaxPlayers][actionCount]bool
	frames [][]Press
	pos    int
}

// NewScript создаёт источник; каждый кадр применяется на одном Poll
func NewScript(frames ...[]Press) *Script {
	return &Script{frames: frames}
}

// Hold удерживает кнопку до Release
func (s *Script) Hold(a Action, player int) {
	if valid(a, player) {
		s.held[player][a] = true
	}
}

// Release отпускает удерживаемую кнопку
func (s *Script) Release(a Action, player int) {
	if valid(a, player) {
		s.held[player][a] = false
	}
}

// ReleaseAll отпускает все кнопки
func (s *Script) ReleaseAll() {
	s.held = [MaxPlayers][actionCount]bool{}
}

// Queue добавляет кадры в конец сценария
func (s *Script) Queue(frames ...[]Press) {
	s.frames = append(s.frames, frames...)
}

// Tap кадр с одиночным нажатием
func Tap(a Action, player int) []Press {
	return []Press{{Action: a, Player: player}}
}

// Idle n пустых кадров
func Idle(n int) [][]Press {
	return make([][]Press, n)
}

func (s *Script) Poll() {
	s.Advance()
	s.cur = s.held
	if s.pos < len(s.frames) {
		for _, p := range s.frames[s.pos] {
			s.Set(p.Action, p.Player, true)
		}
		s.pos++
	}
}

// Done true, когда все кадры сценария проиграны
func (s *Script) Done() bool {
	return s.pos >= len(s.frames)
}
