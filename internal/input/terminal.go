package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldWindow сколько считается нажатой клавиша после последнего
// события терминала (терминал не сообщает об отпускании)
const DefaultHoldWindow = 150 * time.Millisecond

type termKey struct {
	action Action
	player int
}

// Terminal источник ввода из событий tcell. HandleEvent и Poll вызываются
// из одной горутины цикла симуляции.
type Terminal struct {
	Snapshot
	lastSeen   [MaxPlayers][actionCount]time.Time
	holdWindow time.Duration
	now        func() time.Time
}

// NewTerminal создаёт источник с окном удержания DefaultHoldWindow
func NewTerminal() *Terminal {
	return &Terminal{holdWindow: DefaultHoldWindow, now: time.Now}
}

// SetClock подменяет часы (для тестов)
func (t *Terminal) SetClock(now func() time.Time) {
	t.now = now
}

// HandleEvent учитывает событие клавиатуры; остальные события игнорируются.
// Возвращает true, если событие распознано.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	tk, ok := mapTermKey(key)
	if !ok {
		return false
	}
	t.lastSeen[tk.player][tk.action] = t.now()
	return true
}

func (t *Terminal) Poll() {
	t.Advance()
	now := t.now()
	for p := 0; p < MaxPlayers; p++ {
		for a := Action(0); a < actionCount; a++ {
			seen := t.lastSeen[p][a]
			t.Set(a, p, !seen.IsZero() && now.Sub(seen) < t.holdWindow)
		}
	}
}

func mapTermKey(ev *tcell.EventKey) (termKey, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return termKey{ActionUp, 0}, true
	case tcell.KeyDown:
		return termKey{ActionDown, 0}, true
	case tcell.KeyLeft:
		return termKey{ActionLeft, 0}, true
	case tcell.KeyRight:
		return termKey{ActionRight, 0}, true
	case tcell.KeyEnter:
		return termKey{ActionStart, 0}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return termKey{ActionQuit, 0}, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'z':
			return termKey{ActionShoot, 0}, true
		case 'p':
			return termKey{ActionPause, 0}, true
		case 'q':
			return termKey{ActionQuit, 0}, true
		case 'w':
			return termKey{ActionUp, 1}, true
		case 's':
			return termKey{ActionDown, 1}, true
		case 'a':
			return termKey{ActionLeft, 1}, true
		case 'd':
			return termKey{ActionRight, 1}, true
		case 'f':
			return termKey{ActionShoot, 1}, true
		}
	}
	return termKey{}, false
}
