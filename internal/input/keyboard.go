package input

import "github.com/hajimehoshi/ebiten/v2"

// Keyboard источник ввода с клавиатуры окна ebiten
type Keyboard struct {
	Snapshot
	bindings [MaxPlayers]map[Action][]ebiten.Key
}

// NewKeyboard раскладка по умолчанию: стрелки и пробел для первого игрока,
// WASD и F для второго
func NewKeyboard() *Keyboard {
	return &Keyboard{
		bindings: [MaxPlayers]map[Action][]ebiten.Key{
			{
				ActionUp:    {ebiten.KeyArrowUp},
				ActionDown:  {ebiten.KeyArrowDown},
				ActionLeft:  {ebiten.KeyArrowLeft},
				ActionRight: {ebiten.KeyArrowRight},
				ActionShoot: {ebiten.KeySpace, ebiten.KeyZ},
				ActionStart: {ebiten.KeyEnter},
				ActionPause: {ebiten.KeyP},
				ActionQuit:  {ebiten.KeyEscape},
			},
			{
				ActionUp:    {ebiten.KeyW},
				ActionDown:  {ebiten.KeyS},
				ActionLeft:  {ebiten.KeyA},
				ActionRight: {ebiten.KeyD},
				ActionShoot: {ebiten.KeyF},
			},
		},
	}
}

// Poll снимает состояние клавиш; вызывается один раз за тик симуляции
func (k *Keyboard) Poll() {
	k.Advance()
	for p := 0; p < MaxPlayers; p++ {
		for a := Action(0); a < actionCount; a++ {
			down := false
			for _, key := range k.bindings[p][a] {
				if ebiten.IsKeyPressed(key) {
					down = true
					break
				}
			}
			k.Set(a, p, down)
		}
	}
}
