// internal/audio/audio.go
package audio

// Effect звуковой эффект игры
type Effect int

const (
	TankMove Effect = iota
	TankShoot
	BulletHit
	BrickDestroy
	BaseDestroy
	TankDestroy
	PowerUpPickup
	Upgrade
	TimerBomb
	Shield
	ClearEnemies
	ExtraLife
	PowerUpAppear
	effectCount
)

var effectNames = [effectCount]string{
	"TankMove", "TankShoot", "BulletHit", "BrickDestroy", "BaseDestroy", "TankDestroy",
	"PowerUpPickup", "Upgrade", "TimerBomb", "Shield", "ClearEnemies", "ExtraLife", "PowerUpAppear",
}

func (e Effect) String() string {
	if e < 0 || e >= effectCount {
		return "Unknown"
	}
	return effectNames[e]
}

// Sink приёмник звука. Реализации не блокируют вызывающего.
type Sink interface {
	PlaySound(e Effect)
	PlayMusic(loop bool)
	StopMusic()
}

// Nop глушит весь звук
type Nop struct{}

func (Nop) PlaySound(Effect) {}
func (Nop) PlayMusic(bool)   {}
func (Nop) StopMusic()       {}
