package audio

import (
	"go-battle-city/internal/defs"
	"go-battle-city/internal/event"
)

// Listener переводит события мира в звуковые эффекты
type Listener struct {
	sink Sink
}

func NewListener(sink Sink) *Listener {
	if sink == nil {
		sink = Nop{}
	}
	return &Listener{sink: sink}
}

// Attach подписывает слушателя на все озвучиваемые события
func (l *Listener) Attach(d *event.Dispatcher) {
	d.SubscribeAll(l,
		event.BulletFired, event.BulletHit, event.BrickDestroyed, event.BaseDestroyed,
		event.EnemyDestroyed, event.PlayerDestroyed, event.PowerUpSpawned, event.PowerUpPicked,
		event.LevelStarted, event.GameOver,
	)
}

var pickupEffects = map[defs.PowerUpType]Effect{
	defs.PowerUpTankUpgrade:  Upgrade,
	defs.PowerUpExtraLife:    ExtraLife,
	defs.PowerUpTimerBomb:    TimerBomb,
	defs.PowerUpShield:       Shield,
	defs.PowerUpClearEnemies: ClearEnemies,
}

func (l *Listener) OnEvent(e event.Event) {
	switch e.Type {
	case event.BulletFired:
		// выстрелы врагов не озвучиваются
		if d, ok := e.Data.(event.ShotData); ok && d.Owner.IsPlayer() {
			l.sink.PlaySound(TankShoot)
		}
	case event.BulletHit:
		l.sink.PlaySound(BulletHit)
	case event.BrickDestroyed:
		l.sink.PlaySound(BrickDestroy)
	case event.BaseDestroyed:
		l.sink.PlaySound(BaseDestroy)
	case event.EnemyDestroyed:
		if d, ok := e.Data.(event.EnemyDestroyedData); ok && d.ByBomb {
			return
		}
		l.sink.PlaySound(TankDestroy)
	case event.PlayerDestroyed:
		l.sink.PlaySound(TankDestroy)
	case event.PowerUpSpawned:
		l.sink.PlaySound(PowerUpAppear)
	case event.PowerUpPicked:
		effect := PowerUpPickup
		if d, ok := e.Data.(event.PowerUpData); ok {
			if mapped, ok := pickupEffects[d.Kind]; ok {
				effect = mapped
			}
		}
		l.sink.PlaySound(effect)
	case event.LevelStarted:
		l.sink.PlayMusic(false)
	case event.GameOver:
		l.sink.StopMusic()
	}
}
