// internal/clock/clock.go
package clock

import (
	"time"

	"go-battle-city/internal/config"
)

// FrameTime длительность одного тика симуляции
const FrameTime = time.Second / config.TickRate

// Stepper накапливает реальное время и выдаёт целое число тиков
type Stepper struct {
	accum    time.Duration
	maxTicks int
	last     time.Time
	now      func() time.Time
}

// NewStepper шаг 1/60 с, не больше MaxFrameSkip тиков за вызов
func NewStepper() *Stepper {
	return &Stepper{maxTicks: config.MaxFrameSkip, now: time.Now}
}

// SetClock подменяет источник времени (для тестов)
func (s *Stepper) SetClock(now func() time.Time) {
	s.now = now
	s.last = time.Time{}
}

// Advance добавляет dt и возвращает число тиков к исполнению и долю
// следующего тика для интерполяции. Остаток сверх лимита отбрасывается.
func (s *Stepper) Advance(dt time.Duration) (int, float64) {
	if dt > 0 {
		s.accum += dt
	}
	ticks := 0
	for s.accum >= FrameTime && ticks < s.maxTicks {
		s.accum -= FrameTime
		ticks++
	}
	if s.accum >= FrameTime {
		s.accum %= FrameTime
	}
	return ticks, float64(s.accum) / float64(FrameTime)
}

// Step Advance на время, прошедшее с прошлого вызова; первый вызов даёт 0
func (s *Stepper) Step() (int, float64) {
	now := s.now()
	if s.last.IsZero() {
		s.last = now
		return 0, 0
	}
	dt := now.Sub(s.last)
	s.last = now
	return s.Advance(dt)
}

// Pending накопленное, но не истраченное время
func (s *Stepper) Pending() time.Duration {
	return s.accum
}
