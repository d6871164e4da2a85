package audio

import (
	"fmt"
	"sync"
	"time"

	"go-battle-city/internal/config"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const sampleRate = beep.SampleRate(44100)

// BeepSink синтезатор поверх динамика beep
type BeepSink struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	music  *beep.Ctrl
	volume float64
	rate   beep.SampleRate
	// last момент последнего запуска эффекта: одинаковые эффекты
	// в пределах одного кадра не накладываются
	last   map[Effect]time.Time
	logger zerolog.Logger
}

// NewBeepSink открывает динамик
func NewBeepSink(volume float64, logger zerolog.Logger) (*BeepSink, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	s := &BeepSink{
		mixer:  &beep.Mixer{},
		volume: volume,
		rate:   sampleRate,
		last:   make(map[Effect]time.Time),
		logger: logger.With().Str("component", "audio").Logger(),
	}
	speaker.Play(s.mixer)
	return s, nil
}

// New звук по настройкам: при выключенном звуке или ошибке устройства Nop
func New(settings config.AudioSettings, logger zerolog.Logger) Sink {
	if !settings.Enabled {
		return Nop{}
	}
	s, err := NewBeepSink(settings.Volume, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Audio disabled")
		return Nop{}
	}
	return s
}

func (s *BeepSink) PlaySound(e Effect) {
	st := Synthesize(e, s.rate, s.volume)
	if st == nil {
		return
	}
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.Sub(s.last[e]) < time.Second/config.TickRate {
		return
	}
	s.last[e] = now
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *BeepSink) PlayMusic(loop bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	speaker.Lock()
	defer speaker.Unlock()
	if s.music != nil {
		s.music.Paused = true
	}
	var st beep.Streamer = Melody(s.rate, s.volume)
	if loop {
		st = beep.Loop(-1, beep.Seq(Melody(s.rate, s.volume), beep.Silence(s.rate.N(time.Second))))
	}
	s.music = &beep.Ctrl{Streamer: st}
	s.mixer.Add(s.music)
}

func (s *BeepSink) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.music == nil {
		return
	}
	speaker.Lock()
	s.music.Paused = true
	speaker.Unlock()
	s.music = nil
}

// Close останавливает весь звук
func (s *BeepSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.music = nil
}
