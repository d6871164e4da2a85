package audio

import (
	"math"
	"time"

	"go-battle-city/internal/utils"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType форма волны генератора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// oscillator генератор с линейным сдвигом частоты от freq до freqEnd
type oscillator struct {
	freq, freqEnd float64
	phase         float64
	duration      int
	position      int
	wave          WaveType
	rate          beep.SampleRate
	noise         *utils.PRNGService
}

// NewOscillator генератор постоянной частоты
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep генератор со сдвигом частоты за время звучания
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		freqEnd:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    utils.NewPRNGService(uint32(from*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.freqEnd-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope нарастание и затухание громкости
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope упрощённая огибающая: атака, удержание, затухание
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume громкость в линейной шкале; 0 глушит
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone одна нота с огибающей
type tone struct {
	from, to float64
	dur      time.Duration
	wave     WaveType
	gain     float64
}

func (t tone) streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(t.from, t.to, t.dur, t.wave, rate)
	shaped := NewEnvelope(osc, t.dur, 2*time.Millisecond, t.dur/3, rate)
	return newVolume(shaped, t.gain)
}

const ms = time.Millisecond

// voices ноты эффектов, звучат последовательно
var voices = map[Effect][]tone{
	TankMove:      {{90, 70, 60 * ms, WaveTriangle, 0.25}},
	TankShoot:     {{900, 300, 70 * ms, WaveSquare, 0.3}},
	BulletHit:     {{220, 110, 50 * ms, WaveSquare, 0.3}},
	BrickDestroy:  {{1, 1, 90 * ms, WaveNoise, 0.35}},
	BaseDestroy:   {{1, 1, 250 * ms, WaveNoise, 0.6}, {120, 40, 500 * ms, WaveTriangle, 0.6}},
	TankDestroy:   {{1, 1, 150 * ms, WaveNoise, 0.5}, {160, 60, 200 * ms, WaveTriangle, 0.4}},
	PowerUpPickup: {{660, 660, 60 * ms, WaveSquare, 0.3}, {990, 990, 90 * ms, WaveSquare, 0.3}},
	Upgrade:       {{523, 523, 60 * ms, WaveSquare, 0.3}, {659, 659, 60 * ms, WaveSquare, 0.3}, {784, 784, 120 * ms, WaveSquare, 0.3}},
	TimerBomb:     {{1200, 200, 300 * ms, WaveSine, 0.4}},
	Shield:        {{300, 900, 200 * ms, WaveSine, 0.35}},
	ClearEnemies:  {{1, 1, 400 * ms, WaveNoise, 0.6}},
	ExtraLife:     {{784, 784, 80 * ms, WaveSquare, 0.3}, {1046, 1046, 80 * ms, WaveSquare, 0.3}, {1318, 1318, 160 * ms, WaveSquare, 0.3}},
	PowerUpAppear: {{1500, 1500, 40 * ms, WaveSine, 0.25}, {1800, 1800, 40 * ms, WaveSine, 0.25}},
}

// melody короткая тема начала уровня
var melody = []tone{
	{392, 392, 120 * ms, WaveSquare, 0.25},
	{523, 523, 120 * ms, WaveSquare, 0.25},
	{659, 659, 120 * ms, WaveSquare, 0.25},
	{784, 784, 240 * ms, WaveSquare, 0.25},
	{659, 659, 120 * ms, WaveSquare, 0.25},
	{784, 784, 360 * ms, WaveSquare, 0.25},
}

func sequence(tones []tone, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		parts = append(parts, t.streamer(rate))
	}
	return beep.Seq(parts...)
}

// Synthesize готовый поток эффекта с общей громкостью volume (0..1);
// nil для неизвестного эффекта
func Synthesize(e Effect, rate beep.SampleRate, volume float64) beep.Streamer {
	tones, ok := voices[e]
	if !ok {
		return nil
	}
	return newVolume(sequence(tones, rate), volume)
}

// Melody тема уровня
func Melody(rate beep.SampleRate, volume float64) beep.Streamer {
	return newVolume(sequence(melody, rate), volume)
}

// Duration длительность эффекта
func Duration(e Effect) time.Duration {
	var d time.Duration
	for _, t := range voices[e] {
		d += t.dur
	}
	return d
}
