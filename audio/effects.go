// Package audio synthesizes the short sound effects used by the games:
// a victory chime, a defeat buzz, and a blip for scene resets. Effects
// are generated procedurally as beep streamers, so no sample assets are
// required.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Config controls synthesis parameters shared by all effects.
type Config struct {
	SampleRate   int
	MasterVolume float64
}

// DefaultConfig is the standard playback configuration.
var DefaultConfig = Config{
	SampleRate:   44100,
	MasterVolume: 0.8,
}

// Wave selects an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Saw
)

// tone is a fixed-length oscillator with a linear attack/release envelope
// applied in place, which keeps the effect streamers to a single type.
type tone struct {
	wave     Wave
	freq     float64
	phase    float64
	rate     beep.SampleRate
	position int
	total    int
	attack   int
	release  int
}

// Tone creates a shaped note of the given frequency and duration. Attack
// and release are clamped into the duration.
func Tone(wave Wave, freq float64, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		att = total / 2
		rel = total - att
	}
	return &tone{
		wave:    wave,
		freq:    freq,
		rate:    rate,
		total:   total,
		attack:  att,
		release: rel,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case Sine:
			val = math.Sin(2 * math.Pi * t.phase)
		case Square:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case Saw:
			val = 2 * (t.phase - 0.5)
		}

		val *= t.gain()

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// gain returns the envelope gain at the current position.
func (t *tone) gain() float64 {
	if t.attack > 0 && t.position < t.attack {
		return float64(t.position) / float64(t.attack)
	}
	if t.release > 0 && t.position >= t.total-t.release {
		return float64(t.total-t.position) / float64(t.release)
	}
	return 1
}

// withVolume scales a streamer by a linear volume. Zero or negative
// volume silences it, since a log-scaled volume of zero is undefined.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Victory is a rising two-note square chime, played when the player spots
// the enemy first.
func Victory(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	low := Tone(Square, 987.77, 90*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond, rate)
	high := Tone(Square, 1318.51, 160*time.Millisecond, 5*time.Millisecond, 90*time.Millisecond, rate)
	return withVolume(beep.Seq(low, high), 0.5*cfg.MasterVolume)
}

// Defeat is a low saw buzz, played when the enemy spots the player first.
func Defeat(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	buzz := Tone(Saw, 110, 350*time.Millisecond, 5*time.Millisecond, 200*time.Millisecond, rate)
	return withVolume(buzz, 0.6*cfg.MasterVolume)
}

// Blip is a short sine tick, played when a scene resets its walls.
func Blip(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	tick := Tone(Sine, 880, 50*time.Millisecond, 2*time.Millisecond, 25*time.Millisecond, rate)
	return withVolume(tick, 0.4*cfg.MasterVolume)
}
