package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/breakout/internal/instruction"
)

// waveType selects an oscillator shape.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveTriangle
)

// note is one pitch held for a duration. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// tone is a finite oscillator with a short attack and a linear release.
type tone struct {
	freq    float64
	wave    waveType
	gain    float64
	rate    beep.SampleRate
	total   int
	attack  int
	release int
	pos     int
	phase   float64
}

func newTone(n note, wave waveType, gain float64, rate beep.SampleRate) *tone {
	total := rate.N(n.dur)
	return &tone{
		freq:    n.freq,
		wave:    wave,
		gain:    gain,
		rate:    rate,
		total:   total,
		attack:  min(rate.N(5*time.Millisecond), total/4),
		release: total / 3,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for n < len(samples) && t.pos < t.total {
		v := t.gain * t.envelope() * t.sample()
		samples[n][0] = v
		samples[n][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

func (t *tone) sample() float64 {
	if t.freq == 0 {
		return 0
	}
	switch t.wave {
	case waveSquare:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case waveTriangle:
		return 4*math.Abs(t.phase-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}

func (t *tone) envelope() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if left := t.total - t.pos; t.release > 0 && left < t.release {
		return float64(left) / float64(t.release)
	}
	return 1
}

// Pitches, equal temperament.
const (
	pitchC4 = 261.63
	pitchE4 = 329.63
	pitchG4 = 392.00
	pitchA4 = 440.00
	pitchC5 = 523.25
	pitchD5 = 587.33
	pitchE5 = 659.25
	pitchG5 = 783.99
	pitchA5 = 880.00
	pitchC6 = 1046.50
)

func notes(d time.Duration, freqs ...float64) []note {
	out := make([]note, len(freqs))
	for i, f := range freqs {
		out[i] = note{freq: f, dur: d}
	}
	return out
}

// voice is a rendered phrase: its notes, wave shape and gain.
type voice struct {
	notes []note
	wave  waveType
	gain  float64
}

var soundVoices = map[instruction.Sound]voice{
	instruction.SoundStart:   {notes(60*time.Millisecond, pitchC5, pitchE5, pitchG5), waveSquare, 0.15},
	instruction.SoundHit:     {notes(40*time.Millisecond, pitchA4), waveSquare, 0.2},
	instruction.SoundBlock:   {notes(60*time.Millisecond, pitchA5), waveSine, 0.3},
	instruction.SoundWin:     {notes(120*time.Millisecond, pitchC5, pitchE5, pitchG5, pitchC6), waveTriangle, 0.3},
	instruction.SoundPowerup: {notes(35*time.Millisecond, pitchE5, pitchA5, pitchC6), waveSine, 0.3},
}

var musicVoices = map[instruction.Music]voice{
	instruction.MusicMenu: {
		notes(250*time.Millisecond, pitchC4, pitchE4, pitchG4, pitchE4, pitchA4, pitchG4, pitchE4, 0),
		waveTriangle, 0.12,
	},
	instruction.MusicGameplay: {
		notes(150*time.Millisecond, pitchC5, pitchG4, pitchE5, pitchG4, pitchD5, pitchG4, pitchE5, pitchC5),
		waveSquare, 0.06,
	},
	instruction.MusicGameOver: {
		notes(400*time.Millisecond, pitchG4, pitchE4, pitchC4, 0),
		waveTriangle, 0.12,
	},
	instruction.MusicVictory: {
		notes(180*time.Millisecond, pitchC5, pitchE5, pitchG5, pitchE5, pitchC6, 0, pitchG5, pitchC6),
		waveTriangle, 0.1,
	},
}

// render plays a voice into a buffer once.
func render(v voice, format beep.Format) *beep.Buffer {
	buf := beep.NewBuffer(format)
	for _, n := range v.notes {
		buf.Append(newTone(n, v.wave, v.gain, format.SampleRate))
	}
	return buf
}
