package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/breakout/internal/instruction"
)

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	tn := newTone(note{freq: 440, dur: 100 * time.Millisecond}, waveSine, 0.5, rate)

	total := 0
	samples := make([][2]float64, 512)
	for {
		n, ok := tn.Stream(samples)
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -0.5 || samples[i][0] > 0.5 {
				t.Errorf("sample %d out of gain range: %f", total+i, samples[i][0])
			}
		}
		total += n
	}

	if want := rate.N(100 * time.Millisecond); total != want {
		t.Errorf("streamed %d samples, expected %d", total, want)
	}
	if tn.Err() != nil {
		t.Errorf("unexpected error: %v", tn.Err())
	}
}

func TestToneSquareValues(t *testing.T) {
	tn := newTone(note{freq: 220, dur: 50 * time.Millisecond}, waveSquare, 1, beep.SampleRate(44100))
	tn.attack, tn.release = 0, 0

	samples := make([][2]float64, 100)
	n, _ := tn.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != 1 && v != -1 {
			t.Errorf("square sample %d = %f, expected ±1", i, v)
		}
	}
}

func TestRestIsSilent(t *testing.T) {
	tn := newTone(note{freq: 0, dur: 20 * time.Millisecond}, waveSine, 1, beep.SampleRate(44100))

	samples := make([][2]float64, 256)
	n, _ := tn.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 {
			t.Fatalf("rest sample %d = %f, expected 0", i, samples[i][0])
		}
	}
}

func TestEveryIdentifierHasAVoice(t *testing.T) {
	for snd := instruction.Sound(0); int(snd) < instruction.NumSounds; snd++ {
		if _, ok := soundVoices[snd]; !ok {
			t.Errorf("sound %s has no voice", snd)
		}
	}
	for _, m := range []instruction.Music{
		instruction.MusicMenu,
		instruction.MusicGameplay,
		instruction.MusicGameOver,
		instruction.MusicVictory,
	} {
		if _, ok := musicVoices[m]; !ok {
			t.Errorf("music %s has no voice", m)
		}
	}
}

func TestSynthCachesBuffers(t *testing.T) {
	s := newSynth()

	s.Play(instruction.Audio{Sounds: []instruction.Sound{instruction.SoundHit, instruction.SoundHit, instruction.SoundBlock}})

	if got := s.sounds.Len(); got != 2 {
		t.Errorf("cached %d sounds, expected 2", got)
	}
	if got := s.mixer.Len(); got != 3 {
		t.Errorf("mixer has %d streams, expected 3", got)
	}

	first := s.soundBuffer(instruction.SoundHit)
	if again := s.soundBuffer(instruction.SoundHit); again != first {
		t.Error("expected the cached buffer to be reused")
	}
	if first.Len() != format.SampleRate.N(40*time.Millisecond) {
		t.Errorf("hit buffer has %d samples", first.Len())
	}
}

func TestSynthSwitchesMusic(t *testing.T) {
	s := newSynth()

	s.Play(instruction.Audio{Music: instruction.MusicGameplay})
	if s.Track() != instruction.MusicGameplay {
		t.Fatalf("track = %s, expected gameplay", s.Track())
	}
	old := s.music

	s.Play(instruction.Audio{Music: instruction.MusicGameOver})
	if s.Track() != instruction.MusicGameOver {
		t.Errorf("track = %s, expected game over", s.Track())
	}
	if old.Streamer != nil {
		t.Error("previous track should be detached")
	}

	// No music change keeps the current track.
	s.Play(instruction.Audio{Sounds: []instruction.Sound{instruction.SoundWin}})
	if s.Track() != instruction.MusicGameOver {
		t.Errorf("track = %s, expected it unchanged", s.Track())
	}
}

func TestSynthClosed(t *testing.T) {
	s := newSynth()
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	s.Play(instruction.Audio{Sounds: []instruction.Sound{instruction.SoundHit}})
	if s.mixer.Len() != 0 {
		t.Error("a closed synth should not queue sounds")
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestSilent(t *testing.T) {
	var p Player = NewSilent()
	p.Play(instruction.Audio{Music: instruction.MusicVictory})
	p.Play(instruction.Audio{Sounds: []instruction.Sound{instruction.SoundHit}})

	if got := p.(*Silent).Music(); got != instruction.MusicVictory {
		t.Errorf("Music() = %s, expected victory", got)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
