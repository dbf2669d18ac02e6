package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/breakout/internal/instruction"
)

const sampleRate = beep.SampleRate(44100)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Synth plays synthesized effects over a looping music track. Rendered
// buffers are cached per sound and per track, so each is generated once.
type Synth struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	music  *beep.Ctrl
	track  instruction.Music
	live   bool // the mixer is attached to the speaker
	closed bool
	logger *log.Logger

	sounds *intmap.Map[uint32, *beep.Buffer]
	tracks *intmap.Map[uint32, *beep.Buffer]
}

// SynthOption configures a Synth.
type SynthOption func(*Synth)

// WithSynthLogger sets the logger for playback events.
func WithSynthLogger(l *log.Logger) SynthOption {
	return func(s *Synth) {
		if l != nil {
			s.logger = l
		}
	}
}

func newSynth(opts ...SynthOption) *Synth {
	s := &Synth{
		mixer:  &beep.Mixer{},
		logger: log.New(io.Discard),
		sounds: intmap.New[uint32, *beep.Buffer](instruction.NumSounds),
		tracks: intmap.New[uint32, *beep.Buffer](4),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSynth opens the speaker and starts the menu music.
func NewSynth(opts ...SynthOption) (*Synth, error) {
	s := newSynth(opts...)

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.live = true

	s.Play(instruction.Audio{Music: instruction.MusicMenu})
	return s, nil
}

// Play queues the batch's sounds and switches music if one is requested.
func (s *Synth) Play(a instruction.Audio) {
	if a.Empty() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	streams := make([]beep.Streamer, 0, len(a.Sounds))
	for _, snd := range a.Sounds {
		buf := s.soundBuffer(snd)
		if buf == nil {
			s.logger.Warn("unknown sound", "sound", snd)
			continue
		}
		streams = append(streams, buf.Streamer(0, buf.Len()))
	}

	var next *beep.Ctrl
	if a.Music != instruction.MusicNone {
		if buf := s.trackBuffer(a.Music); buf != nil {
			next = &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
		}
	}

	s.lockSpeaker()
	s.mixer.Add(streams...)
	if next != nil {
		if s.music != nil {
			s.music.Streamer = nil
		}
		s.music = next
		s.track = a.Music
		s.mixer.Add(next)
	}
	s.unlockSpeaker()

	if next != nil {
		s.logger.Debug("music changed", "track", a.Music)
	}
}

// Track returns the music currently playing.
func (s *Synth) Track() instruction.Music {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.track
}

// Close silences the mixer and closes the speaker.
func (s *Synth) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	s.lockSpeaker()
	s.mixer.Clear()
	s.unlockSpeaker()

	if s.live {
		speaker.Close()
	}
	return nil
}

func (s *Synth) lockSpeaker() {
	if s.live {
		speaker.Lock()
	}
}

func (s *Synth) unlockSpeaker() {
	if s.live {
		speaker.Unlock()
	}
}

func (s *Synth) soundBuffer(snd instruction.Sound) *beep.Buffer {
	key := uint32(snd)
	if buf, ok := s.sounds.Get(key); ok {
		return buf
	}
	v, ok := soundVoices[snd]
	if !ok {
		return nil
	}
	buf := render(v, format)
	s.sounds.Put(key, buf)
	return buf
}

func (s *Synth) trackBuffer(m instruction.Music) *beep.Buffer {
	key := uint32(m)
	if buf, ok := s.tracks.Get(key); ok {
		return buf
	}
	v, ok := musicVoices[m]
	if !ok {
		return nil
	}
	buf := render(v, format)
	s.tracks.Put(key, buf)
	return buf
}
