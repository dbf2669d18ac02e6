// Package audio turns audio batches into sound. Synth plays synthesized
// effects and looping music through the system speaker; Silent discards
// everything for headless sessions.
package audio

import "github.com/vovakirdan/breakout/internal/instruction"

// Player consumes one audio batch per frame.
type Player interface {
	Play(a instruction.Audio)
	Close() error
}

// Silent is a Player that plays nothing. It remembers the last music track
// it was asked for, which SSH sessions report in their status line.
type Silent struct {
	music instruction.Music
}

// NewSilent returns a silent player already "playing" the menu track.
func NewSilent() *Silent {
	return &Silent{music: instruction.MusicMenu}
}

func (s *Silent) Play(a instruction.Audio) {
	if a.Music != instruction.MusicNone {
		s.music = a.Music
	}
}

// Music returns the current track.
func (s *Silent) Music() instruction.Music {
	return s.music
}

func (s *Silent) Close() error { return nil }
