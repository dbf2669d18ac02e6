// Package instruction defines the per-frame side-effect batches the game core
// hands to its platform: which sounds to play, which music to switch to, and
// what to draw. Independent producers each build a partial batch and the
// frame combines them with Merge; nothing is accumulated through shared state.
package instruction

// Sound is a one-shot sound effect.
type Sound uint8

const (
	SoundStart Sound = iota
	SoundHit
	SoundBlock
	SoundWin
	SoundPowerup

	NumSounds = int(SoundPowerup) + 1
)

func (s Sound) String() string {
	switch s {
	case SoundStart:
		return "start"
	case SoundHit:
		return "hit"
	case SoundBlock:
		return "block"
	case SoundWin:
		return "win"
	case SoundPowerup:
		return "powerup"
	default:
		return "unknown"
	}
}

// Music is a looping background track. MusicNone means "keep the current track".
type Music uint8

const (
	MusicNone Music = iota
	MusicMenu
	MusicGameOver
	MusicGameplay
	MusicVictory
)

func (m Music) String() string {
	switch m {
	case MusicNone:
		return "none"
	case MusicMenu:
		return "menu"
	case MusicGameOver:
		return "game over"
	case MusicGameplay:
		return "gameplay"
	case MusicVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Audio is one frame's audio batch: sounds to play in order and an optional
// music change.
type Audio struct {
	Sounds []Sound
	Music  Music
}

// Merge combines two batches. Sounds are concatenated a-then-b; the music
// change of a wins when present. Neither operand is modified.
func (a Audio) Merge(b Audio) Audio {
	music := a.Music
	if music == MusicNone {
		music = b.Music
	}
	return Audio{
		Sounds: concat(a.Sounds, b.Sounds),
		Music:  music,
	}
}

// Empty reports whether the batch requests nothing.
func (a Audio) Empty() bool {
	return len(a.Sounds) == 0 && a.Music == MusicNone
}

func concat[T any](a, b []T) []T {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
