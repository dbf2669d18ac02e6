package input

import "time"

// Snapshot is the read-only input state for one frame.
type Snapshot struct {
	Held    ActionSet // down since an earlier frame
	Pressed ActionSet // went down since the previous frame
	Closed  bool      // the window or session asked to close
}

// Down reports whether a is currently down, newly or not.
func (s Snapshot) Down(a Action) bool {
	return s.Held.Union(s.Pressed).Has(a)
}

// JustPressed reports whether a went down since the previous frame.
func (s Snapshot) JustPressed(a Action) bool {
	return s.Pressed.Has(a)
}

// Tracker accumulates key events between frames and distinguishes newly
// pressed actions from held ones. Platforms call Press/Release as events
// arrive, read Snapshot once per frame, then call Advance.
//
// Terminals never report key releases, so they call Expire each frame to
// release actions that have not been repeated recently. Autorepeat starts
// well after the first key event, so an action waits longer for its first
// repeat than between later ones.
type Tracker struct {
	held     ActionSet
	pressed  ActionSet
	released ActionSet // pressed and released within the same frame
	repeated ActionSet // down and repeated at least once since going down
	closed   bool
	lastSeen [numActions]time.Time
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Press records that an action went down at the given time. Repeats of an
// action that is already down only refresh its hold timer.
func (t *Tracker) Press(a Action, at time.Time) {
	t.lastSeen[a] = at
	t.released = t.released.Without(a)
	if t.held.Has(a) || t.pressed.Has(a) {
		t.repeated = t.repeated.With(a)
		return
	}
	t.repeated = t.repeated.Without(a)
	t.pressed = t.pressed.With(a)
}

// PressAll records several actions bound to the same key.
func (t *Tracker) PressAll(s ActionSet, at time.Time) {
	for _, a := range s.Actions() {
		t.Press(a, at)
	}
}

// Release records that an action went up. An action pressed and released
// within one frame is still reported as newly pressed for that frame.
func (t *Tracker) Release(a Action) {
	t.held = t.held.Without(a)
	t.repeated = t.repeated.Without(a)
	if t.pressed.Has(a) {
		t.released = t.released.With(a)
	}
}

// ReleaseAll releases every action in s.
func (t *Tracker) ReleaseAll(s ActionSet) {
	for _, a := range s.Actions() {
		t.Release(a)
	}
}

// Expire releases every down action not seen recently. An action that has
// not repeated yet may go quiet for up to delay; once it repeats, for up to
// timeout.
func (t *Tracker) Expire(now time.Time, delay, timeout time.Duration) {
	for _, a := range t.held.Union(t.pressed).Actions() {
		limit := delay
		if t.repeated.Has(a) {
			limit = timeout
		}
		if now.Sub(t.lastSeen[a]) > limit {
			t.Release(a)
		}
	}
}

// Close marks the input source as closed.
func (t *Tracker) Close() {
	t.closed = true
}

// Snapshot returns the input state for the current frame.
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{Held: t.held, Pressed: t.pressed, Closed: t.closed}
}

// Advance ends the frame: newly pressed actions that are still down become held.
func (t *Tracker) Advance() {
	t.held = t.held.Union(t.pressed &^ t.released)
	t.pressed = 0
	t.released = 0
}
