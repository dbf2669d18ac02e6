package input

import "time"

// Binding maps platform keys to the actions they trigger. K is the
// platform's key type.
type Binding[K comparable] struct {
	Keys    []K
	Actions ActionSet
}

// DownActions returns the actions of every binding with at least one key down.
func DownActions[K comparable](bindings []Binding[K], isDown func(K) bool) ActionSet {
	var s ActionSet
	for _, b := range bindings {
		for _, k := range b.Keys {
			if isDown(k) {
				s = s.Union(b.Actions)
				break
			}
		}
	}
	return s
}

// Sync makes the set of down actions equal to down, for platforms that poll
// key state instead of delivering events.
func (t *Tracker) Sync(down ActionSet, at time.Time) {
	t.ReleaseAll(t.held.Union(t.pressed) &^ down)
	t.PressAll(down, at)
}
