// Package input turns platform key events into per-frame action snapshots.
//
// Actions are semantic intents abstracted from physical keys. A platform may
// bind one key to several actions (the P key both starts a game from the menu
// and toggles pause); each screen only looks at the actions it understands.
package input

import "strings"

// Action represents a semantic game action.
type Action uint8

const (
	ActionLeft         Action = iota // A, Left arrow - move paddle left, previous value in settings
	ActionRight                      // D, Right arrow - move paddle right, next value in settings
	ActionUp                         // W, Up arrow - previous setting
	ActionDown                       // S, Down arrow - next setting
	ActionConfirm                    // Enter - apply settings
	ActionPlay                       // P - start a game from the menu
	ActionPause                      // P - pause or resume
	ActionLaunch                     // L - launch the ball
	ActionQuit                       // Q - quit from the menu or end screens
	ActionInstructions               // I - show instructions
	ActionSettings                   // S - open settings
	ActionMenu                       // M - back to the menu
	ActionRestart                    // R - restart after a game ends

	numActions
)

var actionNames = [numActions]string{
	ActionLeft:         "Left",
	ActionRight:        "Right",
	ActionUp:           "Up",
	ActionDown:         "Down",
	ActionConfirm:      "Confirm",
	ActionPlay:         "Play",
	ActionPause:        "Pause",
	ActionLaunch:       "Launch",
	ActionQuit:         "Quit",
	ActionInstructions: "Instructions",
	ActionSettings:     "Settings",
	ActionMenu:         "Menu",
	ActionRestart:      "Restart",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < numActions {
		return actionNames[a]
	}
	return "Unknown"
}

// ActionSet is a set of actions stored as a bitmask. The zero value is empty.
type ActionSet uint32

// NewActionSet builds a set from the given actions.
func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

// With returns the set with a added.
func (s ActionSet) With(a Action) ActionSet {
	return s | 1<<a
}

// Without returns the set with a removed.
func (s ActionSet) Without(a Action) ActionSet {
	return s &^ (1 << a)
}

// Union returns the actions present in either set.
func (s ActionSet) Union(o ActionSet) ActionSet {
	return s | o
}

// Empty reports whether the set has no actions.
func (s ActionSet) Empty() bool {
	return s == 0
}

// Actions lists the members in declaration order.
func (s ActionSet) Actions() []Action {
	var out []Action
	for a := Action(0); a < numActions; a++ {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// String formats the set as "{Left,Pause}".
func (s ActionSet) String() string {
	names := make([]string, 0, numActions)
	for _, a := range s.Actions() {
		names = append(names, a.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
