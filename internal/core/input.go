package core

import "strings"

// Action represents a semantic game action, abstracted from physical keys.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A - move left while held
	ActionRight        // Right arrow, D - move right while held
	ActionShoot        // Space, J - fire while held
	ActionPause        // P - toggle pause, edge-triggered
	ActionMute         // M - toggle sound, edge-triggered
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionShoot:
		return "Shoot"
	case ActionPause:
		return "Pause"
	case ActionMute:
		return "Mute"
	default:
		return "Unknown"
	}
}

// Bindings maps each action to the key names that trigger it.
// Key names follow Bubble Tea's KeyMsg.String() (lowercased).
type Bindings map[Action][]string

// DefaultBindings returns the classic keyboard layout.
func DefaultBindings() Bindings {
	return Bindings{
		ActionLeft:  {"left", "a"},
		ActionRight: {"right", "d"},
		ActionShoot: {" ", "space", "j"},
		ActionPause: {"p"},
		ActionMute:  {"m"},
	}
}

// Intent is the per-tick snapshot of what the player wants to do.
// Left, Right and Shoot are true while held; Pause and Mute are true only on
// the tick their key went down.
type Intent struct {
	Left  bool
	Right bool
	Shoot bool
	Pause bool
	Mute  bool
}

// IntentPatch is a partial Intent override. Nil fields are left untouched.
type IntentPatch struct {
	Left  *bool
	Right *bool
	Shoot *bool
	Pause *bool
	Mute  *bool
}

// Bool returns a pointer to b, for building an IntentPatch.
func Bool(b bool) *bool {
	return &b
}

// Input tracks held and just-pressed keys and resolves them into an Intent.
// It is not safe for concurrent use; the platform feeds it from the same
// goroutine that runs the simulation.
type Input struct {
	bindings    Bindings
	keys        map[string]struct{}
	justPressed map[string]struct{}
	intent      Intent
}

// NewInput creates an input resolver with the given bindings.
// Nil bindings select DefaultBindings.
func NewInput(bindings Bindings) *Input {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Input{
		bindings:    bindings,
		keys:        make(map[string]struct{}),
		justPressed: make(map[string]struct{}),
	}
}

// Press records a key going down. A key that is already held does not
// count as just pressed again.
func (in *Input) Press(key string) {
	key = strings.ToLower(key)
	if _, held := in.keys[key]; !held {
		in.justPressed[key] = struct{}{}
	}
	in.keys[key] = struct{}{}
	in.resolve()
}

// Release records a key going up.
func (in *Input) Release(key string) {
	key = strings.ToLower(key)
	delete(in.keys, key)
	delete(in.justPressed, key)
	in.resolve()
}

// IsPressed reports whether key is currently held.
func (in *Input) IsPressed(key string) bool {
	_, ok := in.keys[strings.ToLower(key)]
	return ok
}

// WasJustPressed reports whether key went down since the last ClearJustPressed.
func (in *Input) WasJustPressed(key string) bool {
	_, ok := in.justPressed[strings.ToLower(key)]
	return ok
}

// Snapshot returns a copy of the current intent.
func (in *Input) Snapshot() Intent {
	return in.intent
}

// ClearJustPressed drops edge-triggered state. Call once per tick after the
// snapshot has been consumed.
func (in *Input) ClearJustPressed() {
	clear(in.justPressed)
	in.intent.Pause = false
	in.intent.Mute = false
}

// SetInput overrides parts of the intent programmatically (touch or mouse
// drag). The override lasts until the next key event recomputes the intent.
func (in *Input) SetInput(p IntentPatch) {
	if p.Left != nil {
		in.intent.Left = *p.Left
	}
	if p.Right != nil {
		in.intent.Right = *p.Right
	}
	if p.Shoot != nil {
		in.intent.Shoot = *p.Shoot
	}
	if p.Pause != nil {
		in.intent.Pause = *p.Pause
	}
	if p.Mute != nil {
		in.intent.Mute = *p.Mute
	}
}

// Clear resets all key and intent state.
func (in *Input) Clear() {
	clear(in.keys)
	clear(in.justPressed)
	in.intent = Intent{}
}

func (in *Input) resolve() {
	in.intent.Left = in.anyHeld(ActionLeft)
	in.intent.Right = in.anyHeld(ActionRight)
	in.intent.Shoot = in.anyHeld(ActionShoot)
	in.intent.Pause = in.anyJustPressed(ActionPause)
	in.intent.Mute = in.anyJustPressed(ActionMute)
}

func (in *Input) anyHeld(a Action) bool {
	for _, k := range in.bindings[a] {
		if _, ok := in.keys[k]; ok {
			return true
		}
	}
	return false
}

func (in *Input) anyJustPressed(a Action) bool {
	for _, k := range in.bindings[a] {
		if _, ok := in.justPressed[k]; ok {
			return true
		}
	}
	return false
}
