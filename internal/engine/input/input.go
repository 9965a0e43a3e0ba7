// Package input tracks keyboard and mouse state independent of the window backend.
package input

// Key identifies a key or mouse button the viewer reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyLeftShift
	KeyLeftControl
	KeyEscape
	KeyTab
	KeyF1
	KeyF12
	MouseLeft
	MouseRight
	MouseMiddle
	keyCount
)

var keyNames = [keyCount]string{
	"unknown", "W", "A", "S", "D", "Space", "LeftShift", "LeftControl",
	"Escape", "Tab", "F1", "F12", "MouseLeft", "MouseRight", "MouseMiddle",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// State holds which keys are held and which went down this frame.
type State struct {
	down    [keyCount]bool
	pressed [keyCount]bool
}

// New creates an empty input state.
func New() *State {
	return &State{}
}

// OnKey records a key transition. Repeats of a held key are not new presses.
func (s *State) OnKey(k Key, isDown bool) {
	if k <= KeyUnknown || k >= keyCount {
		return
	}
	if isDown && !s.down[k] {
		s.pressed[k] = true
	}
	s.down[k] = isDown
}

// Down reports whether k is currently held.
func (s *State) Down(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.down[k]
}

// Pressed reports whether k went down since the last EndFrame.
func (s *State) Pressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.pressed[k]
}

// Axis returns +1 when pos is held, -1 when neg is held, 0 for both or neither.
func (s *State) Axis(neg, pos Key) float32 {
	var v float32
	if s.Down(pos) {
		v++
	}
	if s.Down(neg) {
		v--
	}
	return v
}

// EndFrame clears per-frame presses.
func (s *State) EndFrame() {
	s.pressed = [keyCount]bool{}
}

// Reset releases every key, e.g. when the window loses focus.
func (s *State) Reset() {
	s.down = [keyCount]bool{}
	s.pressed = [keyCount]bool{}
}
