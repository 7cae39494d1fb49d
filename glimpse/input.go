package glimpse

type MouseButton uint32

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

type KeysState struct {
	// the keys that are currently marked as "pressed"
	Pressed map[Key]bool

	// keys that where just pressed during the current cycle
	JustPressed map[Key]bool

	// keys that were just released during the current cycle
	JustReleased map[Key]bool
}

func (k *KeysState) IsPressed(key Key) bool {
	return k.Pressed[key]
}

func (k *KeysState) press(key Key) {
	setTrue(&k.Pressed, key)
	setTrue(&k.JustPressed, key)
}

func (k *KeysState) release(key Key) {
	setFalse(&k.Pressed, key)
	setTrue(&k.JustReleased, key)
}

func (k *KeysState) nextTick() {
	clear(k.JustPressed)
	clear(k.JustReleased)
}

type MouseState struct {
	CursorX, CursorY float64

	// movement accumulated during the current cycle
	DeltaX, DeltaY float64

	Pressed map[MouseButton]bool

	// mouse buttons that were just clicked during the current cycle
	JustPressed map[MouseButton]bool

	// mouse buttons that were just released during the current cycle
	JustReleased map[MouseButton]bool

	hasPosition bool
}

func (m *MouseState) press(button MouseButton) {
	setTrue(&m.Pressed, button)
	setTrue(&m.JustPressed, button)
}

func (m *MouseState) release(button MouseButton) {
	setFalse(&m.Pressed, button)
	setTrue(&m.JustReleased, button)
}

func (m *MouseState) position(x, y float64) {
	// the first reported position is not a movement
	if m.hasPosition {
		m.DeltaX += x - m.CursorX
		m.DeltaY += y - m.CursorY
	}

	m.CursorX = x
	m.CursorY = y
	m.hasPosition = true
}

func (m *MouseState) nextTick() {
	clear(m.JustPressed)
	clear(m.JustReleased)

	m.DeltaX = 0
	m.DeltaY = 0
}

// InputState is the keyboard and mouse state assembled from the
// events of a window.
type InputState struct {
	Keys  KeysState
	Mouse MouseState
}

// Apply updates the input state with the given event. Events not
// describing input are ignored. Key repeats do not change the state.
func (s *InputState) Apply(ev Event) {
	switch ev.Kind {
	case KindKey:
		switch ev.Action {
		case Press:
			s.Keys.press(ev.Key)
		case Release:
			s.Keys.release(ev.Key)
		}

	case KindMouseButton:
		switch ev.Action {
		case Press:
			s.Mouse.press(ev.Button)
		case Release:
			s.Mouse.release(ev.Button)
		}

	case KindCursorMoved:
		s.Mouse.position(ev.X, ev.Y)

	case KindFocused:
		// we will not see the release events of keys held
		// while the window loses focus
		if !ev.Focused {
			clear(s.Keys.Pressed)
			clear(s.Mouse.Pressed)
		}
	}
}

// NextTick starts a new cycle, forgetting everything that
// was "just" pressed or released.
func (s *InputState) NextTick() {
	s.Keys.nextTick()
	s.Mouse.nextTick()
}

func setTrue[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = true
}

func setFalse[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = false
}
