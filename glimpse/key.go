package glimpse

//go:generate go tool stringer -type=Key -trimprefix=Key -output=key_string.go

// Key is a keyboard key, independent of the platform keycodes.
type Key uint16

const (
	KeyUnknown Key = iota

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)
