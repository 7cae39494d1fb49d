package pulse

import "errors"

var (
	ErrWindowCreationFailed  = errors.New("window creation failed")
	ErrSurfaceCreationFailed = errors.New("surface creation failed")
	ErrNoCompatibleAdapter   = errors.New("no compatible adapter")
	ErrDeviceRequestFailed   = errors.New("device request failed")
)
