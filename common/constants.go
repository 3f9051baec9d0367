package common

const (
	// BaseWidth and BaseHeight size the window before the first resize.
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed tick rate every per-tick constant is tuned for.
	TPS = 60
)
