package wavefront

import "errors"

// Sentinel errors for the configuration failures a render call refuses to
// run with. Callers should compare against these with errors.Is rather than
// string-matching Error().
var (
	// ErrInvalidConfiguration is returned when the image has a zero
	// dimension or samplesPerPixel is zero.
	ErrInvalidConfiguration = errors.New("wavefront: invalid render configuration")

	// ErrNoCamera is returned when render is called without a camera.
	ErrNoCamera = errors.New("wavefront: no camera set")
)
