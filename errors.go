package bokeh

import "errors"

// Errors returned by Blur and BlurMasked. All failures are precondition
// violations of the pure computation, so there is nothing to retry; callers
// match with errors.Is and fix the inputs.
var (
	// ErrParamTable reports a malformed kernel parameter table: empty, or
	// one whose family energy is non-finite or not positive, so the kernels
	// cannot be normalized to preserve brightness.
	ErrParamTable = errors.New("bokeh: malformed kernel parameter table")

	// ErrDimensions reports a geometry mismatch: pixel buffer length not
	// equal to width*height, mask length not equal to the pixel count, a
	// sample count below 1, or an image too small to hold the kernel.
	ErrDimensions = errors.New("bokeh: dimension mismatch")

	// ErrGamma reports a gamma value that would produce non-finite encoded
	// samples. Gamma must be positive and finite.
	ErrGamma = errors.New("bokeh: invalid gamma")
)
