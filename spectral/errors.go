package spectral

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-audio-filterlab/linalg"
)

var (
	// ErrInvalidLength indicates an empty input, or a length that is not a
	// power of two where the radix-2 FFT needs one. It wraps
	// linalg.ErrInvalidLength.
	ErrInvalidLength = fmt.Errorf("spectral: %w", linalg.ErrInvalidLength)

	// ErrUnknownMethod indicates a Method value outside the defined set.
	ErrUnknownMethod = errors.New("spectral: unknown transform method")
)
