package iir

import "errors"

var (
	// ErrInvalidParameter indicates a non-positive sample rate or quality
	// factor, or a corner frequency outside (0, sampleRate/2).
	ErrInvalidParameter = errors.New("iir: invalid parameter")

	// ErrUnknownKind indicates a Kind value outside the defined set.
	ErrUnknownKind = errors.New("iir: unknown filter kind")
)
