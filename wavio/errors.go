package wavio

import "errors"

var (
	// ErrInvalidFile indicates a file that cannot be opened, created or
	// parsed as WAV.
	ErrInvalidFile = errors.New("wavio: invalid WAV file")

	// ErrInvalidFormat indicates an unsupported or inconsistent sample
	// format: non-PCM encodings, unsupported bit depths, or sample counts
	// that do not divide into whole frames.
	ErrInvalidFormat = errors.New("wavio: invalid sample format")
)
