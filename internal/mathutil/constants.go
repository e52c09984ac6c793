package mathutil

import "math"

// Transform table constants.
const (
	// fullTurn is one revolution in radians.
	fullTurn = 2 * math.Pi

	// halfDivisor splits a power-of-two length into its butterfly halves.
	halfDivisor = 2
)
