package rls

import (
	"fmt"

	"github.com/tphakala/go-audio-filterlab/linalg"
)

// SolveNormal fits taps FIR weights in one batch by solving the normal
// equations h = (UᵀU)⁻¹·Uᵀ·d, where U is the N×M causal convolution matrix
// of u and N is the shorter of the two series.
//
// It fails with ErrInvalidArgument unless 0 < taps <= N, and propagates
// linalg.ErrSingularMatrix when the input does not excite every tap.
func SolveNormal(u, d linalg.Reader, taps int) (*linalg.Vector, error) {
	n := min(u.Len(), d.Len())
	if taps <= 0 || taps > n {
		return nil, fmt.Errorf("%w: %d taps for %d samples", ErrInvalidArgument, taps, n)
	}

	// ut[m][m+j] = u[j]: row m is the input delayed by m samples.
	ut := linalg.NewMatrix(taps, n)
	for m := range taps {
		row := ut.Row(m)
		for j := 0; j+m < n; j++ {
			row.Set(m+j, u.At(j))
		}
	}

	gram, err := ut.Multiply(ut.Transpose())
	if err != nil {
		return nil, err
	}
	inv, err := gram.Inverse()
	if err != nil {
		return nil, fmt.Errorf("rls: normal equations: %w", err)
	}

	dv := linalg.VectorFrom(d).Slice(0, n)
	rhs := linalg.NewVector(taps)
	for m := range taps {
		rhs.Set(m, ut.Row(m).Dot(dv))
	}

	h := linalg.NewVector(taps)
	for m := range taps {
		h.Set(m, inv.Row(m).Dot(rhs))
	}
	return h, nil
}
