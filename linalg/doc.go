// Package linalg provides the dense vector and matrix algebra used by the
// spectral and adaptive-filter packages.
//
// # Storage
//
// A [Vector] owns one contiguous, 32-byte aligned allocation of float64
// values. A [Matrix] owns a single aligned row-major block of rows×cols
// values; row i always aliases data[i*cols : (i+1)*cols], which keeps
// whole-row operations and in-place butterflies cache friendly.
//
// # Row views
//
// [Vector.View] and [Matrix.Row] hand out [RowView] values: borrowed,
// non-owning aliases onto the owner's storage. Resizing the owner bumps a
// generation counter; any later access through a view issued before the
// resize panics with [ErrStaleView] instead of reading released memory.
//
//	m := linalg.NewMatrix(2, 4)
//	row := m.Row(1)
//	row.Fill(1)      // writes through to m
//	_ = m.Resize(3, 3)
//	row.Sum()        // panics: stale view
//
// # Errors
//
// Invalid shapes passed to constructors and out-of-range indexes are
// programmer errors and panic, following gonum's mat package. Operations
// whose validity depends on data (multiplication shapes, singular
// matrices) return errors wrapping the sentinels in errors.go.
//
// # Interoperability
//
// *Matrix implements gonum's mat.Matrix interface, so it can be passed to
// mat.Det, mat.Formatted or any gonum routine. Use [Matrix.Dense] and
// [FromMat] to convert explicitly.
package linalg
