package linalg

import "fmt"

// RowView is a borrowed, non-owning alias onto a contiguous segment of a
// Vector or Matrix. It never allocates or frees storage.
//
// A view is valid until its owner is resized. Every method checks the
// owner's generation and panics with ErrStaleView once the view is out of
// date. Writes through a valid view are visible to the owner.
type RowView struct {
	data  []float64
	owner *uint64
	gen   uint64
}

// valid returns the aliased slice or panics if the owner moved on.
func (r RowView) valid() []float64 {
	if r.owner != nil && *r.owner != r.gen {
		panic(fmt.Errorf("%w: issued at generation %d, owner at %d", ErrStaleView, r.gen, *r.owner))
	}
	return r.data
}

// Valid reports whether the view still aliases its owner's live storage.
func (r RowView) Valid() bool {
	return r.owner == nil || *r.owner == r.gen
}

// Len returns the number of aliased elements.
func (r RowView) Len() int { return len(r.valid()) }

// At returns element i.
func (r RowView) At(i int) float64 {
	s := r.valid()
	checkIndex(i, len(s))
	return s[i]
}

// Set stores x at index i.
func (r RowView) Set(i int, x float64) {
	s := r.valid()
	checkIndex(i, len(s))
	s[i] = x
}

// Values returns a copy of the aliased elements.
func (r RowView) Values() []float64 {
	s := r.valid()
	out := make([]float64, len(s))
	copy(out, s)
	return out
}

// CopyFrom copies the overlapping prefix of src into the view.
func (r RowView) CopyFrom(src Reader) int { return copy(r.valid(), rawOf(src)) }

// CopyTo copies the overlapping prefix of the view into dst.
func (r RowView) CopyTo(dst []float64) int { return copy(dst, r.valid()) }

// Fill sets every element to x.
func (r RowView) Fill(x float64) {
	s := r.valid()
	for i := range s {
		s[i] = x
	}
}

// PushFront behaves like Vector.PushFront on the aliased segment.
func (r RowView) PushFront(x float64) float64 { return pushFront(r.valid(), x) }

// PushBack behaves like Vector.PushBack on the aliased segment.
func (r RowView) PushBack(x float64) float64 { return pushBack(r.valid(), x) }

// AddScalar adds s to every element.
func (r RowView) AddScalar(s float64) { addScalar(r.valid(), s) }

// SubScalar subtracts s from every element.
func (r RowView) SubScalar(s float64) { subScalar(r.valid(), s) }

// MulScalar multiplies every element by s.
func (r RowView) MulScalar(s float64) { mulScalar(r.valid(), s) }

// DivScalar divides every element by s.
func (r RowView) DivScalar(s float64) { divScalar(r.valid(), s) }

// Elementwise operations run over the shorter of the view and other.

// Add adds other elementwise.
func (r RowView) Add(other Reader) { addVec(r.valid(), rawOf(other)) }

// Sub subtracts other elementwise.
func (r RowView) Sub(other Reader) { subVec(r.valid(), rawOf(other)) }

// Mul multiplies by other elementwise.
func (r RowView) Mul(other Reader) { mulVec(r.valid(), rawOf(other)) }

// Div divides by other elementwise.
func (r RowView) Div(other Reader) { divVec(r.valid(), rawOf(other)) }

// AddScaled adds alpha·other elementwise.
func (r RowView) AddScaled(alpha float64, other Reader) { axpy(r.valid(), alpha, rawOf(other)) }

// Reductions behave like their Vector counterparts: Sum of an empty view is
// 0, Average is NaN, and Max, Min and their Abs and Index forms panic.

// Sum returns the sum of all elements.
func (r RowView) Sum() float64 { return sum(r.valid()) }

// Average returns Sum()/Len().
func (r RowView) Average() float64 { return average(r.valid()) }

// Norm returns the Euclidean norm.
func (r RowView) Norm() float64 { return norm(r.valid()) }

// Dot returns the dot product over the shorter of the two lengths.
func (r RowView) Dot(other Reader) float64 { return dot(r.valid(), rawOf(other)) }

// Max returns the largest element.
func (r RowView) Max() float64 { return maxValue(r.valid()) }

// Min returns the smallest element.
func (r RowView) Min() float64 { return minValue(r.valid()) }

// MaxAbs returns the largest absolute value.
func (r RowView) MaxAbs() float64 { return maxAbs(r.valid()) }

// MinAbs returns the smallest absolute value.
func (r RowView) MinAbs() float64 { return minAbs(r.valid()) }

// MaxIndex returns the index of the first largest element.
func (r RowView) MaxIndex() int { return maxIndex(r.valid()) }

// MinIndex returns the index of the first smallest element.
func (r RowView) MinIndex() int { return minIndex(r.valid()) }

// MaxAbsIndex returns the index of the first largest absolute value.
func (r RowView) MaxAbsIndex() int { return maxAbsIndex(r.valid()) }

// MinAbsIndex returns the index of the first smallest absolute value.
func (r RowView) MinAbsIndex() int { return minAbsIndex(r.valid()) }

// Clone copies the aliased elements into a new, owned Vector.
func (r RowView) Clone() *Vector { return VectorOf(r.valid()...) }
