package linalg

import (
	"fmt"
	"math"
)

// Vector is an owned, contiguous, 32-byte aligned buffer of float64 values.
//
// The zero value is a null (empty) vector. A Vector is exclusively owned by
// one logical owner and must not be copied by value once views have been
// issued from it.
type Vector struct {
	data []float64
	gen  uint64
}

// NewVector returns a zeroed vector of the given length.
// It panics with ErrInvalidLength for a negative length, mirroring make.
func NewVector(length int) *Vector {
	if err := checkLength(length); err != nil {
		panic(err)
	}
	return &Vector{data: allocAligned(length)}
}

// VectorOf returns a vector holding a copy of values.
func VectorOf(values ...float64) *Vector {
	v := NewVector(len(values))
	copy(v.data, values)
	return v
}

// VectorFrom returns a vector holding a copy of any Reader.
func VectorFrom(r Reader) *Vector {
	return VectorOf(rawOf(r)...)
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.data) }

// IsNull reports whether the vector owns no storage.
func (v *Vector) IsNull() bool { return len(v.data) == 0 }

// At returns element i. It panics unless 0 <= i < Len().
func (v *Vector) At(i int) float64 {
	checkIndex(i, len(v.data))
	return v.data[i]
}

// Set stores x at index i. It panics unless 0 <= i < Len().
func (v *Vector) Set(i int, x float64) {
	checkIndex(i, len(v.data))
	v.data[i] = x
}

// Resize reallocates the vector with a new length. Previous contents are
// discarded and every RowView issued by this vector becomes stale.
func (v *Vector) Resize(length int) error {
	if err := checkLength(length); err != nil {
		return err
	}
	v.data = allocAligned(length)
	v.gen++
	return nil
}

// Clone returns an independent copy.
func (v *Vector) Clone() *Vector {
	return VectorOf(v.data...)
}

// CopyFrom copies the overlapping prefix of src into v without resizing
// and returns the number of elements copied.
func (v *Vector) CopyFrom(src Reader) int {
	return copy(v.data, rawOf(src))
}

// CopyTo copies the overlapping prefix of v into dst.
func (v *Vector) CopyTo(dst []float64) int {
	return copy(dst, v.data)
}

// Values returns a copy of the elements as a plain slice.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)
	return out
}

// Slice returns a new vector with up to length elements starting at offset.
// An offset outside the vector, or a non-positive length, yields an empty
// vector. The result never aliases v.
func (v *Vector) Slice(offset, length int) *Vector {
	if offset < 0 || offset >= len(v.data) || length <= 0 {
		return NewVector(0)
	}
	n := min(length, len(v.data)-offset)
	return VectorOf(v.data[offset : offset+n]...)
}

// View returns a non-owning RowView over up to length elements starting at
// offset, clamped to the vector like Slice.
func (v *Vector) View(offset, length int) RowView {
	if offset < 0 || offset >= len(v.data) || length <= 0 {
		return RowView{owner: &v.gen, gen: v.gen}
	}
	n := min(length, len(v.data)-offset)
	return RowView{
		data:  v.data[offset : offset+n : offset+n],
		owner: &v.gen,
		gen:   v.gen,
	}
}

// PushFront shifts every element one position towards the end, stores x at
// index 0 and returns the evicted last element. O(Len()).
func (v *Vector) PushFront(x float64) float64 { return pushFront(v.data, x) }

// PushBack shifts every element one position towards the start, stores x at
// the end and returns the evicted first element. O(Len()).
func (v *Vector) PushBack(x float64) float64 { return pushBack(v.data, x) }

// Fill sets every element to x.
func (v *Vector) Fill(x float64) {
	for i := range v.data {
		v.data[i] = x
	}
}

// Ramp sets element k to offset + step*k.
func (v *Vector) Ramp(offset, step float64) { ramp(v.data, offset, step) }

// Generate sets element k to fn(k, Len()).
func (v *Vector) Generate(fn func(i, n int) float64) { generate(v.data, fn) }

// AddScalar adds s to every element.
func (v *Vector) AddScalar(s float64) { addScalar(v.data, s) }

// SubScalar subtracts s from every element.
func (v *Vector) SubScalar(s float64) { subScalar(v.data, s) }

// MulScalar multiplies every element by s.
func (v *Vector) MulScalar(s float64) { mulScalar(v.data, s) }

// DivScalar divides every element by s.
func (v *Vector) DivScalar(s float64) { divScalar(v.data, s) }

// Add adds other elementwise over the shorter of the two lengths.
func (v *Vector) Add(other Reader) { addVec(v.data, rawOf(other)) }

// Sub subtracts other elementwise over the shorter of the two lengths.
func (v *Vector) Sub(other Reader) { subVec(v.data, rawOf(other)) }

// Mul multiplies by other elementwise over the shorter of the two lengths.
func (v *Vector) Mul(other Reader) { mulVec(v.data, rawOf(other)) }

// Div divides by other elementwise over the shorter of the two lengths.
func (v *Vector) Div(other Reader) { divVec(v.data, rawOf(other)) }

// AddScaled adds alpha·other elementwise over the shorter of the two lengths.
func (v *Vector) AddScaled(alpha float64, other Reader) { axpy(v.data, alpha, rawOf(other)) }

// Sum returns the sum of all elements (0 for an empty vector).
func (v *Vector) Sum() float64 { return sum(v.data) }

// Average returns Sum()/Len(), or NaN for an empty vector.
func (v *Vector) Average() float64 { return average(v.data) }

// Norm returns the Euclidean norm.
func (v *Vector) Norm() float64 { return norm(v.data) }

// Dot returns the dot product over the shorter of the two lengths.
func (v *Vector) Dot(other Reader) float64 { return dot(v.data, rawOf(other)) }

// Max returns the largest element. It panics on an empty vector.
func (v *Vector) Max() float64 { return maxValue(v.data) }

// Min returns the smallest element. It panics on an empty vector.
func (v *Vector) Min() float64 { return minValue(v.data) }

// MaxAbs returns the largest absolute value. It panics on an empty vector.
func (v *Vector) MaxAbs() float64 { return maxAbs(v.data) }

// MinAbs returns the smallest absolute value. It panics on an empty vector.
func (v *Vector) MinAbs() float64 { return minAbs(v.data) }

// MaxIndex returns the index of the first largest element.
func (v *Vector) MaxIndex() int { return maxIndex(v.data) }

// MinIndex returns the index of the first smallest element.
func (v *Vector) MinIndex() int { return minIndex(v.data) }

// MaxAbsIndex returns the index of the first largest absolute value.
func (v *Vector) MaxAbsIndex() int { return maxAbsIndex(v.data) }

// MinAbsIndex returns the index of the first smallest absolute value.
func (v *Vector) MinAbsIndex() int { return minAbsIndex(v.data) }

// Cross returns the cross product v × other. Both operands must have
// length 3.
func (v *Vector) Cross(other Reader) (*Vector, error) {
	b := rawOf(other)
	if len(v.data) != crossProductLength || len(b) != crossProductLength {
		return nil, fmt.Errorf("%w: cross product needs two 3-vectors, got %d and %d",
			ErrDimensionMismatch, len(v.data), len(b))
	}
	a := v.data
	return VectorOf(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	), nil
}

// Transpose returns the vector as an N×1 column matrix.
func (v *Vector) Transpose() *Matrix {
	m := NewMatrix(len(v.data), min(len(v.data), 1))
	copy(m.data, v.data)
	return m
}

// ToMatrix returns the vector as a 1×N row matrix.
func (v *Vector) ToMatrix() *Matrix {
	m := NewMatrix(min(len(v.data), 1), len(v.data))
	copy(m.data, v.data)
	return m
}

// EqualApprox reports whether both operands have the same length and every
// pair of elements differs by at most tol.
func (v *Vector) EqualApprox(other Reader, tol float64) bool {
	b := rawOf(other)
	if len(b) != len(v.data) {
		return false
	}
	for i, x := range v.data {
		if math.Abs(x-b[i]) > tol {
			return false
		}
	}
	return true
}

// String formats the elements like a slice.
func (v *Vector) String() string {
	return fmt.Sprint(v.data)
}
