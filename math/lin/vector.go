// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Vector performs the 3 element vector math needed by the geometry kernel:
// points and directions in 3D space.

import (
	"errors"
	"math"
)

// V3 is a 3 element vector. This can also be used as a point.
type V3 struct {
	X float64
	Y float64
	Z float64
}

// Eq (==) returns true if each element in the vector v has the same value
// as the corresponding element in vector a.
func (v *V3) Eq(a *V3) bool {
	return v.X == a.X && v.Y == a.Y && v.Z == a.Z
}

// Aeq (~=) almost-equals returns true if all the elements in vector v have
// essentially the same value as the corresponding elements in vector a.
// Used where a direct comparison is unlikely to return true due to floats.
func (v *V3) Aeq(a *V3) bool {
	return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) && Aeq(v.Z, a.Z)
}

// AeqZ (~=) almost equals zero returns true if the square length of the
// vector is close enough to zero that it makes no difference.
func (v *V3) AeqZ() bool { return v.Dot(v) < Epsilon }

// GetS returns the float64 values of the vector.
func (v *V3) GetS() (x, y, z float64) { return v.X, v.Y, v.Z }

// SetS (=) sets the vector elements to the given values.
// The updated vector v is returned.
func (v *V3) SetS(x, y, z float64) *V3 {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Set (=, copy, clone) sets the elements of vector v to have the same values
// as the elements of vector a. The updated vector v is returned.
func (v *V3) Set(a *V3) *V3 {
	v.X, v.Y, v.Z = a.X, a.Y, a.Z
	return v
}

// Clone returns a new vector with the same elements as v.
func (v *V3) Clone() *V3 { return &V3{v.X, v.Y, v.Z} }

// Neg (-) sets vector v to be the negative values of vector a.
// Vector v may be used as the input parameter.
func (v *V3) Neg(a *V3) *V3 {
	v.X, v.Y, v.Z = -a.X, -a.Y, -a.Z
	return v
}

// Add (+) adds vectors a and b storing the results of the addition in v.
// Vector v may be used as one or both of the parameters.
func (v *V3) Add(a, b *V3) *V3 {
	v.X, v.Y, v.Z = a.X+b.X, a.Y+b.Y, a.Z+b.Z
	return v
}

// Sub (-) subtracts vector b from a storing the result in v.
// Vector v may be used as one or both of the parameters.
func (v *V3) Sub(a, b *V3) *V3 {
	v.X, v.Y, v.Z = a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return v
}

// Scale (*=) updates the elements in vector v by multiplying the
// corresponding elements in vector a by the given scalar value.
func (v *V3) Scale(a *V3, s float64) *V3 {
	v.X, v.Y, v.Z = a.X*s, a.Y*s, a.Z*s
	return v
}

// Div (/= inverse-scale) divides each element in v by the given scalar value.
// The updated vector v is returned. Vector v is not changed if scalar s is zero.
func (v *V3) Div(s float64) *V3 {
	if s != 0 {
		inv := 1 / s
		v.X, v.Y, v.Z = v.X*inv, v.Y*inv, v.Z*inv
	}
	return v
}

// Dot vector v with input vector a. Both vectors v and a are unchanged.
func (v *V3) Dot(a *V3) float64 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Len returns the length of vector v.
func (v *V3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// LenSqr returns the length of vector v squared.
func (v *V3) LenSqr() float64 { return v.Dot(v) }

// Dist returns the distance between vector end-points v and a.
func (v *V3) Dist(a *V3) float64 { return math.Sqrt(v.DistSqr(a)) }

// DistSqr returns the distance squared between vector end-points v and a.
func (v *V3) DistSqr(a *V3) float64 {
	dx, dy, dz := a.X-v.X, a.Y-v.Y, a.Z-v.Z
	return dx*dx + dy*dy + dz*dz
}

// Unit updates vector v so that its length is 1, returning v. It fails
// with an error, leaving v unchanged, when the length of v is below
// Epsilon -- there is no meaningful direction to normalize.
func (v *V3) Unit() (*V3, error) {
	length := v.Len()
	if length < Epsilon {
		return v, errors.New("lin: V3.Unit: zero-length vector has no direction")
	}
	return v.Div(length), nil
}

// Cross updates v to be the cross product of vectors a and b.
// A cross product vector is perpendicular to both input vectors.
// Input vectors a and b are unchanged. Vector v may be used as either
// input parameter. The updated vector v is returned.
func (v *V3) Cross(a, b *V3) *V3 {
	v.X, v.Y, v.Z = a.Y*b.Z-a.Z*b.Y, a.Z*b.X-a.X*b.Z, a.X*b.Y-a.Y*b.X
	return v
}

// Lerp updates vector v to be the linear interpolation between the input
// vectors a and b by the given (unclamped) fraction t. Vector v may be
// used as one of the parameters.
func (v *V3) Lerp(a, b *V3, t float64) *V3 {
	v.X = (b.X-a.X)*t + a.X
	v.Y = (b.Y-a.Y)*t + a.Y
	v.Z = (b.Z-a.Z)*t + a.Z
	return v
}

// IsCollinear returns true if v, b, and c all lie on the same line. Three
// coincident points are considered collinear.
func (v *V3) IsCollinear(b, c *V3) bool {
	ab, ac := NewV3().Sub(b, v), NewV3().Sub(c, v)
	return NewV3().Cross(ab, ac).AeqZ()
}

// IsWithin returns true if v lies within the axis-aligned box bounded by
// p and r (inclusive), bracketing each component independently so p and r
// need not be ordered corner-to-corner.
func (v *V3) IsWithin(p, r *V3) bool {
	return between(v.X, p.X, r.X, true) &&
		between(v.Y, p.Y, r.Y, true) &&
		between(v.Z, p.Z, r.Z, true)
}

// IsStrictlyWithin is IsWithin with the box boundary excluded.
func (v *V3) IsStrictlyWithin(p, r *V3) bool {
	return between(v.X, p.X, r.X, false) &&
		between(v.Y, p.Y, r.Y, false) &&
		between(v.Z, p.Z, r.Z, false)
}

// between reports whether x lies between lo and hi, in either order.
// When inclusive is false the boundary values themselves do not count.
func between(x, lo, hi float64, inclusive bool) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	if inclusive {
		return x >= lo && x <= hi
	}
	return x > lo && x < hi
}

// NewV3 creates a new, all zero, 3D vector.
func NewV3() *V3 { return &V3{} }

// NewV3S creates a new 3D vector using the given scalars.
func NewV3S(x, y, z float64) *V3 { return &V3{x, y, z} }
