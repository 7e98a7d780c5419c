/*package geom contains the lattice geometry used by the neighbor-finding
routines: Cartesian vectors, integer lattice translations, and unit cells
with their reciprocal metric.

Distances are in the same units as the positions handed in (conventionally
Angstroms). Nothing here keeps state between calls.
*/
package geom

import (
	"math"
)

// Vec is a Cartesian position or displacement.
type Vec [3]float64

// IVec is an integer lattice translation. An atom's periodic image at
// IVec{n1, n2, n3} sits at position + n1*a1 + n2*a2 + n3*a3, where a1..a3
// are the rows of the cell.
type IVec [3]int

// Add returns v + u.
func (v Vec) Add(u Vec) Vec {
	return Vec{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// Sub returns v - u.
func (v Vec) Sub(u Vec) Vec {
	return Vec{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

// Scale returns s*v.
func (v Vec) Scale(s float64) Vec {
	return Vec{s * v[0], s * v[1], s * v[2]}
}

// Dot returns the inner product of v and u.
func (v Vec) Dot(u Vec) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Dist2 returns the squared distance between v and u. Callers that only
// compare against a threshold can skip the square root.
func Dist2(v, u Vec) float64 {
	dx, dy, dz := u[0]-v[0], u[1]-v[1], u[2]-v[2]
	return dx*dx + dy*dy + dz*dz
}

// IsZero reports whether n is the home-cell translation.
func (n IVec) IsZero() bool {
	return n[0] == 0 && n[1] == 0 && n[2] == 0
}

// Neg returns the opposite translation.
func (n IVec) Neg() IVec {
	return IVec{-n[0], -n[1], -n[2]}
}

// Add returns n + m.
func (n IVec) Add(m IVec) IVec {
	return IVec{n[0] + m[0], n[1] + m[1], n[2] + m[2]}
}

// Sub returns n - m.
func (n IVec) Sub(m IVec) IVec {
	return IVec{n[0] - m[0], n[1] - m[1], n[2] - m[2]}
}

// LexLess reports whether n precedes m in lexicographic component order.
// This is the total order the one-way neighbor convention breaks ties with.
func (n IVec) LexLess(m IVec) bool {
	if n[0] != m[0] {
		return n[0] < m[0]
	}
	if n[1] != m[1] {
		return n[1] < m[1]
	}
	return n[2] < m[2]
}

// LexPositive reports whether n follows the home-cell translation in
// lexicographic order, i.e. whether its first nonzero component is positive.
func (n IVec) LexPositive() bool {
	return IVec{}.LexLess(n)
}
