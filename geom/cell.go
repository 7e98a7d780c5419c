package geom

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrDegenerateCell is returned when a cell's lattice vectors do not span
// three dimensions, so the cell has no volume and no reciprocal metric.
var ErrDegenerateCell = errors.New("geom: degenerate cell (zero volume)")

// Cell is a periodic repeat unit. The rows are the lattice vectors, so a
// position in fractional coordinates f maps to f[0]*c[0] + f[1]*c[1] +
// f[2]*c[2] in Cartesian space. Finite systems use a cell large enough that
// no periodic image falls within interaction range.
type Cell [3]Vec

// Strain is a homogeneous deformation e. Applying it maps every vector v to
// (I + e)v. The zero value leaves vectors unchanged.
type Strain [3][3]float64

// CubicCell returns a cube with side a.
func CubicCell(a float64) Cell {
	return Cell{{a, 0, 0}, {0, a, 0}, {0, 0, a}}
}

// OrthorhombicCell returns an axis-aligned box with sides a, b, c.
func OrthorhombicCell(a, b, c float64) Cell {
	return Cell{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
}

func (c Cell) dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		c[0][0], c[0][1], c[0][2],
		c[1][0], c[1][1], c[1][2],
		c[2][0], c[2][1], c[2][2],
	})
}

// Volume returns the volume of the cell.
func (c Cell) Volume() float64 {
	return math.Abs(mat.Det(c.dense()))
}

// Translation returns the Cartesian displacement of the image offset n,
// n[0]*c[0] + n[1]*c[1] + n[2]*c[2].
func (c Cell) Translation(n IVec) Vec {
	var t Vec
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[j] += float64(n[i]) * c[i][j]
		}
	}
	return t
}

// Strained returns the cell deformed by e.
func (c Cell) Strained(e Strain) Cell {
	return Cell{e.Apply(c[0]), e.Apply(c[1]), e.Apply(c[2])}
}

// Apply returns (I + e)v.
func (e Strain) Apply(v Vec) Vec {
	var out Vec
	for i := 0; i < 3; i++ {
		out[i] = v[i]
		for j := 0; j < 3; j++ {
			out[i] += e[i][j] * v[j]
		}
	}
	return out
}

// IsZero reports whether e is the undeformed state.
func (e Strain) IsZero() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if e[i][j] != 0 {
				return false
			}
		}
	}
	return true
}

// Basis couples a cell with its inverse matrix so that fractional
// coordinate work is a pair of 3x3 products instead of repeated solves.
type Basis struct {
	Cell Cell
	// Inv is the inverse of the cell matrix: row vectors multiply it on
	// the left, frac = r * Inv.
	Inv [3][3]float64
}

// Basis inverts the cell. It fails with ErrDegenerateCell when the lattice
// vectors are linearly dependent.
func (c Cell) Basis() (*Basis, error) {
	m := c.dense()
	if d := mat.Det(m); d == 0 || math.IsNaN(d) {
		return nil, ErrDegenerateCell
	}

	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		// A Condition error still carries a usable inverse. Anything
		// else means the determinant check above was too optimistic.
		if _, ok := err.(mat.Condition); !ok {
			return nil, ErrDegenerateCell
		}
	}

	b := &Basis{Cell: c}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b.Inv[i][j] = inv.At(i, j)
		}
	}
	return b, nil
}

// Fractional returns v in fractional (lattice) coordinates.
func (b *Basis) Fractional(v Vec) Vec {
	var f Vec
	for j := 0; j < 3; j++ {
		f[j] = v[0]*b.Inv[0][j] + v[1]*b.Inv[1][j] + v[2]*b.Inv[2][j]
	}
	return f
}

// Cartesian returns the Cartesian position of the fractional coordinate f.
func (b *Basis) Cartesian(f Vec) Vec {
	var v Vec
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v[j] += f[i] * b.Cell[i][j]
		}
	}
	return v
}

// Spacing returns the repeat distance of the cell along lattice direction
// axis: the spacing between the lattice planes that the axis'th reciprocal
// vector is normal to. Replica-count bounds are computed against it.
func (b *Basis) Spacing(axis int) float64 {
	n := math.Sqrt(b.Inv[0][axis]*b.Inv[0][axis] +
		b.Inv[1][axis]*b.Inv[1][axis] +
		b.Inv[2][axis]*b.Inv[2][axis])
	return 1 / n
}

// Wrap translates v into the home cell. It returns the wrapped position and
// the integer translation that was added, so v + Translation(shift) is the
// returned position and its fractional coordinates lie in [0, 1).
func (b *Basis) Wrap(v Vec) (Vec, IVec) {
	f := b.Fractional(v)
	var shift IVec
	for i := 0; i < 3; i++ {
		shift[i] = -int(math.Floor(f[i]))
	}
	return v.Add(b.Cell.Translation(shift)), shift
}
