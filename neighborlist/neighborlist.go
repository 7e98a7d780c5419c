/*package neighborlist enumerates pairwise neighbor relationships between
atoms in a periodic cell.

Distances builds a dense distance tensor over every atom pair and every
periodic image that could fall within the cutoff, with out-of-range entries
masked to zero. The dense shape costs O(N*N*images) memory but keeps the
whole computation a uniform sequence of arithmetic over fixed-size arrays,
the form gradient-based consumers of the output need. There is no cell-list
acceleration.

Neighbor lists are read back out of the tensor in two conventions: bothways
(every pair reported from both sides) via Neighbors, and oneway (every pair
reported exactly once, broken by an explicit total order) via
NeighborsOneway. OnewayLists builds the one-way lists for all atoms directly
from positions without the dense tensor.

Every call is pure: inputs are read, outputs are freshly allocated, nothing
is cached between calls.
*/
package neighborlist

import (
	"fmt"
	"math"

	"github.com/ruoitrau86/differentiable-atomistic-potentials/geom"
)

// DefaultSkin is the tolerance added to the cutoff when deciding whether a
// pair is in range. A small positive skin keeps pairs sitting numerically on
// the cutoff from flickering in and out of the list. Pass WithSkin(0) for a
// strict cutoff.
const DefaultSkin = 0.01

type config struct {
	skin   float64
	strain geom.Strain
}

// An Option adjusts how distances are computed.
type Option func(*config)

// WithSkin sets the cutoff tolerance: pairs with d < cutoff + skin are kept.
func WithSkin(skin float64) Option {
	return func(c *config) { c.skin = skin }
}

// WithStrain deforms the cell and every position by (I + e) before any
// distances are computed. Stress consumers differentiate through this
// transform, so it has to happen inside the computation rather than in the
// caller.
func WithStrain(e geom.Strain) Option {
	return func(c *config) { c.strain = e }
}

// DistanceGrid is the dense output of Distances. Vals holds the distance
// from atom i to the image of atom j displaced by Offsets[k], flattened as
// (i*N + j)*K + k with K = len(Offsets). Entries are zero where the pair is
// out of range, and the i==j home-cell entries are zero because an atom is
// at no distance from itself. Extraction treats zero as "no neighbor".
type DistanceGrid struct {
	N       int
	Offsets []geom.IVec
	Vals    []float64
}

// NewDistanceGrid assembles a grid from parts, checking that the value
// buffer has one entry per (atom, atom, offset) triple.
func NewDistanceGrid(n int, offsets []geom.IVec, vals []float64) (*DistanceGrid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid needs a positive atom count, got %d", ErrShape, n)
	}
	if want := n * n * len(offsets); len(vals) != want {
		return nil, fmt.Errorf(
			"%w: %d atoms and %d offsets need %d values, got %d",
			ErrShape, n, len(offsets), want, len(vals),
		)
	}
	return &DistanceGrid{N: n, Offsets: offsets, Vals: vals}, nil
}

// At returns the masked distance from atom i to atom j's image at offset
// index k.
func (g *DistanceGrid) At(i, j, k int) float64 {
	if i < 0 || i >= g.N || j < 0 || j >= g.N || k < 0 || k >= len(g.Offsets) {
		panic("neighborlist: DistanceGrid index out of range")
	}
	return g.Vals[(i*g.N+j)*len(g.Offsets)+k]
}

// OffsetIndex returns the catalogue index holding the offset vector n, or
// -1 when the catalogue does not contain it.
func (g *DistanceGrid) OffsetIndex(n geom.IVec) int {
	for k, off := range g.Offsets {
		if off == n {
			return k
		}
	}
	return -1
}

// MirrorOffset returns the catalogue index of the negated offset vector, or
// -1 when the catalogue does not contain it. Catalogues built by Distances
// are symmetric, where the mirror of index k is K-1-k.
func (g *DistanceGrid) MirrorOffset(k int) int {
	return g.OffsetIndex(g.Offsets[k].Neg())
}

// Distances computes the dense distance tensor between every atom and every
// periodic image of every atom that could lie within the cutoff.
//
// The offset catalogue is sized from the reciprocal metric of the cell:
// along each lattice direction, images beyond the catalogue bound are
// provably further than cutoff+skin from every atom, however skewed the
// cell is and wherever the positions sit relative to the home cell. The
// catalogue is the full integer box [-n1,n1]x[-n2,n2]x[-n3,n3] enumerated
// with axis 0 outermost and every axis ascending, so the ordering is
// deterministic and the entry at index K-1-k is the negation of the entry
// at k.
//
// Entries with d >= cutoff+skin are masked to zero. A strict cutoff needs
// WithSkin(0); the default skin is DefaultSkin.
func Distances(positions []geom.Vec, cell geom.Cell, cutoff float64, opts ...Option) (*DistanceGrid, error) {
	if cutoff <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrCutoff, cutoff)
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("%w: no positions", ErrShape)
	}

	cfg := config{skin: DefaultSkin}
	for _, opt := range opts {
		opt(&cfg)
	}
	positions, cell = applyStrain(positions, cell, cfg.strain)

	basis, err := cell.Basis()
	if err != nil {
		return nil, err
	}

	reach := cutoff + cfg.skin
	offsets := imageCatalogue(positions, basis, reach)

	n, k := len(positions), len(offsets)
	shifts := make([]geom.Vec, k)
	for m, off := range offsets {
		shifts[m] = cell.Translation(off)
	}

	vals := make([]float64, n*n*k)
	idx := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for m := 0; m < k; m++ {
				d2 := geom.Dist2(positions[i], positions[j].Add(shifts[m]))
				if d := math.Sqrt(d2); d < reach {
					vals[idx] = d
				}
				idx++
			}
		}
	}

	return &DistanceGrid{N: n, Offsets: offsets, Vals: vals}, nil
}

// applyStrain returns the deformed positions and cell, leaving the inputs
// untouched. The zero strain short-circuits so the common path does not
// copy.
func applyStrain(positions []geom.Vec, cell geom.Cell, e geom.Strain) ([]geom.Vec, geom.Cell) {
	if e.IsZero() {
		return positions, cell
	}
	strained := make([]geom.Vec, len(positions))
	for i, r := range positions {
		strained[i] = e.Apply(r)
	}
	return strained, cell.Strained(e)
}

// imageCatalogue returns every integer image offset that could put a
// neighbor within reach of some atom. The per-axis bound is the reach
// divided by the repeat spacing of that lattice direction, widened by the
// spread of the atoms' fractional coordinates so positions outside the home
// cell stay correct.
func imageCatalogue(positions []geom.Vec, basis *geom.Basis, reach float64) []geom.IVec {
	lo := basis.Fractional(positions[0])
	hi := lo
	for _, r := range positions[1:] {
		f := basis.Fractional(r)
		for a := 0; a < 3; a++ {
			if f[a] < lo[a] {
				lo[a] = f[a]
			}
			if f[a] > hi[a] {
				hi[a] = f[a]
			}
		}
	}

	var bound [3]int
	for a := 0; a < 3; a++ {
		span := hi[a] - lo[a]
		bound[a] = int(math.Floor(span+reach/basis.Spacing(a))) + 1
	}

	out := make([]geom.IVec, 0, (2*bound[0]+1)*(2*bound[1]+1)*(2*bound[2]+1))
	for n0 := -bound[0]; n0 <= bound[0]; n0++ {
		for n1 := -bound[1]; n1 <= bound[1]; n1++ {
			for n2 := -bound[2]; n2 <= bound[2]; n2++ {
				out = append(out, geom.IVec{n0, n1, n2})
			}
		}
	}
	return out
}
