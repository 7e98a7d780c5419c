package neighborlist

import (
	"fmt"

	"github.com/ruoitrau86/differentiable-atomistic-potentials/geom"
)

// A Neighbor identifies one neighbor relationship: the partner atom's index
// and the integer image offset of the copy of it that is in range.
type Neighbor struct {
	Index  int
	Offset geom.IVec
}

// Neighbors returns atom i's neighbors in the bothways convention: every
// in-range (partner, offset) pair, so a bonded pair shows up in both atoms'
// lists. Entries appear in partner-major, catalogue order, matching the
// layout of the grid.
func (g *DistanceGrid) Neighbors(i int) ([]Neighbor, error) {
	if i < 0 || i >= g.N {
		return nil, fmt.Errorf("%w: atom %d of %d", ErrIndex, i, g.N)
	}

	var out []Neighbor
	k := len(g.Offsets)
	row := g.Vals[i*g.N*k : (i+1)*g.N*k]
	for j := 0; j < g.N; j++ {
		for m := 0; m < k; m++ {
			if row[j*k+m] > 0 {
				out = append(out, Neighbor{j, g.Offsets[m]})
			}
		}
	}
	return out, nil
}

// KeepOneway reports whether the pair (i, j) at image offset off belongs to
// atom i's oneway list. Of the two mirrored entries (i, j, n) and
// (j, i, -n), exactly one satisfies this: the one whose offset is
// lexicographically positive, or, for home-cell pairs, the one seen from
// the lower-indexed atom.
func KeepOneway(i, j int, off geom.IVec) bool {
	return off.LexPositive() || (off.IsZero() && j > i)
}

// NeighborsOneway returns atom i's neighbors in the oneway convention: each
// bonded pair appears in exactly one atom's list, selected by KeepOneway.
// Summing len over all atoms counts each bond once.
func (g *DistanceGrid) NeighborsOneway(i int) ([]Neighbor, error) {
	all, err := g.Neighbors(i)
	if err != nil {
		return nil, err
	}

	out := all[:0]
	for _, nb := range all {
		if KeepOneway(i, nb.Index, nb.Offset) {
			out = append(out, nb)
		}
	}
	return out, nil
}
