package neighborlist

import (
	"fmt"
	"math"

	"github.com/ruoitrau86/differentiable-atomistic-potentials/geom"
)

// OnewayLists builds every atom's oneway neighbor list directly from the
// positions, without materializing the dense grid. Atoms are wrapped into
// the home cell and only the lexicographically non-negative half of the
// image space is walked, so the work scales with the number of bonds rather
// than with the full grid volume.
//
// Each bonded pair appears in exactly one atom's list; when the input
// positions already lie inside the cell, the lists coincide with calling
// NeighborsOneway on the grid from Distances. A pair is kept when
// d*d < cutoff*cutoff + skin, which agrees exactly with the rule Distances
// uses when the skin is zero.
func OnewayLists(positions []geom.Vec, cell geom.Cell, cutoff float64, opts ...Option) ([][]Neighbor, error) {
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

	n := len(positions)
	wrapped := make([]geom.Vec, n)
	shifts := make([]geom.IVec, n)
	for i, r := range positions {
		wrapped[i], shifts[i] = basis.Wrap(r)
	}

	var bound [3]int
	for a := 0; a < 3; a++ {
		bound[a] = int(math.Floor(2*cutoff/basis.Spacing(a))) + 1
	}

	lists := make([][]Neighbor, n)
	limit := cutoff*cutoff + cfg.skin

	for n0 := 0; n0 <= bound[0]; n0++ {
		for n1 := -bound[1]; n1 <= bound[1]; n1++ {
			for n2 := -bound[2]; n2 <= bound[2]; n2++ {
				// The mirrored half of the offset space would list every
				// pair a second time.
				if n0 == 0 && (n1 < 0 || (n1 == 0 && n2 < 0)) {
					continue
				}

				off := geom.IVec{n0, n1, n2}
				disp := cell.Translation(off)
				home := off.IsZero()

				for a := 0; a < n; a++ {
					for j := 0; j < n; j++ {
						if home && j <= a {
							continue
						}
						if geom.Dist2(wrapped[a], wrapped[j].Add(disp)) < limit {
							// Report the offset relative to the caller's
							// unwrapped positions.
							rel := off.Add(shifts[j]).Sub(shifts[a])
							lists[a] = append(lists[a], Neighbor{j, rel})
						}
					}
				}
			}
		}
	}
	return lists, nil
}
