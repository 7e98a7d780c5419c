/*package analyze computes summary statistics over the distance grids
produced by the neighborlist package: coordination numbers, bond length
collections, and bond length histograms. Everything here reads a finished
grid; nothing feeds back into how the grid is built.
*/
package analyze

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ruoitrau86/differentiable-atomistic-potentials/neighborlist"
)

// Coordination counts each atom's in-range neighbors, periodic images
// included.
func Coordination(g *neighborlist.DistanceGrid) []int {
	counts := make([]int, g.N)
	k := len(g.Offsets)
	for i := 0; i < g.N; i++ {
		row := g.Vals[i*g.N*k : (i+1)*g.N*k]
		n := 0
		for _, v := range row {
			if v > 0 {
				n++
			}
		}
		counts[i] = n
	}
	return counts
}

// PairDistances returns every bond length exactly once, sorted ascending.
// The mirrored duplicates in the grid are skipped with the same rule the
// oneway lists use.
func PairDistances(g *neighborlist.DistanceGrid) []float64 {
	var out []float64
	k := len(g.Offsets)
	idx := 0
	for i := 0; i < g.N; i++ {
		for j := 0; j < g.N; j++ {
			for m := 0; m < k; m++ {
				if v := g.Vals[idx]; v > 0 && neighborlist.KeepOneway(i, j, g.Offsets[m]) {
					out = append(out, v)
				}
				idx++
			}
		}
	}
	sort.Float64s(out)
	return out
}

// MinimumDistance returns the shortest bond in the grid. ok is false when
// no pair is in range.
func MinimumDistance(g *neighborlist.DistanceGrid) (d float64, ok bool) {
	for _, v := range g.Vals {
		if v > 0 && (!ok || v < d) {
			d, ok = v, true
		}
	}
	return d, ok
}

// DistanceHistogram sorts the bond lengths below rmax into equal-width bins
// over [0, rmax), counting each bond once. It returns the bin centers and
// per-bin counts.
func DistanceHistogram(g *neighborlist.DistanceGrid, bins int, rmax float64) (centers, counts []float64, err error) {
	if bins <= 0 {
		return nil, nil, fmt.Errorf("analyze: need a positive bin count, got %d", bins)
	}
	if rmax <= 0 {
		return nil, nil, fmt.Errorf("analyze: need a positive histogram range, got %g", rmax)
	}

	ds := PairDistances(g)
	ds = ds[:sort.SearchFloat64s(ds, rmax)]

	dividers := floats.Span(make([]float64, bins+1), 0, rmax)
	counts = stat.Histogram(nil, dividers, ds, nil)

	width := rmax / float64(bins)
	centers = make([]float64, bins)
	for i := range centers {
		centers[i] = (float64(i) + 0.5) * width
	}
	return centers, counts, nil
}
