package geom

import (
	"errors"
	"math"
	"testing"
)

func almostEq(x, y float64) bool {
	return math.Abs(x-y) < 1e-10
}

func vecAlmostEq(v, u Vec) bool {
	return almostEq(v[0], u[0]) && almostEq(v[1], u[1]) && almostEq(v[2], u[2])
}

func triclinic() Cell {
	return Cell{{4.1, 0, 0}, {1.9, 3.7, 0}, {0.9, 1.3, 3.3}}
}

func TestCellVolume(t *testing.T) {
	table := []struct {
		cell Cell
		vol  float64
	}{
		{CubicCell(4), 64},
		{OrthorhombicCell(2, 3, 4), 24},
		{triclinic(), 4.1 * 3.7 * 3.3},
		{Cell{{0, 0, 2}, {0, 2, 0}, {2, 0, 0}}, 8},
	}

	for i, test := range table {
		if vol := test.cell.Volume(); !almostEq(vol, test.vol) {
			t.Errorf("%d) volume = %g, want %g", i, vol, test.vol)
		}
	}
}

func TestCellTranslation(t *testing.T) {
	cell := triclinic()
	got := cell.Translation(IVec{1, -2, 0})
	want := cell[0].Sub(cell[1].Scale(2))
	if !vecAlmostEq(got, want) {
		t.Errorf("translation = %v, want %v", got, want)
	}
}

func TestFractionalRoundtrip(t *testing.T) {
	basis, err := triclinic().Basis()
	if err != nil {
		t.Fatal(err)
	}

	vecs := []Vec{
		{0, 0, 0},
		{1.1, 2.2, 3.3},
		{-5, 12.7, -0.4},
		triclinic()[1],
	}
	for i, v := range vecs {
		back := basis.Cartesian(basis.Fractional(v))
		if !vecAlmostEq(v, back) {
			t.Errorf("%d) roundtrip %v -> %v", i, v, back)
		}
	}

	// The lattice vectors themselves are the fractional unit points.
	for a := 0; a < 3; a++ {
		f := basis.Fractional(triclinic()[a])
		var want Vec
		want[a] = 1
		if !vecAlmostEq(f, want) {
			t.Errorf("axis %d) fractional = %v, want %v", a, f, want)
		}
	}
}

func TestWrap(t *testing.T) {
	basis, err := CubicCell(4).Basis()
	if err != nil {
		t.Fatal(err)
	}

	table := []struct {
		v, wrapped Vec
		shift      IVec
	}{
		{Vec{0, 0, 0}, Vec{0, 0, 0}, IVec{0, 0, 0}},
		{Vec{1, 2, 3}, Vec{1, 2, 3}, IVec{0, 0, 0}},
		{Vec{4, 1, -1}, Vec{0, 1, 3}, IVec{-1, 0, 1}},
		{Vec{-0.5, 9, 4.5}, Vec{3.5, 1, 0.5}, IVec{1, -2, -1}},
	}

	for i, test := range table {
		w, shift := basis.Wrap(test.v)
		if shift != test.shift {
			t.Errorf("%d) shift = %v, want %v", i, shift, test.shift)
		}
		if !vecAlmostEq(w, test.wrapped) {
			t.Errorf("%d) wrapped = %v, want %v", i, w, test.wrapped)
		}
	}

	// Wrapped fractional coordinates always land in [0, 1).
	tri, err := triclinic().Basis()
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range []Vec{{-7.3, 12.1, 5.5}, {100, -100, 0.1}, {3, 2, 1}} {
		w, shift := tri.Wrap(v)
		f := tri.Fractional(w)
		for a := 0; a < 3; a++ {
			if f[a] < 0 || f[a] >= 1 {
				t.Errorf("%d) fractional %v outside [0, 1)", i, f)
			}
		}
		back := w.Sub(tri.Cell.Translation(shift))
		if !vecAlmostEq(back, v) {
			t.Errorf("%d) unwrap %v -> %v", i, v, back)
		}
	}
}

func TestSpacing(t *testing.T) {
	basis, err := OrthorhombicCell(2, 3, 4).Basis()
	if err != nil {
		t.Fatal(err)
	}
	for a, want := range []float64{2, 3, 4} {
		if h := basis.Spacing(a); !almostEq(h, want) {
			t.Errorf("axis %d) spacing = %g, want %g", a, h, want)
		}
	}

	// For a general cell the repeat spacing along axis a is the volume
	// over the area of the face spanned by the other two vectors.
	cell := triclinic()
	tri, err := cell.Basis()
	if err != nil {
		t.Fatal(err)
	}
	for a := 0; a < 3; a++ {
		u, v := cell[(a+1)%3], cell[(a+2)%3]
		cross := Vec{
			u[1]*v[2] - u[2]*v[1],
			u[2]*v[0] - u[0]*v[2],
			u[0]*v[1] - u[1]*v[0],
		}
		want := cell.Volume() / cross.Norm()
		if h := tri.Spacing(a); !almostEq(h, want) {
			t.Errorf("axis %d) spacing = %g, want %g", a, h, want)
		}
	}
}

func TestDegenerateCell(t *testing.T) {
	cells := []Cell{
		{},
		{{1, 0, 0}, {0, 1, 0}, {1, 1, 0}},
		{{2, 2, 2}, {1, 1, 1}, {0, 0, 1}},
	}
	for i, cell := range cells {
		if _, err := cell.Basis(); !errors.Is(err, ErrDegenerateCell) {
			t.Errorf("%d) err = %v, want ErrDegenerateCell", i, err)
		}
	}
}

func TestStrain(t *testing.T) {
	var zero Strain
	if !zero.IsZero() {
		t.Errorf("zero strain not IsZero")
	}
	if v := (Vec{1, 2, 3}); zero.Apply(v) != v {
		t.Errorf("zero strain moved %v", v)
	}

	stretch := Strain{{0.01, 0, 0}, {0, 0.02, 0}, {0, 0, 0.03}}
	if stretch.IsZero() {
		t.Errorf("nonzero strain IsZero")
	}
	got := stretch.Apply(Vec{1, 1, 1})
	if !vecAlmostEq(got, Vec{1.01, 1.02, 1.03}) {
		t.Errorf("stretch apply = %v", got)
	}
	vol := CubicCell(2).Strained(stretch).Volume()
	if want := 8 * 1.01 * 1.02 * 1.03; !almostEq(vol, want) {
		t.Errorf("strained volume = %g, want %g", vol, want)
	}

	shear := Strain{{0, 0.1, 0}, {0, 0, 0}, {0, 0, 0}}
	got = shear.Apply(Vec{0, 1, 0})
	if !vecAlmostEq(got, Vec{0.1, 1, 0}) {
		t.Errorf("shear apply = %v", got)
	}
}

func TestIVecOrder(t *testing.T) {
	table := []struct {
		n        IVec
		positive bool
	}{
		{IVec{0, 0, 0}, false},
		{IVec{0, 0, 1}, true},
		{IVec{0, 0, -1}, false},
		{IVec{0, -1, 5}, false},
		{IVec{1, -5, -5}, true},
		{IVec{-1, 9, 9}, false},
	}
	for i, test := range table {
		if got := test.n.LexPositive(); got != test.positive {
			t.Errorf("%d) LexPositive(%v) = %v", i, test.n, got)
		}
	}

	if !(IVec{0, 0, 0}).LexLess(IVec{1, -5, -5}) {
		t.Errorf("lexicographic order ignores the leading axis")
	}
	if (IVec{2, 0, 0}).LexLess(IVec{2, 0, 0}) {
		t.Errorf("LexLess not strict")
	}
}
