package neighborlist

import "errors"

// Sentinel errors for the failure modes the package detects eagerly. Call
// sites wrap them with context, so match with errors.Is.
var (
	// ErrCutoff is returned when a cutoff radius is not positive.
	ErrCutoff = errors.New("neighborlist: cutoff must be positive")

	// ErrShape is returned when array lengths do not fit together: empty
	// position lists, or grid values whose length disagrees with the atom
	// count and offset catalogue.
	ErrShape = errors.New("neighborlist: mismatched array shape")

	// ErrIndex is returned when a neighbor query names an atom outside
	// the grid.
	ErrIndex = errors.New("neighborlist: atom index out of range")
)
