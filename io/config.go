/*package io reads the configuration and position files consumed by the
command line tool. Configuration files use gcfg's ini-like format; positions
come out of whitespace-separated text tables.
*/
package io

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phil-mansfield/table"

	"github.com/ruoitrau86/differentiable-atomistic-potentials/geom"
	"github.com/ruoitrau86/differentiable-atomistic-potentials/neighborlist"
)

const ExampleNeighborsFile = `[Neighbors]

#######################
# Required Parameters #
#######################

# Plain text file with one atom per row.
Positions = path/to/positions.txt

# Lattice vectors, in the same length unit as the positions.
CellA = 4.05 0.00 0.00
CellB = 0.00 4.05 0.00
CellC = 0.00 0.00 4.05

Cutoff = 3.0

#######################
# Optional Parameters #
#######################

# Columns of the positions file holding x, y, and z.
# XColumn = 0
# YColumn = 1
# ZColumn = 2

# Tolerance added to the cutoff when deciding whether a pair is in range.
# Skin = 0.01

# How bonds are reported. "Bothways" lists every bond from both atoms,
# "Oneway" lists each bond once, and "Count" prints per-atom bond counts.
# Convention = Bothways`

type NeighborsConfig struct {
	// Required
	Positions           string
	CellA, CellB, CellC string
	Cutoff              float64

	// Optional
	XColumn, YColumn, ZColumn int
	Skin                      float64
	Convention                string
}

type NeighborsWrapper struct {
	Neighbors NeighborsConfig
}

func DefaultNeighborsWrapper() *NeighborsWrapper {
	con := NeighborsConfig{}
	con.XColumn, con.YColumn, con.ZColumn = 0, 1, 2
	con.Skin = neighborlist.DefaultSkin
	con.Convention = "Bothways"
	return &NeighborsWrapper{con}
}

func (con *NeighborsConfig) ValidPositions() bool {
	return con.Positions != ""
}
func (con *NeighborsConfig) ValidCutoff() bool {
	return con.Cutoff > 0
}
func (con *NeighborsConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.ZColumn >= 0
}
func (con *NeighborsConfig) ValidSkin() bool {
	return con.Skin >= 0
}
func (con *NeighborsConfig) ValidConvention() bool {
	switch strings.ToLower(con.Convention) {
	case "bothways", "oneway", "count":
		return true
	}
	return false
}
func (con *NeighborsConfig) ValidCell() bool {
	_, err := con.Cell()
	return err == nil
}

// Cell parses the three lattice vector strings.
func (con *NeighborsConfig) Cell() (geom.Cell, error) {
	names := []string{"CellA", "CellB", "CellC"}
	var cell geom.Cell
	for i, str := range []string{con.CellA, con.CellB, con.CellC} {
		v, err := parseVector(str)
		if err != nil {
			return geom.Cell{}, fmt.Errorf("%s: %v", names[i], err)
		}
		cell[i] = v
	}
	return cell, nil
}

func parseVector(str string) (geom.Vec, error) {
	fields := strings.Fields(str)
	if len(fields) != 3 {
		return geom.Vec{}, fmt.Errorf("got %d components, need 3", len(fields))
	}
	var v geom.Vec
	for i, field := range fields {
		x, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return geom.Vec{}, err
		}
		v[i] = x
	}
	return v, nil
}

// ReadPositions reads atom positions out of the given columns of a plain
// text table.
func ReadPositions(file string, xCol, yCol, zCol int) ([]geom.Vec, error) {
	cols, err := table.ReadTable(file, []int{xCol, yCol, zCol}, nil)
	if err != nil {
		return nil, err
	}

	xs, ys, zs := cols[0], cols[1], cols[2]
	positions := make([]geom.Vec, len(xs))
	for i := range positions {
		positions[i] = geom.Vec{xs[i], ys[i], zs[i]}
	}
	return positions, nil
}
