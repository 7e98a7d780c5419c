package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/ruoitrau86/differentiable-atomistic-potentials/analyze"
	"github.com/ruoitrau86/differentiable-atomistic-potentials/io"
	"github.com/ruoitrau86/differentiable-atomistic-potentials/neighborlist"
)

func main() {
	// The main function manages input sanitization and hands each mode off
	// to its secondary main function.

	var (
		neighborsStr  string
		exampleConfig string
	)
	vars := map[string]*string{
		"Neighbors":     &neighborsStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&neighborsStr, "Neighbors", "",
		"Configuration file for [Neighbors] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Neighbors'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Neighbors":
		wrap := io.DefaultNeighborsWrapper()
		err := gcfg.ReadFileInto(wrap, neighborsStr)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Neighbors

		if !con.ValidPositions() {
			log.Fatal("Invalid/non-existent 'Positions' value.")
		} else if !con.ValidCell() {
			log.Fatal("Invalid/non-existent 'CellA', 'CellB', or 'CellC' value.")
		} else if !con.ValidCutoff() {
			log.Fatal("Invalid/non-existent 'Cutoff' value.")
		} else if !con.ValidColumns() {
			log.Fatal("Invalid 'XColumn', 'YColumn', or 'ZColumn' value.")
		} else if !con.ValidSkin() {
			log.Fatal("Invalid 'Skin' value.")
		} else if !con.ValidConvention() {
			log.Fatal(
				"Invalid 'Convention' value. Only recognized values are " +
					"'Bothways', 'Oneway', and 'Count'.",
			)
		}

		neighborsMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Neighbors":
			fmt.Println(io.ExampleNeighborsFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only " +
					"recognized argument is 'Neighbors'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive
// error if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but only one flag can be "+
				"set at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// neighborsMain reads the positions and writes either one line per bonded
// pair or one bond count per atom to stdout, depending on the convention.
func neighborsMain(con *io.NeighborsConfig) {
	positions, err := io.ReadPositions(
		con.Positions, con.XColumn, con.YColumn, con.ZColumn,
	)
	if err != nil {
		log.Fatal(err.Error())
	}
	cell, err := con.Cell()
	if err != nil {
		log.Fatal(err.Error())
	}

	var lists [][]neighborlist.Neighbor
	switch strings.ToLower(con.Convention) {
	case "bothways":
		grid, err := neighborlist.Distances(
			positions, cell, con.Cutoff, neighborlist.WithSkin(con.Skin),
		)
		if err != nil {
			log.Fatal(err.Error())
		}
		lists = make([][]neighborlist.Neighbor, grid.N)
		for i := range lists {
			if lists[i], err = grid.Neighbors(i); err != nil {
				log.Fatal(err.Error())
			}
		}
	case "oneway":
		lists, err = neighborlist.OnewayLists(
			positions, cell, con.Cutoff, neighborlist.WithSkin(con.Skin),
		)
		if err != nil {
			log.Fatal(err.Error())
		}
	case "count":
		grid, err := neighborlist.Distances(
			positions, cell, con.Cutoff, neighborlist.WithSkin(con.Skin),
		)
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Println("# atom bonds")
		for i, c := range analyze.Coordination(grid) {
			fmt.Printf("%6d %6d\n", i, c)
		}
		return
	default:
		panic("Impossible")
	}

	fmt.Println("# atom neighbor n1 n2 n3 distance")
	for i, list := range lists {
		for _, nb := range list {
			d := positions[nb.Index].
				Add(cell.Translation(nb.Offset)).
				Sub(positions[i]).
				Norm()
			fmt.Printf(
				"%6d %6d %3d %3d %3d %10.6f\n",
				i, nb.Index, nb.Offset[0], nb.Offset[1], nb.Offset[2], d,
			)
		}
	}
}
