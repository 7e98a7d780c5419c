package main

// bondhist plots a histogram of every bond length below the cutoff in a
// periodic structure:
//
//     bondhist config_file out_file
//
// config_file uses the same [Neighbors] format as the main tool.

import (
	"fmt"
	"log"
	"os"

	plt "github.com/phil-mansfield/pyplot"
	"gopkg.in/gcfg.v1"

	"github.com/ruoitrau86/differentiable-atomistic-potentials/analyze"
	"github.com/ruoitrau86/differentiable-atomistic-potentials/io"
	"github.com/ruoitrau86/differentiable-atomistic-potentials/neighborlist"
)

const bins = 40

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("Usage: %s config_file out_file", os.Args[0])
	}
	configFile, outFile := os.Args[1], os.Args[2]

	wrap := io.DefaultNeighborsWrapper()
	if err := gcfg.ReadFileInto(wrap, configFile); err != nil {
		log.Fatal(err.Error())
	}
	con := &wrap.Neighbors

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
	log.Printf("Read %d atoms from %s", len(positions), con.Positions)

	grid, err := neighborlist.Distances(
		positions, cell, con.Cutoff, neighborlist.WithSkin(con.Skin),
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	centers, counts, err := analyze.DistanceHistogram(grid, bins, con.Cutoff)
	if err != nil {
		log.Fatal(err.Error())
	}

	plt.Reset()
	plt.Figure()
	plt.Plot(centers, counts, "k", plt.LW(2))
	plt.Title(fmt.Sprintf("%d atoms, cutoff %g", len(positions), con.Cutoff))
	plt.XLabel(`$r$`, plt.FontSize(16))
	plt.YLabel("bonds", plt.FontSize(16))
	plt.SaveFig(outFile)
	plt.Execute()
}
