package io

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/golang/geo/r3"
	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/wellpath/angle"
	"github.com/phil-mansfield/wellpath/survey"
)

// TrajectoryHeader describes the provenance of a trajectory table.
type TrajectoryHeader struct {
	Input    string
	Strategy string
	Unit     angle.Unit
}

// Trajectory output columns. The first three are in the header's unit.
const (
	DepthColumn = iota
	InclinationColumn
	AzimuthColumn
	NorthColumn
	EastColumn
	TVDColumn
)

// WriteTrajectory writes one row per vertex: measured depth, inclination,
// azimuth, north, east, and true vertical depth. The header is written as
// '#' comment lines so the result can be read back as a table.
func WriteTrajectory(
	hd TrajectoryHeader, vs []survey.Vertex, ps []r3.Vector, wr io.Writer,
) error {
	if len(vs) != len(ps) {
		return fmt.Errorf(
			"len(vs) = %d, but len(ps) = %d", len(vs), len(ps),
		)
	}

	bw := bufio.NewWriter(wr)
	fmt.Fprintf(bw, "# Input: %s\n", hd.Input)
	fmt.Fprintf(bw, "# Strategy: %s\n", hd.Strategy)
	fmt.Fprintf(bw, "# Column 0 - measured depth\n")
	fmt.Fprintf(bw, "# Column 1 - inclination (%s)\n", hd.Unit)
	fmt.Fprintf(bw, "# Column 2 - azimuth (%s)\n", hd.Unit)
	fmt.Fprintf(bw, "# Column 3 - north\n")
	fmt.Fprintf(bw, "# Column 4 - east\n")
	fmt.Fprintf(bw, "# Column 5 - true vertical depth\n")

	for i := range vs {
		v, p := vs[i], ps[i]
		fmt.Fprintf(bw, "%.12g %.12g %.12g %.12g %.12g %.12g\n",
			v.Position(), v.Inclination(hd.Unit), v.Azimuth(hd.Unit),
			p.X, p.Y, p.Z,
		)
	}
	return bw.Flush()
}

// WriteTrajectoryFile is WriteTrajectory into a newly created file.
func WriteTrajectoryFile(
	file string, hd TrajectoryHeader, vs []survey.Vertex, ps []r3.Vector,
) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err = WriteTrajectory(hd, vs, ps, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadTrajectory reads a file written by WriteTrajectory and returns its
// columns, indexed by DepthColumn through TVDColumn.
func ReadTrajectory(file string) ([][]float64, error) {
	colIdxs := []int{
		DepthColumn, InclinationColumn, AzimuthColumn,
		NorthColumn, EastColumn, TVDColumn,
	}
	return table.ReadTable(file, colIdxs, nil)
}
