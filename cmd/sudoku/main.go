// Command sudoku reads a Sudoku puzzle encoded as a DIMACS CNF file, with
// its "c SIZE", "c MAP", and "c FIXED" sidecar comments describing the grid,
// solves it, and prints the solved grid.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/solverkit/cdcl/internal/sat"
	"github.com/solverkit/cdcl/internal/sudoku"
	"github.com/solverkit/cdcl/parsers"
)

var flagGzip = flag.Bool(
	"gzip",
	false,
	"the instance file is gzip-compressed",
)

func run(filename string, gzipped bool) error {
	s := sat.NewDefaultSolver()
	sidecar, err := parsers.LoadSudokuDIMACS(filename, gzipped, s)
	if err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	status := s.Solve()
	fmt.Printf("c status: %s\n", status.String())
	if status != sat.SAT {
		return nil
	}

	puzzle := sudoku.Puzzle{Size: sidecar.Size}
	for _, m := range sidecar.Mappings {
		// c MAP variable ids share the clauses' 1-based DIMACS numbering;
		// translate to the solver's 0-based ids before querying Assignment.
		puzzle.Mappings = append(puzzle.Mappings, sudoku.Mapping{
			Var: m.Var - 1, Row: m.Row, Col: m.Col, Value: m.Value,
		})
	}
	for _, f := range sidecar.Fixed {
		puzzle.Fixed = append(puzzle.Fixed, sudoku.Fixed{
			Row: f.Row, Col: f.Col, Value: f.Value,
		})
	}

	grid, err := sudoku.Decode(puzzle, s)
	if err != nil {
		return fmt.Errorf("could not decode witness: %s", err)
	}
	fmt.Print(grid)
	return nil
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 || flag.Arg(0) == "" {
		log.Fatal("missing instance file")
	}
	if err := run(flag.Arg(0), *flagGzip); err != nil {
		log.Fatal(err)
	}
}
