// Package sudoku renders a solved CNF witness back into the N×N grid it
// encodes. It knows nothing about how the grid was encoded into clauses;
// that association is handed to it as a Puzzle built from a DIMACS file's
// sidecar comments.
package sudoku

import (
	"fmt"
	"strings"

	"github.com/solverkit/cdcl/internal/sat"
)

// Mapping associates a SAT variable with the puzzle cell and digit it
// stands for: the variable being true means the cell at (Row, Col) holds
// Value.
type Mapping struct {
	Var, Row, Col, Value int
}

// Fixed is a clue cell given by the puzzle itself, independent of the
// witness.
type Fixed struct {
	Row, Col, Value int
}

// Puzzle holds everything needed to render a witness back into an N×N
// grid.
type Puzzle struct {
	Size     int
	Mappings []Mapping
	Fixed    []Fixed
}

// Assignment is the subset of internal/sat.Solver that Decode needs in
// order to read a witness back. A cell with no true mapping and no fixed
// clue is left blank.
type Assignment interface {
	Assignment(v int) sat.LBool
}

// Decode renders solver's current witness as p's N×N grid, one row per
// line, digits space-separated and blank cells printed as ".". It follows
// the convention that an UNASSIGNED variable is read as true.
func Decode(p Puzzle, solver Assignment) (string, error) {
	if p.Size <= 0 {
		return "", fmt.Errorf("sudoku: invalid grid size %d", p.Size)
	}

	grid := make([][]int, p.Size)
	for i := range grid {
		grid[i] = make([]int, p.Size)
	}

	for _, m := range p.Mappings {
		if m.Row < 0 || m.Row >= p.Size || m.Col < 0 || m.Col >= p.Size {
			return "", fmt.Errorf("sudoku: mapping for var %d refers to cell (%d,%d) outside a %d×%d grid", m.Var, m.Row, m.Col, p.Size, p.Size)
		}
		if solver.Assignment(m.Var) == sat.False {
			continue
		}
		if existing := grid[m.Row][m.Col]; existing != 0 && existing != m.Value {
			return "", fmt.Errorf("sudoku: cell (%d,%d) has conflicting values %d and %d in the witness", m.Row, m.Col, existing, m.Value)
		}
		grid[m.Row][m.Col] = m.Value
	}

	for _, f := range p.Fixed {
		if f.Row < 0 || f.Row >= p.Size || f.Col < 0 || f.Col >= p.Size {
			return "", fmt.Errorf("sudoku: fixed clue refers to cell (%d,%d) outside a %d×%d grid", f.Row, f.Col, p.Size, p.Size)
		}
		if grid[f.Row][f.Col] == 0 {
			grid[f.Row][f.Col] = f.Value
		}
	}

	var sb strings.Builder
	for r := 0; r < p.Size; r++ {
		for c := 0; c < p.Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if grid[r][c] == 0 {
				sb.WriteByte('.')
			} else {
				fmt.Fprintf(&sb, "%d", grid[r][c])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
