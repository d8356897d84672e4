package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rhartert/dimacs"
	"github.com/solverkit/cdcl/internal/sat"
)

type SATSolver interface {
	AddVariable() int
	AddClause([]sat.Literal) error
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS parses the DIMACS CNF file and loads its CNF formula in the
// given SAT solver.
func LoadDIMACS(filename string, gzipped bool, solver SATSolver) error {
	reader, err := reader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer reader.Close()

	b := &builder{solver}
	return dimacs.ReadBuilder(reader, b)
}

// builder wraps the solver to implement dimacs.Builder.
type builder struct {
	solver SATSolver
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem")
	}
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		if l < 0 {
			clause[i] = sat.NegativeLiteral(-l - 1)
		} else {
			clause[i] = sat.PositiveLiteral(l - 1)
		}
	}
	b.solver.AddClause(clause)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

// SidecarMapping associates a SAT variable with the puzzle cell and digit it
// stands for: variable v being true means cell (Row, Col) holds Value.
type SidecarMapping struct {
	Var, Row, Col, Value int
}

// SidecarFixed is a clue cell, given by the puzzle itself rather than
// derived from the solver's witness.
type SidecarFixed struct {
	Row, Col, Value int
}

// Sidecar collects the non-standard "c SIZE ...", "c MAP ...", and
// "c FIXED ..." comment lines a Sudoku-flavored DIMACS file carries
// alongside its clauses, instead of discarding them like LoadDIMACS does.
type Sidecar struct {
	Size     int
	Mappings []SidecarMapping
	Fixed    []SidecarFixed
}

// LoadSudokuDIMACS behaves like LoadDIMACS but additionally captures the
// puzzle's sidecar metadata through the Comment callback.
func LoadSudokuDIMACS(filename string, gzipped bool, solver SATSolver) (*Sidecar, error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &sidecarBuilder{builder: builder{solver}}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return &b.sidecar, nil
}

// sidecarBuilder is a builder that additionally parses SIZE/MAP/FIXED
// comment lines instead of discarding them.
type sidecarBuilder struct {
	builder
	sidecar Sidecar
}

func (b *sidecarBuilder) Comment(c string) error {
	fields := strings.Fields(c)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "SIZE":
		ints, err := atoiAll(fields[1:])
		if err != nil || len(ints) != 1 {
			return fmt.Errorf("malformed SIZE comment: %q", c)
		}
		b.sidecar.Size = ints[0]
	case "MAP":
		ints, err := atoiAll(fields[1:])
		if err != nil || len(ints) != 4 {
			return fmt.Errorf("malformed MAP comment: %q", c)
		}
		b.sidecar.Mappings = append(b.sidecar.Mappings, SidecarMapping{
			Var: ints[0], Row: ints[1], Col: ints[2], Value: ints[3],
		})
	case "FIXED":
		ints, err := atoiAll(fields[1:])
		if err != nil || len(ints) != 3 {
			return fmt.Errorf("malformed FIXED comment: %q", c)
		}
		b.sidecar.Fixed = append(b.sidecar.Fixed, SidecarFixed{
			Row: ints[0], Col: ints[1], Value: ints[2],
		})
	}
	return nil
}

func atoiAll(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// ReadModels returns the list of models (if any) contained in the given file.
func ReadModels(filename string) ([][]bool, error) {
	reader, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer reader.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(reader, b); err != nil {
		return nil, err
	}

	return b.models, nil
}

// modelBuilder implements dimacs.Builder, collecting each clause line as a
// model.
type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("model files should not have problem lines")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil // ignore comments
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
