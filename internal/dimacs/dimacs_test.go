package dimacs

import (
	_ "embed"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/solverkit/cdcl/internal/sat"
)

type instance struct {
	Variables int
	Clauses   [][]sat.Literal
}

func (i *instance) AddVariable() int {
	i.Variables++
	return i.Variables - 1
}

func (i *instance) AddClause(tmpClause []sat.Literal) error {
	clause := make([]sat.Literal, len(tmpClause))
	copy(clause, tmpClause)
	i.Clauses = append(i.Clauses, clause)
	return nil
}

var want = instance{
	Variables: 3,
	Clauses: [][]sat.Literal{
		{0, 2, 4},
		{0, 2, 5},
		{0, 3, 4},
		{1, 2, 4},
		{1, 3, 4},
		{1, 2, 5},
		{0, 3, 5},
		{1, 3, 5},
	},
}

func TestParseDIMACS_cnf(t *testing.T) {
	got := instance{}
	gotErr := LoadDIMACS("testdata/test_instance.cnf", false, &got)

	if gotErr != nil {
		t.Errorf("ParseDIMACS(): want no error, got %s", gotErr)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseDIMACS(): mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDIMACS_gzip(t *testing.T) {
	got := instance{}
	gotErr := LoadDIMACS("testdata/test_instance.cnf.gz", true, &got)

	if gotErr != nil {
		t.Errorf("ParseDIMACS(): want no error, got %s", gotErr)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseDIMACS(): mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDIMACS_noFile(t *testing.T) {
	got := instance{}
	gotErr := LoadDIMACS("", false, &got)

	if gotErr == nil {
		t.Errorf("ParseDIMACS(): want error, got none")
	}
}

func TestParseDIMACS_gzip_notGzipFile(t *testing.T) {
	got := instance{}
	gotErr := LoadDIMACS("testdata/test_instance.cnf", true, &got)

	if gotErr == nil {
		t.Errorf("ParseDIMACS(): want error, got none")
	}
}

func TestParseDIMACSThenInstantiate(t *testing.T) {
	inst, err := ParseDIMACS("testdata/test_instance.cnf")
	if err != nil {
		t.Fatalf("ParseDIMACS(): %s", err)
	}
	if inst.Variables != 3 {
		t.Fatalf("Variables = %d, want 3", inst.Variables)
	}
	if len(inst.Clauses) != 8 {
		t.Fatalf("len(Clauses) = %d, want 8", len(inst.Clauses))
	}

	got := instance{}
	if err := Instantiate(&got, inst); err != nil {
		t.Fatalf("Instantiate(): %s", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Instantiate(): mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDIMACS_gzSuffixAutoDetected(t *testing.T) {
	inst, err := ParseDIMACS("testdata/test_instance.cnf.gz")
	if err != nil {
		t.Fatalf("ParseDIMACS(): %s", err)
	}
	if inst.Variables != 3 || len(inst.Clauses) != 8 {
		t.Fatalf("ParseDIMACS() = %+v, want 3 variables and 8 clauses", inst)
	}
}

func TestInstantiate_PropagatesAddClauseError(t *testing.T) {
	inst := &Instance{Variables: 0, Clauses: [][]int{{1}}}
	err := Instantiate(sat.NewDefaultSolver(), inst)
	if err == nil {
		t.Fatalf("Instantiate(): want error for out-of-range literal, got none")
	}
}
