package sat

import (
	"fmt"
	"time"
)

// Result is the sole observable outcome of Solve.
type Result int8

const (
	// SAT means the solver found a total assignment witness satisfying
	// every original clause.
	SAT Result = 1
	// UNSAT means the solver derived a top-level conflict: no assignment
	// satisfies every original clause.
	UNSAT Result = -1
)

func (r Result) String() string {
	if r == SAT {
		return "SAT"
	}
	return "UNSAT"
}

// Options configures ambient, non-algorithmic behavior of the solver.
// Nothing here changes the decision procedure itself: the kernel has no
// tunable knobs (no restarts, no clause deletion, a fixed decision policy).
type Options struct {
	// Verbose makes Solve print "c <metric> ..." progress lines to stdout
	// as it searches.
	Verbose bool
}

// DefaultOptions is the zero-configuration solver: silent, deterministic.
var DefaultOptions = Options{}

// Solver composes the core subsystems into the CDCL decision procedure: a
// ClauseStore, a Trail, a Propagator, an Analyzer, and an Order (the
// decision-variable picker that backs the search driver below). It is
// strictly single-threaded and non-suspending: all of its mutable state is
// owned exclusively by this instance.
type Solver struct {
	clauses  *ClauseStore
	trail    *Trail
	prop     *Propagator
	analyzer *Analyzer
	order    *Order

	// unsat is latched once a top-level conflict is derived, either from an
	// empty clause at ingestion or from a level-0 conflict in the search
	// driver (which is where contradictory unit clauses surface). Once set,
	// every subsequent Solve call returns UNSAT immediately.
	unsat bool

	learntCount int64

	// Search statistics, reported verbatim in verbose mode.
	TotalConflicts int64
	TotalDecisions int64
	startTime      time.Time

	// Models accumulates every witness found by EnumerateModels. Solve
	// itself only ever needs the latest one, but keeping the history costs
	// nothing a caller that ignores it pays for.
	Models [][]bool

	verbose bool
}

// NewSolver returns a Solver configured with opts.
func NewSolver(opts Options) *Solver {
	trail := &Trail{}
	clauses := &ClauseStore{}
	return &Solver{
		clauses:  clauses,
		trail:    trail,
		prop:     NewPropagator(clauses, trail),
		analyzer: NewAnalyzer(clauses, trail),
		order:    NewOrder(trail),
		verbose:  opts.Verbose,
	}
}

// NewDefaultSolver returns a Solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// NumVariables returns the number of variables declared so far.
func (s *Solver) NumVariables() int {
	return s.trail.NumVariables()
}

// NumAssigned returns the number of currently assigned variables.
func (s *Solver) NumAssigned() int {
	return s.trail.NumAssigned()
}

// NumClauses returns the total number of clauses ever added, originals and
// learned alike.
func (s *Solver) NumClauses() int {
	return s.clauses.Count()
}

// NumLearnts returns the number of clauses produced by conflict analysis so
// far. Learned clauses are never deleted, so this only ever grows.
func (s *Solver) NumLearnts() int {
	return int(s.learntCount)
}

// AddVariable declares one new variable and returns its 0-based id. Variable
// ids are otherwise 1-based in the external (DIMACS) representation; the
// front-end packages are responsible for that translation.
func (s *Solver) AddVariable() int {
	v := s.trail.AddVariable()
	s.analyzer.AddVariable()
	s.order.AddVariable(v)
	return v
}

// AddClause adds an original clause to the solver. Precondition: it may only
// be called at decision level 0 (original clauses are created once, at
// ingestion). An empty clause latches the solver UNSAT immediately: the
// empty clause is never stored, since it can never be satisfied. Every
// literal must refer to a variable already declared with AddVariable, or
// AddClause returns an *InputError without mutating the solver.
func (s *Solver) AddClause(lits []Literal) error {
	if s.trail.DecisionLevel() != 0 {
		return fmt.Errorf("sat: AddClause called at decision level %d, must be 0", s.trail.DecisionLevel())
	}
	if len(lits) == 0 {
		s.unsat = true
		return nil
	}
	numVars := s.trail.NumVariables()
	for _, l := range lits {
		if v := l.VarID(); v < 0 || v >= numVars {
			return newOutOfRangeError(lits, l, numVars)
		}
	}
	s.clauses.Add(lits, false)
	return nil
}

// Assignment returns the value of variable v. After Solve has returned SAT,
// this is v's value in the witness it found (the latest entry of Models),
// even though Solve rewinds the trail before returning. Otherwise it is v's
// current value on the trail; a variable that never entered the trail is
// UNASSIGNED, and presentation layers treat UNASSIGNED as TRUE by convention.
func (s *Solver) Assignment(v int) LBool {
	if n := len(s.Models); n > 0 && !s.unsat && v < len(s.Models[n-1]) {
		return Lift(s.Models[n-1][v])
	}
	return s.trail.VarValue(v)
}

// Solve runs the decide/propagate/analyze/backtrack loop to completion and
// returns SAT or UNSAT. It is safe to call Solve again after a SAT result
// (e.g. having added a blocking clause, see EnumerateModels): Solve always
// rewinds the trail to decision level 0 before returning, whichever result
// it reached.
func (s *Solver) Solve() Result {
	if s.unsat {
		return UNSAT
	}

	s.startTime = time.Now()
	result := s.search()

	s.trail.UnassignAbove(0, func(v int) { s.order.Reinsert(v) })
	return result
}

func (s *Solver) search() Result {
	for {
		conflict := s.prop.Propagate()

		if conflict != NoClause {
			s.TotalConflicts++

			if s.trail.DecisionLevel() == 0 {
				s.unsat = true
				return UNSAT
			}

			learned, backtrackLevel := s.analyzer.Analyze(conflict)
			s.clauses.Add(learned, true)
			s.learntCount++

			s.trail.UnassignAbove(backtrackLevel, func(v int) { s.order.Reinsert(v) })
			// The newly learned clause is falsified by every literal except
			// the asserting one, which is now unassigned after rewinding:
			// it is unit, and will be re-propagated on the next iteration.

			if s.verbose {
				s.printStats()
			}
			continue
		}

		lit, ok := s.order.Pick()
		if !ok {
			s.saveModel()
			return SAT
		}

		s.TotalDecisions++
		s.trail.BeginDecisionLevel()
		s.trail.Assign(lit, NoClause)
	}
}

func (s *Solver) saveModel() {
	model := make([]bool, s.trail.NumVariables())
	for v := range model {
		// UNASSIGNED-as-TRUE convention. With the lowest-id decision policy
		// every variable ends up on the trail by the time Pick reports none
		// left (even with zero clauses, each one is decided), so the
		// convention does not change any value saved here.
		model[v] = s.trail.VarValue(v) != False
	}
	s.Models = append(s.Models, model)
}

// EnumerateModels repeatedly solves s, recording every model found (via
// Solve's own bookkeeping into s.Models) and blocking each one with a
// forbidding clause, until the instance becomes UNSAT. It is not part of
// the core decision procedure.
func EnumerateModels(s *Solver) {
	for s.Solve() == SAT {
		last := s.Models[len(s.Models)-1]
		blocking := make([]Literal, len(last))
		for v, val := range last {
			if val {
				blocking[v] = NegativeLiteral(v)
			} else {
				blocking[v] = PositiveLiteral(v)
			}
		}
		if err := s.AddClause(blocking); err != nil {
			return
		}
	}
}

func (s *Solver) printStats() {
	fmt.Printf(
		"c %14.3fs %14d conflicts %14d decisions %14d learnts\n",
		time.Since(s.startTime).Seconds(),
		s.TotalConflicts,
		s.TotalDecisions,
		s.learntCount,
	)
}
