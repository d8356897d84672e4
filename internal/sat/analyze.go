package sat

// Analyzer implements First-UIP conflict analysis: from a falsified clause it
// resolves backward through reason clauses until exactly one literal at the
// current decision level remains — the First Unique Implication Point —
// producing an asserting learned clause and the level to backtrack to.
type Analyzer struct {
	clauses *ClauseStore
	trail   *Trail

	// seen and learned are scratch buffers owned by the solver instance and
	// reused across calls instead of being reallocated per conflict. seen
	// uses the generation-counter trick from ResetSet.
	seen    ResetSet
	learned []Literal
}

// NewAnalyzer returns an Analyzer operating over the given clause store and
// trail. Both must belong to the same Solver.
func NewAnalyzer(clauses *ClauseStore, trail *Trail) *Analyzer {
	return &Analyzer{clauses: clauses, trail: trail}
}

// AddVariable grows the analyzer's seen-set to cover one more variable.
func (a *Analyzer) AddVariable() {
	a.seen.Expand()
}

// Analyze runs First-UIP conflict analysis on conflict.
//
// Precondition: trail.DecisionLevel() > 0 and conflict is falsified under
// the current assignment; the caller must treat a conflict at decision
// level 0 as UNSAT instead of calling Analyze.
//
// Postcondition: the returned clause is falsified by the current assignment
// and contains exactly one literal at the current decision level — the
// asserting literal, at index 0. backtrackLevel is the highest level among
// the clause's other literals, or 0 if the clause is unit.
func (a *Analyzer) Analyze(conflict ClauseHandle) ([]Literal, int) {
	currentLevel := a.trail.DecisionLevel()

	a.seen.Clear()
	a.learned = a.learned[:0]
	a.learned = append(a.learned, -1) // reserved for the asserting literal

	counter := 0 // number of seen-but-not-yet-resolved literals at currentLevel
	backtrackLevel := 0

	resolve := func(lits []Literal) {
		for _, l := range lits {
			v := l.VarID()
			if a.seen.Contains(v) {
				continue
			}
			a.seen.Add(v)

			if a.trail.LevelOf(v) == currentLevel {
				counter++
				continue
			}

			// l is falsified under the current assignment, so it belongs
			// in the learned clause as-is: this keeps the clause falsified
			// now and, after backtracking to backtrackLevel, unit on the
			// asserting literal.
			a.learned = append(a.learned, l)
			if lv := a.trail.LevelOf(v); lv > backtrackLevel {
				backtrackLevel = lv
			}
		}
	}

	// Seed with the conflict clause: every one of its literals is false
	// under the current assignment, so all are candidates to resolve on.
	resolve(a.clauses.Get(conflict).Literals())

	// Walk the trail downward, resolving through the reason clause of each
	// seen variable at the current level, until exactly one remains: that
	// variable is the First-UIP. The walk never needs the reason of the
	// variable it stops on — whether or not that variable happens to be the
	// level's decision, termination never depends on its reason, so a
	// NoClause reason there is never dereferenced.
	next := a.trail.NumAssigned() - 1
	var uip Literal
	for {
		for !a.seen.Contains(a.trail.Literal(next).VarID()) {
			next--
		}
		uip = a.trail.Literal(next)
		next--
		counter--

		if counter <= 0 {
			break
		}

		v := uip.VarID()
		reason := a.trail.ReasonOf(v)
		resolve(literalsExcluding(a.clauses.Get(reason).Literals(), v))
	}

	a.learned[0] = uip.Opposite()
	return a.learned, backtrackLevel
}

// literalsExcluding returns reason's literals other than the one that forced
// variable v — the reason clause's explanation for why v was implied.
func literalsExcluding(lits []Literal, v int) []Literal {
	out := make([]Literal, 0, len(lits)-1)
	for _, l := range lits {
		if l.VarID() != v {
			out = append(out, l)
		}
	}
	return out
}
