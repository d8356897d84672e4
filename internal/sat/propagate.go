package sat

// Propagator repeatedly scans every clause in the store to a fixed point,
// deriving every unit implication forced by the current partial assignment.
// This is the textbook linear-scan propagator, not a watched-literal one:
// every clause is inspected on every sweep. Watched literals are not
// implemented anywhere in this repository.
type Propagator struct {
	clauses *ClauseStore
	trail   *Trail
}

// NewPropagator returns a Propagator operating over the given clause store
// and trail. Both must belong to the same Solver.
func NewPropagator(clauses *ClauseStore, trail *Trail) *Propagator {
	return &Propagator{clauses: clauses, trail: trail}
}

// Propagate drives the assignment to a fixed point: it repeats full sweeps
// over every clause in the store for as long as some sweep assigned at least
// one new literal, and returns the handle of the first falsified clause it
// encounters, or NoClause once a fixed point is reached with no conflict.
// Within one sweep, clauses are scanned by ascending handle; the trail
// records the order units were actually assigned in, which need not match
// scan order across sweeps.
func (p *Propagator) Propagate() ClauseHandle {
	for {
		changed := false

		for h := ClauseHandle(0); int(h) < p.clauses.Count(); h++ {
			c := p.clauses.Get(h)

			satisfied := false
			nUnassigned := 0
			var lastUnassigned Literal

			for _, l := range c.literals {
				switch p.trail.ValueOf(l) {
				case True:
					satisfied = true
				case Unknown:
					nUnassigned++
					lastUnassigned = l
				}
			}
			if satisfied {
				continue
			}

			switch nUnassigned {
			case 0:
				// Fully falsified: report the first conflict seen in scan
				// order and do not keep propagating this sweep.
				return h
			case 1:
				p.trail.Assign(lastUnassigned, h)
				changed = true
			}
		}

		if !changed {
			return NoClause
		}
	}
}
