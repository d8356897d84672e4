package sat

import "strings"

// Clause is an ordered, immutable disjunction of literals. Once added to a
// ClauseStore it is never mutated: there is no clause deletion, simplification,
// or watched-literal bookkeeping to keep in sync. The only per-clause state
// worth keeping around is whether it was learnt, which is useful for
// diagnostics.
type Clause struct {
	literals []Literal
	learnt   bool
}

// Literals returns the clause's literals in the order they were added. The
// returned slice must not be modified.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.literals)
}

// Learnt reports whether c was produced by conflict analysis rather than
// supplied at ingestion.
func (c *Clause) Learnt() bool {
	return c.learnt
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// ClauseHandle is a stable, dense, monotonically increasing index into a
// ClauseStore. Handles never shift across reallocation and remain valid
// forever, which lets reason[v] be a plain integer instead of a pointer.
type ClauseHandle int

// NoClause is the sentinel handle meaning "no reason clause": used for
// decision literals and for unassigned variables.
const NoClause ClauseHandle = -1

// ClauseStore owns every clause ever added to the solver: the original
// clauses supplied at ingestion, followed by clauses learned during conflict
// analysis, appended forever in the order they were learned. It performs no
// validation beyond what its caller already did; duplicate or tautological
// clauses are accepted and stored as-is.
type ClauseStore struct {
	clauses []*Clause
}

// Add appends a clause with the given literals and returns its handle. The
// caller must have already validated that lits is nonempty and contains only
// nonzero, in-range literals. The literal slice is copied, so the caller's
// slice may be reused.
func (cs *ClauseStore) Add(lits []Literal, learnt bool) ClauseHandle {
	c := &Clause{
		literals: append([]Literal(nil), lits...),
		learnt:   learnt,
	}
	cs.clauses = append(cs.clauses, c)
	return ClauseHandle(len(cs.clauses) - 1)
}

// Get returns an immutable view of the clause referenced by h.
func (cs *ClauseStore) Get(h ClauseHandle) *Clause {
	return cs.clauses[h]
}

// Count returns the total number of clauses ever added, originals and
// learned alike.
func (cs *ClauseStore) Count() int {
	return len(cs.clauses)
}
