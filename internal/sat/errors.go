package sat

import "fmt"

// InputError reports a malformed clause handed to the solver: a literal
// referring to a variable that was never declared with AddVariable. This is
// the only validation the core performs; everything else (duplicate or
// tautological clauses) is accepted and propagated normally. The core never
// attempts to recover from one.
type InputError struct {
	Clause []Literal // the offending clause, for diagnostics
	Lit    Literal   // the literal that triggered the error
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("malformed clause %v: %s", e.Clause, e.Reason)
}

func newOutOfRangeError(clause []Literal, lit Literal, numVars int) error {
	return &InputError{
		Clause: clause,
		Lit:    lit,
		Reason: fmt.Sprintf("literal %s refers to a variable outside 0..%d", lit, numVars-1),
	}
}
