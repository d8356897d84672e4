package sat

import "github.com/rhartert/yagh"

// Order picks the next UNASSIGNED variable for the search driver to decide
// on: always the UNASSIGNED variable with the lowest id, assigned TRUE.
// There is no activity bumping and no phase saving, just a fixed priority.
// The min-heap mechanism is kept as the means of picking efficiently,
// re-keyed here by variable id instead of learned activity; since priority
// never changes, picking the lowest id is just popping the heap.
type Order struct {
	pending *yagh.IntMap[int]
	trail   *Trail
}

// NewOrder returns an Order that consults trail to skip stale entries.
func NewOrder(trail *Trail) *Order {
	return &Order{pending: yagh.New[int](0), trail: trail}
}

// AddVariable registers a freshly declared, UNASSIGNED variable v as a
// decision candidate.
func (o *Order) AddVariable(v int) {
	o.pending.GrowBy(1)
	o.pending.Put(v, v)
}

// Reinsert makes v a decision candidate again. The search driver calls this
// for every variable a backtrack unassigns.
func (o *Order) Reinsert(v int) {
	o.pending.Put(v, v)
}

// Pick returns the lowest-id UNASSIGNED variable's positive literal, or
// (0, false) if every declared variable is already assigned.
func (o *Order) Pick() (Literal, bool) {
	for {
		next, ok := o.pending.Pop()
		if !ok {
			return 0, false
		}
		if o.trail.VarValue(next.Elem) != Unknown {
			continue // stale: already assigned through some other path
		}
		return PositiveLiteral(next.Elem), true
	}
}
