package sat

import "testing"

func setup(numVars int) (*ClauseStore, *Trail, *Propagator) {
	cs := &ClauseStore{}
	tr := &Trail{}
	for i := 0; i < numVars; i++ {
		tr.AddVariable()
	}
	return cs, tr, NewPropagator(cs, tr)
}

func TestPropagate_ChainOfUnitsNoDecisions(t *testing.T) {
	// {1}, {-1,2}, {-2,3}, {-3,4} -> x1=x2=x3=x4=true at level 0, trail
	// length 4, no decisions.
	cs, tr, p := setup(4)
	cs.Add([]Literal{PositiveLiteral(0)}, false)
	cs.Add([]Literal{NegativeLiteral(0), PositiveLiteral(1)}, false)
	cs.Add([]Literal{NegativeLiteral(1), PositiveLiteral(2)}, false)
	cs.Add([]Literal{NegativeLiteral(2), PositiveLiteral(3)}, false)

	if c := p.Propagate(); c != NoClause {
		t.Fatalf("Propagate() reported conflict %v, want none", c)
	}
	if tr.NumAssigned() != 4 {
		t.Fatalf("NumAssigned() = %d, want 4", tr.NumAssigned())
	}
	for v := 0; v < 4; v++ {
		if tr.VarValue(v) != True {
			t.Errorf("var %d = %s, want true", v, tr.VarValue(v))
		}
		if tr.LevelOf(v) != 0 {
			t.Errorf("var %d assigned at level %d, want 0", v, tr.LevelOf(v))
		}
	}
}

func TestPropagate_ContradictoryUnitsConflictAtLevel0(t *testing.T) {
	cs, tr, p := setup(1)
	cs.Add([]Literal{PositiveLiteral(0)}, false)
	cs.Add([]Literal{NegativeLiteral(0)}, false)

	c := p.Propagate()
	if c == NoClause {
		t.Fatalf("Propagate() found no conflict, want one")
	}
	if tr.DecisionLevel() != 0 {
		t.Fatalf("DecisionLevel() = %d, want 0", tr.DecisionLevel())
	}
}

func TestPropagate_NoConflictWhenAClauseIsSatisfied(t *testing.T) {
	cs, tr, p := setup(2)
	cs.Add([]Literal{PositiveLiteral(0), PositiveLiteral(1)}, false)
	tr.Assign(PositiveLiteral(0), NoClause)

	if c := p.Propagate(); c != NoClause {
		t.Fatalf("Propagate() = %v, want NoClause (clause already satisfied)", c)
	}
	if tr.VarValue(1) != Unknown {
		t.Errorf("var 1 should remain unassigned, got %s", tr.VarValue(1))
	}
}

func TestPropagate_TwoUnassignedIsNotActionable(t *testing.T) {
	cs, tr, p := setup(2)
	cs.Add([]Literal{PositiveLiteral(0), PositiveLiteral(1)}, false)

	if c := p.Propagate(); c != NoClause {
		t.Fatalf("Propagate() = %v, want NoClause", c)
	}
	if tr.NumAssigned() != 0 {
		t.Errorf("NumAssigned() = %d, want 0 (no unit clause yet)", tr.NumAssigned())
	}
}
