package solver

import (
	"log"

	"dpllsat/internal/cnf"
)

type dpllSolver struct {
	maxNodes uint64 // 0 means unlimited
}

// NewDPLLSolver returns a solver implementing the classic DPLL procedure:
// exhaustive unit propagation, pure-literal elimination, and recursive
// case-splitting on variables in increasing numeric order.
func NewDPLLSolver() Solver {
	return &dpllSolver{}
}

// NewBoundedDPLLSolver behaves like NewDPLLSolver but gives up once the
// search has visited maxNodes nodes, returning Unknown. A node is one
// invocation of the simplify-check-branch step.
func NewBoundedDPLLSolver(maxNodes uint64) Solver {
	return &dpllSolver{maxNodes: maxNodes}
}

func (solver *dpllSolver) Solve(formula *cnf.Formula) (Verdict, error) {
	var visited uint64
	satisfiable, decided := solver.search(formula.Clone(), 1, &visited)
	if !decided {
		return Unknown, nil
	} else if satisfiable {
		return Satisfiable, nil
	}
	return Unsatisfiable, nil
}

// search decides whether the formula is satisfiable using variables numbered
// >= next; assignments to lower variables are implicit in the unit clauses
// accumulated by ancestor branches. The formula is owned by this call and
// mutated freely; branches recurse on independent clones so siblings never
// observe each other's changes. decided is false once the node budget runs
// out.
func (solver *dpllSolver) search(formula *cnf.Formula, next int64, visited *uint64) (satisfiable, decided bool) {
	*visited++
	if solver.maxNodes > 0 && *visited > solver.maxNodes {
		return false, false
	}

	unitPropagate(formula)
	eliminatePureLiterals(formula)

	if len(formula.Clauses) == 0 {
		return true, true
	}
	if formula.HasEmptyClause() {
		return false, true
	}

	if uint64(next) > formula.Variables {
		// Cannot happen for a formula honoring the construction invariants:
		// once every variable has been branched on, propagation has consumed
		// or emptied every clause.
		log.Panicf("branch variable %v exceeds variable count %v on an undecided formula", next, formula.Variables)
	}

	positive := formula.Clone()
	positive.Clauses = append(positive.Clauses, cnf.Clause{next})
	positiveSat, decided := solver.search(positive, next+1, visited)
	if !decided {
		return false, false
	}
	if positiveSat {
		return true, true
	}

	negative := formula.Clone()
	negative.Clauses = append(negative.Clauses, cnf.Clause{-next})
	return solver.search(negative, next+1, visited)
}
