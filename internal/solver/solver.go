package solver

import "dpllsat/internal/cnf"

// Verdict is the outcome of a satisfiability decision.
type Verdict int

const (
	Unknown       Verdict = iota // budget exhausted before a decision
	Satisfiable                  // some assignment makes every clause true
	Unsatisfiable                // no assignment exists
)

func (v Verdict) String() string {
	return [...]string{"UNKNOWN", "SATISFIABLE", "UNSATISFIABLE"}[v]
}

// Solver decides the satisfiability of a CNF formula. Implementations must
// not mutate the given formula.
type Solver interface {
	Solve(*cnf.Formula) (Verdict, error)
}
