package solver

import (
	"slices"

	"dpllsat/internal/cnf"

	"github.com/samber/lo"
)

// unitPropagate resolves unit clauses in place until none remain. For each
// unit clause with sole literal p, every clause containing p is removed and
// the literal -p is deleted from every clause containing it. Deleting -p can
// shrink a clause down to a new unit, so the scan restarts until a genuine
// fixed point. May leave behind an empty clause (contradiction) or an empty
// formula (trivially satisfied); the caller checks for both.
//
// Each round drops at least one clause or literal, so the loop terminates.
func unitPropagate(formula *cnf.Formula) {
	for {
		unit, found := lo.Find(formula.Clauses, func(clause cnf.Clause) bool { return len(clause) == 1 })
		if !found {
			return
		}
		p := unit[0]

		remaining := make([]cnf.Clause, 0, len(formula.Clauses))
		for _, clause := range formula.Clauses {
			if slices.Contains(clause, p) {
				continue
			}
			if slices.Contains(clause, -p) {
				clause = lo.Filter(clause, func(literal int64, _ int) bool { return literal != -p })
			}
			remaining = append(remaining, clause)
		}
		formula.Clauses = remaining
	}
}
