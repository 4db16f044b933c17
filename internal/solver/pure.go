package solver

import (
	"dpllsat/internal/cnf"

	"github.com/samber/lo"
)

// eliminatePureLiterals removes, in place, every clause containing a pure
// literal (one whose negation appears nowhere in the formula). Each such
// clause is trivially satisfiable by asserting its pure literal. Removing
// clauses can make further literals pure, so the scan repeats until a pass
// finds none. Empty clauses contain no literals and are never removed here.
func eliminatePureLiterals(formula *cnf.Formula) {
	for {
		occurrences := make(map[int64]bool)
		for _, clause := range formula.Clauses {
			for _, literal := range clause {
				occurrences[literal] = true
			}
		}

		pure := make(map[int64]bool)
		for literal := range occurrences {
			if !occurrences[-literal] {
				pure[literal] = true
			}
		}
		if len(pure) == 0 {
			return
		}

		formula.Clauses = lo.Reject(formula.Clauses, func(clause cnf.Clause, _ int) bool {
			return lo.SomeBy(clause, func(literal int64) bool { return pure[literal] })
		})
	}
}
