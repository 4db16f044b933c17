package solver

import (
	"testing"

	"dpllsat/internal/cnf"

	"github.com/stretchr/testify/assert"
)

func TestEliminatePureLiterals(t *testing.T) {
	// 1 and 3 are pure; every clause contains one of them.
	formula := mustFormula(t, 3, [][]int64{{1, 2}, {-2, 3}})
	eliminatePureLiterals(formula)
	assert.Empty(t, formula.Clauses)
}

func TestEliminatePureLiteralsNoopWithoutPureLiterals(t *testing.T) {
	formula := mustFormula(t, 2, [][]int64{{1, 2}, {-1, -2}})
	eliminatePureLiterals(formula)
	assert.Equal(t, []cnf.Clause{{1, 2}, {-1, -2}}, formula.Clauses)
}

func TestEliminatePureLiteralsRescans(t *testing.T) {
	// Only 1 is pure at first; removing its clauses leaves {-2,-3}, whose
	// literals become pure in the next pass.
	formula := mustFormula(t, 3, [][]int64{{1, 2}, {-2, -3}, {3, 1}})
	eliminatePureLiterals(formula)
	assert.Empty(t, formula.Clauses)
}

func TestEliminatePureLiteralsKeepsEmptyClause(t *testing.T) {
	formula := mustFormula(t, 2, [][]int64{{}, {1, 2}})
	eliminatePureLiterals(formula)
	assert.Equal(t, []cnf.Clause{{}}, formula.Clauses)
}
