package solver

import (
	"testing"

	"dpllsat/internal/cnf"

	"github.com/stretchr/testify/assert"
)

func mustFormula(t *testing.T, variables uint64, clauses [][]int64) *cnf.Formula {
	t.Helper()
	formula, err := cnf.New(variables, clauses)
	assert.NoError(t, err)
	return formula
}

func TestUnitPropagateConsumesSatisfiedClauses(t *testing.T) {
	formula := mustFormula(t, 3, [][]int64{{1}, {1, 2}, {-1, 3}})
	unitPropagate(formula)

	// {1} and {1,2} are satisfied by 1; {-1,3} loses -1 and becomes the unit
	// {3}, which then satisfies itself.
	assert.Empty(t, formula.Clauses)
}

func TestUnitPropagateCascades(t *testing.T) {
	formula := mustFormula(t, 4, [][]int64{{1}, {-1, 2}, {-2, 3}, {-3, 4}})
	unitPropagate(formula)
	assert.Empty(t, formula.Clauses)
}

func TestUnitPropagateProducesEmptyClause(t *testing.T) {
	formula := mustFormula(t, 1, [][]int64{{1}, {-1}})
	unitPropagate(formula)

	assert.Equal(t, []cnf.Clause{{}}, formula.Clauses)
	assert.True(t, formula.HasEmptyClause())
}

func TestUnitPropagateNoUnitsIsNoop(t *testing.T) {
	formula := mustFormula(t, 3, [][]int64{{1, 2}, {-1, 3}})
	unitPropagate(formula)
	assert.Equal(t, []cnf.Clause{{1, 2}, {-1, 3}}, formula.Clauses)
}

func TestUnitPropagateIdempotentAtFixedPoint(t *testing.T) {
	formula := mustFormula(t, 4, [][]int64{{1}, {-1, 2, 3}, {-2, -3}, {3, 4}})
	unitPropagate(formula)
	once := formula.Clone()
	unitPropagate(formula)
	assert.Equal(t, once.Clauses, formula.Clauses)
}
