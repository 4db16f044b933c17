package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRejectsOutOfRangeLiterals(t *testing.T) {
	_, err := New(2, [][]int64{{1, -3}})
	assert.Error(t, err)

	_, err = New(0, [][]int64{{1}})
	assert.Error(t, err)
}

func TestNewRejectsZeroLiteral(t *testing.T) {
	_, err := New(2, [][]int64{{1, 0, 2}})
	assert.Error(t, err)
}

func TestNewDropsTautologies(t *testing.T) {
	formula, err := New(3, [][]int64{{1, -1}, {2, 3}, {2, 3, -2}})
	assert.NoError(t, err)
	assert.Equal(t, []Clause{{2, 3}}, formula.Clauses)
}

func TestNewKeepsEmptyClause(t *testing.T) {
	// A clause that is empty in the input is a contradiction and must be
	// retained, unlike a clause emptied by tautology filtering.
	formula, err := New(2, [][]int64{{}, {1, 2}})
	assert.NoError(t, err)
	assert.Len(t, formula.Clauses, 2)
	assert.True(t, formula.HasEmptyClause())
}

func TestNewCopiesInput(t *testing.T) {
	raw := [][]int64{{1, 2}}
	formula, err := New(2, raw)
	assert.NoError(t, err)

	raw[0][0] = -2
	assert.Equal(t, Clause{1, 2}, formula.Clauses[0])
}

func TestCloneIsIndependent(t *testing.T) {
	formula, err := New(3, [][]int64{{1, 2}, {-2, 3}})
	assert.NoError(t, err)

	clone := formula.Clone()
	clone.Clauses[0][0] = -3
	clone.Clauses = clone.Clauses[:1]

	assert.Equal(t, Clause{1, 2}, formula.Clauses[0])
	assert.Len(t, formula.Clauses, 2)
}

func TestHasEmptyClause(t *testing.T) {
	formula, err := New(2, [][]int64{{1, 2}})
	assert.NoError(t, err)
	assert.False(t, formula.HasEmptyClause())

	formula.Clauses = append(formula.Clauses, Clause{})
	assert.True(t, formula.HasEmptyClause())
}

func TestToDIMACS(t *testing.T) {
	formula, err := New(3, [][]int64{{1, -3}, {2}})
	assert.NoError(t, err)
	assert.Equal(t, "p cnf 3 2\n1 -3 0\n2 0\n", formula.ToDIMACS())
}

func TestSatisfies(t *testing.T) {
	formula, err := New(3, [][]int64{{1, 2}, {-1, 3}})
	assert.NoError(t, err)

	assert.True(t, Satisfies([]int64{1, 3}, formula))
	assert.True(t, Satisfies([]int64{-1, 2}, formula))
	assert.False(t, Satisfies([]int64{1, -3}, formula))
	assert.False(t, Satisfies([]int64{1, -1, 3}, formula))
}

func TestGenerateSatisfiableFormula(t *testing.T) {
	for range 20 {
		formula := GenerateSatisfiableFormula(10, 30)
		assert.Len(t, formula.Clauses, 30)
		for _, clause := range formula.Clauses {
			assert.NotEmpty(t, clause)
		}
	}
}
