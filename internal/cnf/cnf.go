package cnf

import (
	"fmt"
	"slices"
	"strings"
)

// Clause is a disjunction of literals. A literal is a nonzero integer whose
// magnitude names a variable and whose sign gives its polarity. An empty
// clause is a contradiction.
type Clause []int64

// Formula is a conjunction of clauses over variables 1..Variables. A formula
// with no clauses is vacuously true.
type Formula struct {
	Variables uint64
	Clauses   []Clause
}

// New builds a Formula from raw clauses, copying them. Literals with
// magnitude 0 or greater than variables are rejected. Tautological clauses
// (containing both v and -v) are dropped entirely; originally empty clauses
// are kept, since they make the formula unsatisfiable.
func New(variables uint64, rawClauses [][]int64) (*Formula, error) {
	formula := &Formula{
		Variables: variables,
		Clauses:   make([]Clause, 0, len(rawClauses)),
	}

	for _, rawClause := range rawClauses {
		clause := make(Clause, 0, len(rawClause))
		tautology := false
		for _, literal := range rawClause {
			if literal == 0 {
				return nil, fmt.Errorf("literal 0 is reserved and cannot appear in a clause")
			}
			magnitude := literal
			if magnitude < 0 {
				magnitude = -magnitude
			}
			if uint64(magnitude) > variables {
				return nil, fmt.Errorf("literal %v exceeds the declared variable count %v", literal, variables)
			}
			if slices.Contains(clause, -literal) {
				tautology = true
				break
			}
			clause = append(clause, literal)
		}
		if tautology {
			continue
		}
		formula.Clauses = append(formula.Clauses, clause)
	}

	return formula, nil
}

// Clone returns a structurally independent copy: mutating the copy's clauses
// never affects the original.
func (f *Formula) Clone() *Formula {
	clauses := make([]Clause, len(f.Clauses))
	for i, clause := range f.Clauses {
		clauses[i] = slices.Clone(clause)
	}
	return &Formula{
		Variables: f.Variables,
		Clauses:   clauses,
	}
}

// HasEmptyClause reports whether any clause is empty, i.e. the formula
// contains a contradiction.
func (f *Formula) HasEmptyClause() bool {
	return slices.ContainsFunc(f.Clauses, func(clause Clause) bool { return len(clause) == 0 })
}

// ToDIMACS serializes the formula into the DIMACS-CNF string format.
func (f *Formula) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", f.Variables, len(f.Clauses))
	for _, clause := range f.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
