package cnf

import "math/rand/v2"

// GenerateFormula builds a random CNF instance where each variable joins each
// clause with probability 0.5, with a random polarity. Clauses are never left
// empty.
func GenerateFormula(variables uint64, clauses int) *Formula {
	formula := &Formula{
		Variables: variables,
		Clauses:   make([]Clause, clauses),
	}

	for i := range clauses {
		formula.Clauses[i] = make(Clause, 0, variables)
		for j := range variables {
			if rand.Float32() < 0.5 {
				var sign int64 = 1
				if rand.Float32() < 0.5 {
					sign = -1
				}
				formula.Clauses[i] = append(formula.Clauses[i], sign*(1+int64(j)))
			}
		}

		if len(formula.Clauses[i]) == 0 {
			var sign int64 = 1
			if rand.Float32() < 0.5 {
				sign = -1
			}
			formula.Clauses[i] = append(formula.Clauses[i], sign*(1+rand.Int64N(int64(variables))))
		}
	}

	return formula
}

// GenerateSatisfiableFormula first draws a full random assignment and then
// generates clauses that each contain at least one literal made true by it,
// so the result is satisfiable by construction.
func GenerateSatisfiableFormula(variables uint64, clauses int) *Formula {
	assignment := make([]int64, variables)
	for i := range variables {
		assignment[i] = 1 + int64(i)
		if rand.Float32() < 0.5 {
			assignment[i] = -assignment[i]
		}
	}

	formula := &Formula{
		Variables: variables,
		Clauses:   make([]Clause, clauses),
	}

	for i := range clauses {
		formula.Clauses[i] = make(Clause, 0, variables)
		witness := rand.Int64N(int64(variables))
		for j := range int64(variables) {
			if j == witness {
				formula.Clauses[i] = append(formula.Clauses[i], assignment[j])
				continue
			}
			if rand.Float32() < 0.3 {
				var sign int64 = 1
				if rand.Float32() < 0.5 {
					sign = -1
				}
				formula.Clauses[i] = append(formula.Clauses[i], sign*(1+j))
			}
		}
	}

	return formula
}

// Satisfies reports whether the assignment (a set of non-contradictory
// literals) makes every clause of the formula true.
func Satisfies(assignment []int64, formula *Formula) bool {
	// Make sure there are no duplicates nor contradictions
	literals := make(map[int64]bool)
	for _, literal := range assignment {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	// Check that all clauses are satisfied
	for _, clause := range formula.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
