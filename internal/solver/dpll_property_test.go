package solver

import (
	"math/rand/v2"
	"testing"

	"dpllsat/internal/cnf"

	. "github.com/onsi/gomega"
)

func TestDPLLSatisfiableByConstruction(t *testing.T) {
	g := NewWithT(t)

	for range 25 {
		variables := uint64(rand.IntN(10) + 1)
		clauses := rand.IntN(40) + 1
		formula := cnf.GenerateSatisfiableFormula(variables, clauses)

		verdict, err := NewDPLLSolver().Solve(formula)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(verdict).To(Equal(Satisfiable), "formula built around a known assignment must be satisfiable:\n%v", formula.ToDIMACS())
	}
}

func TestDPLLRandomInstancesDecide(t *testing.T) {
	g := NewWithT(t)

	for range 25 {
		variables := uint64(rand.IntN(8) + 1)
		clauses := rand.IntN(30) + 1
		formula := cnf.GenerateFormula(variables, clauses)

		verdict, err := NewDPLLSolver().Solve(formula)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(verdict).To(BeElementOf(Satisfiable, Unsatisfiable))
	}
}
