package solver

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"dpllsat/internal/cnf"
)

const kissatPath = "kissat"

type kissatSolver struct{}

func NewKissatSolver() Solver {
	return &kissatSolver{}
}

func (solver *kissatSolver) Solve(formula *cnf.Formula) (Verdict, error) {
	dimacs := formula.ToDIMACS() // Transform the formula into DIMACS-CNF string format

	cmd := exec.Command(kissatPath, "-q", "--relaxed")
	cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into kissat's standard input

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		return Unknown, fmt.Errorf("an error occurred during kissat execution: %v : %v", err.Error(), stderr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return Unsatisfiable, nil
	}

	return Satisfiable, nil
}
