package solver

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"dpllsat/internal/cnf"
)

type minisatSolver struct{}

func NewMinisatSolver() Solver {
	return &minisatSolver{}
}

func (solver *minisatSolver) Solve(formula *cnf.Formula) (Verdict, error) {
	minisatPath := getExecutablePath("minisatPath")
	dimacs := formula.ToDIMACS() // Transform the formula into DIMACS-CNF string format

	// Minisat reads the problem from a file rather than standard input
	inputTempFile, err := os.CreateTemp("", "dimacs-*.cnf")
	if err != nil {
		return Unknown, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(inputTempFile.Name()) // Ensure the file is removed after execution

	if _, err := inputTempFile.WriteString(dimacs); err != nil {
		return Unknown, fmt.Errorf("failed to write DIMACS to temporary file: %v", err)
	}
	if err := inputTempFile.Close(); err != nil {
		return Unknown, fmt.Errorf("failed to close temporary file: %v", err)
	}

	cmd := exec.Command(minisatPath, "-verb=0", inputTempFile.Name())

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		return Unknown, fmt.Errorf("an error occurred during minisat execution: %v : %v", err.Error(), stderr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return Unsatisfiable, nil
	}

	return Satisfiable, nil
}
