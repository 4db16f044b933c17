package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"slices"
	"strings"

	"dpllsat/internal/dimacs"
	"dpllsat/internal/solver"

	"github.com/samber/lo"
)

var (
	budget       uint64
	validSolvers = []string{"dpll", "kissat", "cadical", "minisat"}
	solvers      = map[string]func() solver.Solver{
		"dpll": func() solver.Solver {
			if budget > 0 {
				return solver.NewBoundedDPLLSolver(budget)
			}
			return solver.NewDPLLSolver()
		},
		"kissat":  solver.NewKissatSolver,
		"cadical": solver.NewCadicalSolver,
		"minisat": solver.NewMinisatSolver,
	}
	// Exit codes follow the SAT-solver convention: 10 for satisfiable, 20
	// for unsatisfiable, 0 when undecided.
	exitCodes = map[solver.Verdict]int{
		solver.Satisfiable:   10,
		solver.Unsatisfiable: 20,
		solver.Unknown:       0,
	}
)

func main() {
	// Define arguments
	solverPtr := flag.String("solver", "dpll", "Solver to use. Allowed values are: \"dpll\", \"kissat\", \"cadical\", \"minisat\", where \"dpll\" is the default")
	budgetPtr := flag.Uint64("budget", 0, "Node budget for the dpll solver; the verdict is UNKNOWN once exceeded, where 0 (unlimited) is the default")
	filePathPtr := flag.String("file", "", "Path to the input DIMACS-CNF file")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)
	budget = *budgetPtr
	filePath := *filePathPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if filePath == "" {
		log.Fatal("an input file must be specified")
	} else if budget > 0 && solverStr != "dpll" {
		log.Fatalf("a node budget only applies to the dpll solver, not %v", solverStr)
	}

	if solverStr == "minisat" {
		setConfigPath()
	}

	// Extract the formula
	file, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("cannot open input file: %v", err)
	}
	defer file.Close()

	formula, err := dimacs.Parse(file)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	// Decide satisfiability
	verdict, err := solvers[solverStr]().Solve(formula)
	if err != nil {
		log.Fatalf("an error occurred while solving: %v", err)
	}

	fmt.Println(verdict)
	os.Exit(exitCodes[verdict])
}

func setConfigPath() {
	execPath, err := os.Executable()
	if err != nil {
		log.Fatalf("cannot determine executable path: %v", err)
	}
	execPath = path.Dir(execPath)

	// Verify config.json exists
	files, err := os.ReadDir(execPath)
	if err != nil {
		log.Fatalf("cannot read executable's directory: %v", err)
	}
	fileNames := lo.Map(files, func(file os.DirEntry, _ int) string { return file.Name() })

	if !slices.Contains(fileNames, "config.json") {
		log.Fatalf("config.json file was not found: %v", fileNames)
	}

	solver.ConfigPath = execPath + "/config.json"
}
