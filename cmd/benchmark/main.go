package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"dpllsat/internal/dimacs"

	"github.com/samber/lo"
)

const (
	executablePath             = "../../bin/dpllsat"
	satisfiableTestDirectory   = "../../test/satisfiable/"
	unsatisfiableTestDirectory = "../../test/unsatisfiable/"
)

type SolverType int

const (
	dpll SolverType = iota
	kissat
	cadical
	minisat
)

type ResultType int

const (
	satisfiable ResultType = iota
	unsatisfiable
	undecided
)

var (
	solverTypes = map[SolverType]string{
		dpll:    "dpll",
		kissat:  "kissat",
		cadical: "cadical",
		minisat: "minisat",
	}
	resultTypes = map[ResultType]string{
		satisfiable:   "satisfiable",
		unsatisfiable: "unsatisfiable",
		undecided:     "undecided",
	}
)

type TestMetadata struct {
	Name        string
	Satisfiable bool
	Variables   uint64
	Clauses     int
}

type BenchmarkResult struct {
	Solver        SolverType
	Budget        uint64
	Test          TestMetadata
	Duration      int64
	Memory        float32
	CpuPercentage int64
	Result        ResultType
}

func main() {
	tests := getTests()
	solvers := getSolvers()
	budgets := getBudgets()
	results := make([]BenchmarkResult, 0, len(tests)*len(solvers))

	for _, test := range tests {
		for _, solver := range solvers {
			for _, budget := range budgets {
				if budget > 0 && solver != dpll {
					continue
				}
				fmt.Printf("Benchmarking test \"%v\" with solver \"%v\" and budget \"%v\"\n", test.Name, solverTypes[solver], budget)

				duration, maxMemory, cpuPercentage, result := measure(solver, budget, test.Name)

				if result != undecided && (result == satisfiable) != test.Satisfiable {
					log.Fatalf("wrong verdict \"%v\" on test \"%v\" using solver \"%v\"", resultTypes[result], test.Name, solverTypes[solver])
				}

				results = append(results, BenchmarkResult{
					Solver:        solver,
					Budget:        budget,
					Test:          test,
					Duration:      duration,
					Memory:        maxMemory,
					CpuPercentage: cpuPercentage,
					Result:        result,
				})
			}
		}
	}

	toCsv(results)
}

func getTests() []TestMetadata {
	tests := make([]TestMetadata, 0)
	for _, tuple := range lo.Zip2([]string{satisfiableTestDirectory, unsatisfiableTestDirectory}, []bool{true, false}) {
		directory, isSatisfiable := tuple.A, tuple.B
		testFiles, err := os.ReadDir(directory)
		if err != nil {
			log.Fatalf("cannot read directory: %v", err)
		}

		for _, file := range testFiles {
			filename := directory + file.Name()
			input, err := os.Open(filename)
			if err != nil {
				log.Fatalf("cannot open test file: %v", err)
			}
			formula, err := dimacs.Parse(input)
			input.Close()
			if err != nil {
				log.Fatalf("cannot parse test file: %v", err)
			}

			tests = append(tests, TestMetadata{
				Name:        filename,
				Satisfiable: isSatisfiable,
				Variables:   formula.Variables,
				Clauses:     len(formula.Clauses),
			})
		}
	}

	return tests
}

func getSolvers() []SolverType {
	return []SolverType{dpll, kissat, cadical, minisat}
}

func getBudgets() []uint64 {
	return []uint64{0, 1 << 16, 1 << 20}
}

func measure(solver SolverType, budget uint64, testFile string) (duration int64, maxMemory float32, cpuPercentage int64, result ResultType) {
	cmd := exec.Command("/usr/bin/time", "-v", executablePath, "-solver", solverTypes[solver], "-budget", fmt.Sprint(budget), "-file", testFile)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	cmd.Run()
	switch cmd.ProcessState.ExitCode() {
	case 10:
		result = satisfiable
	case 20:
		result = unsatisfiable
	case 0:
		result = undecided
	default:
		log.Fatalf("an error occurred during the execution of \"dpllsat\" at test \"%v\" using solver \"%v\" and budget \"%v\": %v\n", testFile, solverTypes[solver], budget, stdErr.String())
	}

	splits := strings.Split(stdErr.String(), "\n")
	getLine := func(substr string) string {
		line, ok := lo.Find(splits, func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			log.Fatalf("Substring \"%v\" could not be found", substr)
		}
		return line
	}

	duration = parseDurationLine(getLine("wall clock"))
	maxMemory = parseMemoryLine(getLine("maximum resident set size"))
	cpuPercentage = parseCpuPercentageLine(getLine("percent of cpu"))

	return duration, maxMemory, cpuPercentage, result
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Solver", "Budget", "Test", "Satisfiable", "Variables", "Clauses", "Duration(ms)", "Memory(MB)", "CPU(%)", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			solverTypes[result.Solver],
			fmt.Sprintf("%d", result.Budget),
			result.Test.Name,
			fmt.Sprintf("%v", result.Test.Satisfiable),
			fmt.Sprintf("%d", result.Test.Variables),
			fmt.Sprintf("%d", result.Test.Clauses),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%.1f", result.Memory),
			fmt.Sprintf("%d", result.CpuPercentage),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func parseDurationLine(line string) int64 {
	durationStr := strings.Split(line, "(h:mm:ss or m:ss):")[1][1:]
	return parseDuration(durationStr)
}

func parseDuration(durationStr string) int64 {
	parts := strings.Split(durationStr, ":")
	secondsStr := parts[len(parts)-1]
	secondsParts := strings.Split(secondsStr, ".")

	var duration int64
	if len(parts) == 3 { // h:mm:ss
		hours := lo.Must(strconv.Atoi(parts[0]))
		minutes := lo.Must(strconv.Atoi(parts[1]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(hours*3600+minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else if len(parts) == 2 { // m:ss
		minutes := lo.Must(strconv.Atoi(parts[0]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else {
		log.Fatalf("unexpected duration format: %v", durationStr)
	}
	return duration
}

func parseMemoryLine(line string) float32 {
	memoryStr := strings.Split(line, ":")[1][1:]
	return float32(lo.Must(strconv.ParseFloat(memoryStr, 32))) / 1024
}

func parseCpuPercentageLine(line string) int64 {
	percentageStr := strings.Split(line, ":")[1][1:]
	percentageStr = percentageStr[:len(percentageStr)-1]
	return int64(lo.Must(strconv.Atoi(percentageStr)))
}
