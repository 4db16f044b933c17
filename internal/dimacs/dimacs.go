// Package dimacs reads CNF problems in the DIMACS text format: comment lines
// starting with "c", a "p cnf <variables> <clauses>" header, and one clause
// per line as space-separated literals terminated by 0.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dpllsat/internal/cnf"
)

// Parse reads a DIMACS-CNF problem and builds a validated formula. Literal
// bound checks and tautology filtering are applied during construction, so a
// formula returned here honors the clause-store invariants.
func Parse(reader io.Reader) (*cnf.Formula, error) {
	var (
		variables  uint64
		rawClauses [][]int64
		headerSeen bool
	)

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 || tokens[0] == "c" {
			continue
		}

		if tokens[0] == "p" {
			if headerSeen {
				return nil, fmt.Errorf("duplicate problem header")
			}
			if len(tokens) != 4 || tokens[1] != "cnf" {
				return nil, fmt.Errorf("malformed problem header: %q", scanner.Text())
			}
			parsedVariables, err := strconv.ParseUint(tokens[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid variable count %q: %v", tokens[2], err)
			}
			if _, err := strconv.ParseUint(tokens[3], 10, 64); err != nil {
				return nil, fmt.Errorf("invalid clause count %q: %v", tokens[3], err)
			}
			variables = parsedVariables
			headerSeen = true
			continue
		}

		if !headerSeen {
			return nil, fmt.Errorf("clause line before problem header: %q", scanner.Text())
		}

		clause := make([]int64, 0, len(tokens))
		for _, token := range tokens {
			literal, err := strconv.ParseInt(token, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid literal %q: %v", token, err)
			}
			if literal == 0 {
				break
			}
			clause = append(clause, literal)
		}
		rawClauses = append(rawClauses, clause)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read input: %v", err)
	}

	if !headerSeen {
		return nil, fmt.Errorf("missing problem header")
	}
	if len(rawClauses) == 0 {
		return nil, fmt.Errorf("no clauses in input")
	}

	return cnf.New(variables, rawClauses)
}
