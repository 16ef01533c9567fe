// Package dimacs reads and writes the DIMACS CNF text format, the
// out-of-core collaborator that feeds the solver its clause list
// (spec.md §1, §6).
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads DIMACS CNF text. It is lenient in a few conventional ways:
// blank lines and lines starting with 'c' are ignored wherever they
// appear (not just in the preamble), the 'p cnf V N' problem line may be
// absent, and a trailing '%' line (with anything after it) is treated as
// end of input. A malformed integer inside a clause line causes that line
// to be skipped rather than the whole parse to fail (spec.md §7).
func Parse(r io.Reader) ([][]int, error) {
	var problem struct {
		vars    int
		clauses int
	}
	var clauses [][]int
	var clause []int
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 {
				return nil, errors.New("dimacs: problem line appears after clauses")
			}
			if problem.vars > 0 {
				return nil, errors.New("dimacs: multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, fmt.Errorf("dimacs: malformed problem line %q", line)
			}
			if fields[1] != "cnf" {
				return nil, fmt.Errorf("dimacs: only cnf supported; got %q", fields[1])
			}
			var err error
			problem.vars, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("dimacs: malformed #vars in problem line: %w", err)
			}
			problem.clauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("dimacs: malformed #clauses in problem line: %w", err)
			}
			if problem.vars < 0 {
				return nil, fmt.Errorf("dimacs: invalid #vars %d", problem.vars)
			}
			if problem.clauses < 0 {
				return nil, fmt.Errorf("dimacs: invalid #clauses %d", problem.clauses)
			}
			continue
		}
		fields := strings.Fields(line)
		nums := make([]int, 0, len(fields))
		for _, field := range fields {
			n, err := strconv.Atoi(field)
			if err != nil {
				break
			}
			nums = append(nums, n)
		}
		if len(nums) != len(fields) {
			// Lenient: skip the offending line rather than failing the
			// whole parse (spec.md §7).
			continue
		}
		for _, n := range nums {
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(clause) > 0 {
		clauses = append(clauses, clause)
	}

	if problem.vars > 0 {
		vars := make(map[int]struct{})
		for _, clause := range clauses {
			for _, v := range clause {
				if v < 0 {
					v = -v
				}
				if v > problem.vars {
					return nil, fmt.Errorf("dimacs: formula contains var %d, but problem line asserts %d vars", v, problem.vars)
				}
				vars[v] = struct{}{}
			}
		}
		if len(vars) > problem.vars {
			return nil, fmt.Errorf("dimacs: problem line specifies %d vars, but there are %d", problem.vars, len(vars))
		}
		if len(clauses) != problem.clauses {
			return nil, fmt.Errorf("dimacs: problem line specifies %d clauses, but there are %d", problem.clauses, len(clauses))
		}
	}
	return clauses, nil
}

// Write emits clauses as DIMACS CNF text: a 'p cnf <vars> <clauses>'
// header followed by one line per clause, space-separated signed
// integers terminated by a trailing 0. An empty clause is written as a
// bare '0'. <vars> is the largest variable id referenced anywhere in
// clauses (0 if clauses is empty or contains no literals).
func Write(w io.Writer, clauses [][]int) error {
	numVars := 0
	for _, cls := range clauses {
		for _, v := range cls {
			if v < 0 {
				v = -v
			}
			if v > numVars {
				numVars = v
			}
		}
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", numVars, len(clauses)); err != nil {
		return err
	}
	for _, cls := range clauses {
		var b strings.Builder
		for _, v := range cls {
			fmt.Fprintf(&b, "%d ", v)
		}
		b.WriteString("0")
		if _, err := fmt.Fprintln(bw, b.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
