// Package refsolver is an independent reference solver used only to
// cross-check the cycle-accurate core's verdict (spec.md §6's "reference
// solver comparison" collaborator, supplemented per SPEC_FULL.md §8).
// It shares no code with core: a plain recursive DPLL with no watch
// literals, no trail, no cycle counting. Agreement between the two is
// only meaningful because they are differently implemented.
// Grounded on original_source/simulation/test_runner.py's dpll_fallback.
package refsolver

// Solve decides satisfiability of clauses (signed DIMACS-style ints, one
// slice per clause) by simplifying the clauses under the partial
// assignment and branching on the first remaining literal's variable
// (true first, then false); it does no unit propagation. It returns
// the satisfying assignment (variable -> value) when sat is true; the
// returned map is empty and meaningless when sat is false.
func Solve(clauses [][]int) (assignment map[int]bool, sat bool) {
	return dpll(clauses, map[int]bool{})
}

func dpll(clauses [][]int, assigned map[int]bool) (map[int]bool, bool) {
	simplified, ok := simplify(clauses, assigned)
	if !ok {
		return nil, false
	}
	if len(simplified) == 0 {
		return assigned, true
	}

	v := abs(simplified[0][0])
	for _, val := range []bool{true, false} {
		next := make(map[int]bool, len(assigned)+1)
		for k, vv := range assigned {
			next[k] = vv
		}
		next[v] = val
		if res, ok := dpll(clauses, next); ok {
			return res, true
		}
	}
	return nil, false
}

// simplify drops clauses already satisfied by assigned and strips
// falsified literals from the rest, reporting ok=false on an empty
// (falsified) clause.
func simplify(clauses [][]int, assigned map[int]bool) ([][]int, bool) {
	var out [][]int
clauseLoop:
	for _, cls := range clauses {
		var kept []int
		for _, lit := range cls {
			val, has := assigned[abs(lit)]
			if !has {
				kept = append(kept, lit)
				continue
			}
			if (lit > 0 && val) || (lit < 0 && !val) {
				continue clauseLoop // clause satisfied
			}
			// literal is false; drop it from the clause
		}
		if len(kept) == 0 {
			return nil, false // empty clause: contradiction
		}
		out = append(out, kept)
	}
	return out, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
