// Package matrix builds the clause matrix the solver core operates on:
// encoding parsed signed-int DIMACS clauses into the core's literal
// convention and right-padding every row to a common width (spec.md §6).
package matrix

import "github.com/hwsat/satnode/core"

// Build encodes clauses (signed DIMACS-style ints, as returned by
// dimacs.Parse) into an R×C literal matrix: R = len(clauses), C = the
// longest clause, rows right-padded with the padding literal 0. It also
// reports the variable count V, the largest variable id referenced.
func Build(clauses [][]int) (rows [][]core.Literal, numCols int, numVars int) {
	for _, cls := range clauses {
		if len(cls) > numCols {
			numCols = len(cls)
		}
		for _, v := range cls {
			if v < 0 {
				v = -v
			}
			if v > numVars {
				numVars = v
			}
		}
	}
	rows = make([][]core.Literal, len(clauses))
	for i, cls := range clauses {
		row := make([]core.Literal, numCols)
		for j, raw := range cls {
			row[j] = core.EncodeSigned(raw)
		}
		rows[i] = row
	}
	return rows, numCols, numVars
}
