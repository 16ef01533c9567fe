// Command cnf2hex converts a DIMACS CNF file into the hex text format used
// to initialize RTL clause memory (spec.md §6).
package main

import (
	"fmt"
	"os"

	"github.com/hwsat/satnode/dimacs"
	"github.com/hwsat/satnode/hexenc"
	"github.com/hwsat/satnode/matrix"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: cnf2hex <input.cnf> <output.hex>")
		os.Exit(1)
	}
	inputPath, outputPath := os.Args[1], os.Args[2]

	in, err := os.Open(inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cnf2hex:", err)
		os.Exit(1)
	}
	defer in.Close()

	clauses, err := dimacs.Parse(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cnf2hex:", err)
		os.Exit(1)
	}

	rows, _, numVars := matrix.Build(clauses)
	intRows := make([][]int, len(rows))
	for i, row := range rows {
		intRow := make([]int, len(row))
		for j, lit := range row {
			intRow[j] = int(lit)
		}
		intRows[i] = intRow
	}
	encoded := hexenc.EncodeRows(intRows, hexenc.DefaultLiteralWidth)

	out, err := os.Create(outputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cnf2hex:", err)
		os.Exit(1)
	}
	defer out.Close()
	for _, line := range encoded {
		fmt.Fprintln(out, line)
	}

	fmt.Printf("Converted %s (%d vars, %d clauses) to %s\n", inputPath, numVars, len(clauses), outputPath)
}
