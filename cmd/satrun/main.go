// Command satrun drives the cycle-accurate solver core over a single
// DIMACS CNF problem, in the spirit of the teacher's own cmd/saturday
// driver: read one problem, print SAT/UNSAT (+ model), optionally print
// stats.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/hwsat/satnode/core"
	"github.com/hwsat/satnode/dimacs"
	"github.com/hwsat/satnode/matrix"
)

func main() {
	log.SetFlags(0)
	verbose := flag.Bool("v", false, "verbose mode")
	maxCycles := flag.Int("max-cycles", core.DefaultMaxCycles, "cycle cap before giving up")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `satrun: a cycle-accurate SAT-solver node driver.

Usage:

  satrun [-v] [-max-cycles N] [input.cnf]

satrun reads a single problem specification in the DIMACS CNF format. It
writes the output in the conventional way: either the first line is
UNSAT, or else the first line is SAT and the second line gives the
assignment as space-separated signed variable ids, like an input clause
but without the terminating 0. If the cycle cap is
reached before a verdict, the first line is TIMEOUT.

If no input file is given, satrun reads from standard input.
`)
	}
	flag.Parse()

	var r io.Reader = os.Stdin
	if flag.NArg() >= 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}

	clauses, err := dimacs.Parse(r)
	if err != nil {
		log.Fatalln("error reading input file as DIMACS CNF:", err)
	}

	rows, numCols, numVars := matrix.Build(clauses)
	node := core.New(rows, numCols, numVars, core.WithMaxCycles(*maxCycles))
	state, assignment := node.Solve()

	if *verbose {
		stats := map[string]int{
			"cycles": node.CycleCount(),
		}
		var keys []string
		var maxKeyLen int
		for key := range stats {
			keys = append(keys, key)
			if len(key) > maxKeyLen {
				maxKeyLen = len(key)
			}
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(os.Stderr, "%*s %v\n", maxKeyLen, key, stats[key])
		}
	}

	switch state {
	case core.StateSAT:
		fmt.Println("SAT")
		vars := make([]int, 0, len(assignment))
		for v := range assignment {
			vars = append(vars, v)
		}
		sort.Ints(vars)
		for i, v := range vars {
			if i > 0 {
				fmt.Print(" ")
			}
			if assignment[v] {
				fmt.Print(v)
			} else {
				fmt.Print(-v)
			}
		}
		fmt.Println()
	case core.StateUNSAT:
		fmt.Println("UNSAT")
	default:
		fmt.Println("TIMEOUT")
	}
}
