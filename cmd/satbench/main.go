// Command satbench is the test-runner CLI: it iterates a directory of
// *.cnf fixtures, runs the cycle-accurate core and an independent
// reference solver over each, and prints one row per file with {file,
// solver result, reference result, status, cycles} (spec.md §6).
// Grounded on original_source/simulation/test_runner.py and verify_all.py,
// which pair the node against pysat/a DPLL fallback and print the same
// column set.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	pflag "github.com/spf13/pflag"

	"github.com/hwsat/satnode/core"
	"github.com/hwsat/satnode/dimacs"
	"github.com/hwsat/satnode/matrix"
	"github.com/hwsat/satnode/refsolver"
)

type row struct {
	file    string
	nodeRes string
	refRes  string
	status  string
	cycles  int
}

func main() {
	dir := pflag.String("dir", "tests", "directory of *.cnf fixtures to run")
	configPath := pflag.String("config", "", "optional YAML config overriding dir/max-cycles/format")
	maxCycles := pflag.Int("max-cycles", core.DefaultMaxCycles, "cycle cap before a run is reported as TIMEOUT")
	format := pflag.String("format", "table", "output format: table or csv")
	verbose := pflag.Bool("verbose", false, "log one diagnostic line per file processed")
	pflag.Parse()

	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "satbench:", err)
			os.Exit(1)
		}
		if cfg.Dir != "" && !pflag.Lookup("dir").Changed {
			*dir = cfg.Dir
		}
		if cfg.MaxCycles != 0 && !pflag.Lookup("max-cycles").Changed {
			*maxCycles = cfg.MaxCycles
		}
		if cfg.Format != "" && !pflag.Lookup("format").Changed {
			*format = cfg.Format
		}
	}

	files, err := filepath.Glob(filepath.Join(*dir, "*.cnf"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "satbench:", err)
		os.Exit(1)
	}
	sort.Strings(files)
	if len(files) == 0 {
		fmt.Printf("no .cnf files found in %q\n", *dir)
		return
	}

	var rows []row
	for _, path := range files {
		if *verbose {
			log.Printf("running fixture %s", path)
		}
		rows = append(rows, runFixture(path, *maxCycles))
	}

	switch *format {
	case "csv":
		printCSV(rows)
	default:
		printTable(rows)
	}
}

func runFixture(path string, maxCycles int) row {
	name := filepath.Base(path)
	f, err := os.Open(path)
	if err != nil {
		return row{file: name, nodeRes: "ERROR", refRes: "ERROR", status: err.Error()}
	}
	defer f.Close()

	clauses, err := dimacs.Parse(f)
	if err != nil {
		return row{file: name, nodeRes: "ERROR", refRes: "ERROR", status: err.Error()}
	}

	rows, numCols, numVars := matrix.Build(clauses)
	node := core.New(rows, numCols, numVars, core.WithMaxCycles(maxCycles))
	state, assignment := node.Solve()

	nodeRes := stateLabel(state)

	_, refSat := refsolver.Solve(clauses)
	refRes := "UNSAT"
	if refSat {
		refRes = "SAT"
	}

	status := "PASS"
	switch {
	case nodeRes == "TIMEOUT":
		status = "TIMEOUT"
	case nodeRes != refRes:
		status = "FAIL (mismatch)"
	case nodeRes == "SAT" && !satisfiesAll(clauses, assignment):
		status = "FAIL (invalid model)"
	}

	return row{file: name, nodeRes: nodeRes, refRes: refRes, status: status, cycles: node.CycleCount()}
}

func stateLabel(s core.State) string {
	switch s {
	case core.StateSAT:
		return "SAT"
	case core.StateUNSAT:
		return "UNSAT"
	default:
		return "TIMEOUT"
	}
}

func satisfiesAll(clauses [][]int, assignment map[int]bool) bool {
clauseLoop:
	for _, cls := range clauses {
		for _, lit := range cls {
			v := lit
			if v < 0 {
				v = -v
			}
			val, ok := assignment[v]
			if !ok {
				continue // unassigned: satisfies neither polarity (spec.md §8)
			}
			if (lit > 0 && val) || (lit < 0 && !val) {
				continue clauseLoop
			}
		}
		return false
	}
	return true
}

func printTable(rows []row) {
	fmt.Printf("%-25s %-8s %-8s %-16s %8s\n", "File", "SatNode", "Reference", "Status", "Cycles")
	for _, r := range rows {
		fmt.Printf("%-25s %-8s %-8s %-16s %8d\n", r.file, r.nodeRes, r.refRes, r.status, r.cycles)
	}
}

func printCSV(rows []row) {
	fmt.Println("file,solver_result,reference_result,status,cycles")
	for _, r := range rows {
		fmt.Printf("%s,%s,%s,%s,%d\n", r.file, r.nodeRes, r.refRes, r.status, r.cycles)
	}
}
