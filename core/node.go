package core

// State is one of the controller FSM's six states (§3). SAT and UNSAT are
// terminal: further Step calls are no-ops.
type State int

const (
	StateIdle State = iota
	StateDecide
	StatePropagate
	StateBacktrack
	StateSAT
	StateUNSAT
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateDecide:
		return "DECIDE"
	case StatePropagate:
		return "PROPAGATE"
	case StateBacktrack:
		return "BACKTRACK"
	case StateSAT:
		return "SAT"
	case StateUNSAT:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether s is SAT or UNSAT.
func (s State) Terminal() bool {
	return s == StateSAT || s == StateUNSAT
}

// DefaultMaxCycles is the cycle cap applied when no Option overrides it.
const DefaultMaxCycles = 5000

// Option configures a Node at construction.
type Option func(*Node)

// WithMaxCycles overrides the cycle cap Solve halts at without a verdict.
func WithMaxCycles(n int) Option {
	return func(nd *Node) { nd.maxCycles = n }
}

// WithForcedFirstDecision installs a one-shot heuristic override for the
// first DECIDE, mainly useful in tests that need a specific branch order.
func WithForcedFirstDecision(v int) Option {
	return func(nd *Node) { nd.heuristic.SetNextDecision(v) }
}

// Node is the top-level controller: it exclusively owns every piece of
// mutable solver state (dynamic bitmap, trail, queue, pointers, state
// register). The combinational datapath functions it calls are pure (§3).
type Node struct {
	static    *StaticMemory
	dynamic   *DynamicMemory
	heuristic *Heuristic
	trail     *Trail
	queue     Queue

	state          State
	currentPropLit Literal
	haveCurrentLit bool

	cycleCount int
	maxCycles  int
}

// New builds a Node over a clause matrix already encoded per the literal
// convention in Variable/Negate/EncodeSigned. rows must all have length
// numCols (short rows are treated as implicitly zero-padded by
// StaticMemory.FetchRow only at out-of-bounds row indices, not short
// in-bounds rows, so callers should pad via the matrix package).
func New(rows [][]Literal, numCols, numVars int, opts ...Option) *Node {
	nd := &Node{
		static:    NewStaticMemory(rows, numCols),
		dynamic:   NewDynamicMemory(len(rows), numCols),
		heuristic: NewHeuristic(numVars),
		trail:     NewTrail(),
		state:     StateIdle,
		maxCycles: DefaultMaxCycles,
	}
	for _, opt := range opts {
		opt(nd)
	}
	return nd
}

// State reports the controller's current state.
func (nd *Node) State() State { return nd.state }

// CycleCount reports the number of Step calls made so far.
func (nd *Node) CycleCount() int { return nd.cycleCount }

// Assignment returns a snapshot of the current assignment table. Variables
// absent at SAT are "don't care" (§4.8).
func (nd *Node) Assignment() map[int]bool {
	out := make(map[int]bool, len(nd.trail.Assigned()))
	for v, val := range nd.trail.Assigned() {
		out[v] = val
	}
	return out
}

// StepResult reports what happened on a single Step call, mainly for
// tests and RTL trace comparison; solve() callers that only care about the
// final verdict can ignore it.
type StepResult struct {
	State State
	// Row is the clause row processed this cycle during PROPAGATE, or -1
	// if no row was processed this cycle.
	Row int
	// DecisionVar is the variable branched on this cycle during DECIDE, or
	// 0 if DECIDE instead concluded SAT.
	DecisionVar int
}

// Step executes exactly one cycle of the controller FSM (§4.7) and
// increments the cycle counter, including no-op cycles in SAT/UNSAT and
// re-pop cycles in BACKTRACK on forced entries (§5).
func (nd *Node) Step() StepResult {
	nd.cycleCount++

	switch nd.state {
	case StateIdle:
		nd.state = StateDecide
		return StepResult{State: nd.state, Row: -1}

	case StateDecide:
		return nd.stepDecide()

	case StatePropagate:
		return nd.stepPropagate()

	case StateBacktrack:
		return nd.stepBacktrack()

	default: // StateSAT, StateUNSAT
		return StepResult{State: nd.state, Row: -1}
	}
}

func (nd *Node) stepDecide() StepResult {
	v, ok := nd.heuristic.Predict(nd.trail.Assigned())
	if !ok {
		nd.state = StateSAT
		return StepResult{State: nd.state, Row: -1}
	}
	nd.trail.Push(v, false, false)
	nd.queue.Push(Literal(2 * v))
	nd.static.ResetPointer()
	nd.state = StatePropagate
	return StepResult{State: nd.state, Row: -1, DecisionVar: v}
}

func (nd *Node) stepPropagate() StepResult {
	if !nd.haveCurrentLit {
		lit, ok := nd.queue.Pop()
		if !ok {
			nd.state = StateDecide
			return StepResult{State: nd.state, Row: -1}
		}
		nd.currentPropLit = lit
		nd.haveCurrentLit = true
		nd.static.ResetPointer()
	}

	rowIdx := nd.static.RowPointer()
	staticRow := nd.static.FetchRow(rowIdx)
	dynRow := nd.dynamic.Row(rowIdx)

	mask := Compare(staticRow, nd.currentPropLit)
	merged := Update(dynRow, mask)
	nd.dynamic.SetRow(rowIdx, merged)

	if Evaluate(staticRow, merged) {
		nd.haveCurrentLit = false
		nd.state = StateBacktrack
		return StepResult{State: nd.state, Row: rowIdx}
	}

	if unitLit, ok := Detect(staticRow, merged); ok {
		falseLit := Negate(unitLit)
		v, val := FalsifyingAssignment(falseLit)
		if existing, assigned := nd.trail.Value(v); assigned {
			if existing != val {
				nd.haveCurrentLit = false
				nd.state = StateBacktrack
				return StepResult{State: nd.state, Row: rowIdx}
			}
		} else {
			nd.trail.Push(v, val, true)
			nd.queue.Push(falseLit)
		}
	}

	nd.static.AdvancePointer()
	if nd.static.RowPointer() >= nd.static.NumRows() {
		nd.haveCurrentLit = false
	}
	return StepResult{State: StatePropagate, Row: rowIdx}
}

func (nd *Node) stepBacktrack() StepResult {
	entry, ok := nd.trail.Pop()
	if !ok {
		nd.state = StateUNSAT
		return StepResult{State: nd.state, Row: -1}
	}

	if entry.Forced {
		// Already tried both values for this decision; keep popping.
		return StepResult{State: nd.state, Row: -1}
	}

	flipped := !entry.Value
	nd.trail.Push(entry.Var, flipped, true)

	// The dynamic bitmap is a function of the whole trail; any change to
	// the trail requires recomputing it from scratch (§4.7 rationale).
	nd.dynamic.Clear()
	nd.queue.Clear()
	for _, e := range nd.trail.Entries()[:nd.trail.Len()-1] {
		var falseLit Literal
		if e.Value {
			falseLit = Literal(2*e.Var + 1)
		} else {
			falseLit = Literal(2 * e.Var)
		}
		nd.queue.Push(falseLit)
	}
	var justFlipped Literal
	if flipped {
		justFlipped = Literal(2*entry.Var + 1)
	} else {
		justFlipped = Literal(2 * entry.Var)
	}
	nd.queue.Push(justFlipped)

	nd.haveCurrentLit = false
	nd.static.ResetPointer()
	nd.state = StatePropagate
	return StepResult{State: nd.state, Row: -1}
}

// Solve runs Step until the controller reaches SAT, UNSAT, or the cycle
// cap, whichever comes first (§4.8). It returns the final state and the
// assignment table at that point; on a cycle-cap timeout the state is
// still non-terminal and the assignment table is only a partial trail.
func (nd *Node) Solve() (State, map[int]bool) {
	for !nd.state.Terminal() && nd.cycleCount < nd.maxCycles {
		nd.Step()
	}
	return nd.state, nd.Assignment()
}
