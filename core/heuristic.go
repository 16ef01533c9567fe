package core

// Heuristic chooses the next decision variable. It supports a one-shot
// forced-next override for testing (§4.6, §9: the override is a field of
// the instance, not process-wide state, so that distinct solver instances
// never interfere with each other).
type Heuristic struct {
	numVars    int
	forcedNext int // 0 means "no override pending"
}

// NewHeuristic builds a heuristic engine over variables 1..numVars.
func NewHeuristic(numVars int) *Heuristic {
	return &Heuristic{numVars: numVars}
}

// SetNextDecision installs a one-shot override: the next Predict call
// returns v regardless of the default ordering, and then clears the
// override.
func (h *Heuristic) SetNextDecision(v int) {
	h.forcedNext = v
}

// Predict returns the next variable to branch on given the current
// assignment, or (0, false) if every variable is already assigned (the
// model is complete). A pending forced-next override takes priority and is
// consumed on read; otherwise the smallest unassigned variable id wins.
func (h *Heuristic) Predict(assigned map[int]bool) (int, bool) {
	if h.forcedNext != 0 {
		v := h.forcedNext
		h.forcedNext = 0
		return v, true
	}
	for v := 1; v <= h.numVars; v++ {
		if _, ok := assigned[v]; !ok {
			return v, true
		}
	}
	return 0, false
}
