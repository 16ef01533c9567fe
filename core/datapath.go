package core

// The functions in this file are the combinational datapath blocks (§4.3,
// §4.4, §4.5): pure functions over row slices, with no access to the
// controller's mutable state. The source names these as classes
// (Comparator, BitwiseUpdate, ClauseEvaluator, UnitDetector) but uses no
// polymorphism, so there is no interface abstraction here either (§9).

// Compare produces a per-column match mask: mask[j] is true iff
// row[j] == target. Padding positions (row[j] == 0) never match a non-zero
// target.
func Compare(row []Literal, target Literal) []bool {
	mask := make([]bool, len(row))
	for j, lit := range row {
		mask[j] = lit == target
	}
	return mask
}

// Update OR-merges mask into dynRow, returning the merged row. Padding
// positions never toggle, since Compare never sets them.
func Update(dynRow []bool, mask []bool) []bool {
	merged := make([]bool, len(dynRow))
	for j := range dynRow {
		merged[j] = dynRow[j] || mask[j]
	}
	return merged
}

// Evaluate reports a conflict iff every active (non-padding) slot of the
// row is falsified. An all-padding row is never a conflict (§4.4).
func Evaluate(staticRow []Literal, dynRow []bool) bool {
	sawActive := false
	for j, lit := range staticRow {
		if lit == 0 {
			continue
		}
		sawActive = true
		if !dynRow[j] {
			return false
		}
	}
	return sawActive
}

// Detect reports the unit literal: the one whose row still has exactly one
// active slot unfalsified. It returns (literal, true) in that case, or
// (0, false) if zero or more than one active slot remains unfalsified
// (§4.5).
func Detect(staticRow []Literal, dynRow []bool) (Literal, bool) {
	var found Literal
	count := 0
	for j, lit := range staticRow {
		if lit == 0 {
			continue
		}
		if !dynRow[j] {
			count++
			found = lit
			if count > 1 {
				return 0, false
			}
		}
	}
	if count == 1 {
		return found, true
	}
	return 0, false
}
