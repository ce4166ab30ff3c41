package detector

import "regexp"

// Trigger and guard patterns shared across detectors. All patterns are
// compiled once at process start; a pattern that fails to compile is a
// fatal initialization error, never a per-scan one.
var (
	// External value transfer out of the contract.
	reExternalCall = regexp.MustCompile(`coin::transfer|account::withdraw`)

	// Mutation of global contract state.
	reStateChange = regexp.MustCompile(`borrow_global_mut|move_to|Table::add`)

	// Assignments whose right-hand side carries an arithmetic operator.
	reAddAssign = regexp.MustCompile(`[=]\s*[^;\n]+\+[^;\n]+;`)
	reSubAssign = regexp.MustCompile(`[=]\s*[^;\n]+-[^;\n]+;`)
	reDivAssign = regexp.MustCompile(`[=]\s*[^;\n]+/[^;\n]+;`)

	// Caller-identity assertion guarding a state mutation.
	reOwnerAssert = regexp.MustCompile(`assert!\(.*owner.*\)`)
)

// guardMarker mitigates the arithmetic triggers when present on the line.
const guardMarker = "assert!"
