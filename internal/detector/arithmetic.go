package detector

import (
	"regexp"
	"strings"

	"github.com/xab-mack/moveguard/internal/model"
)

// The three arithmetic detectors share one scan shape: a line is flagged
// when an assignment carries the operator and no assert! guard appears on
// the same line. They are mutually independent; a line mixing operators
// can be flagged by more than one of them.

// integerOverflow flags unguarded additions.
type integerOverflow struct{}

func (d *integerOverflow) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:       "MOVE-INT-OVERFLOW",
		Title:    "Integer Overflow Vulnerability",
		Severity: model.SeverityHigh,
		Description: "Potential integer overflow detected: Arithmetic operation without overflow check. " +
			"This could lead to unexpected behavior where values wrap around, potentially causing " +
			"financial loss or incorrect calculations.",
		Recommendation: "Add overflow checks using assert! or use safe math operations. Consider " +
			"implementing a safe math library that handles overflow/underflow cases explicitly.",
		References: []string{"SWC-101"},
	}
}

func (d *integerOverflow) Check(file, source string) []model.Finding {
	return checkArithmetic(d.Meta(), reAddAssign, file, source)
}

// uncheckedArithmetic flags unguarded subtractions.
type uncheckedArithmetic struct{}

func (d *uncheckedArithmetic) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:       "MOVE-UNCHECKED-SUB",
		Title:    "Unchecked Arithmetic Vulnerability",
		Severity: model.SeverityHigh,
		Description: "Potential unchecked arithmetic detected: Subtraction without underflow check. " +
			"This could lead to unexpected behavior where values wrap around, potentially causing " +
			"financial loss or incorrect calculations.",
		Recommendation: "Add underflow checks using assert! or use safe math operations. Consider " +
			"implementing a safe math library that handles overflow/underflow cases explicitly.",
		References: []string{"SWC-101"},
	}
}

func (d *uncheckedArithmetic) Check(file, source string) []model.Finding {
	return checkArithmetic(d.Meta(), reSubAssign, file, source)
}

// missingErrorHandling flags unguarded divisions.
type missingErrorHandling struct{}

func (d *missingErrorHandling) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:       "MOVE-DIV-BY-ZERO",
		Title:    "Missing Error Handling Vulnerability",
		Severity: model.SeverityHigh,
		Description: "Missing error handling detected: Division without zero check. This could lead to a " +
			"runtime error if the divisor is zero, potentially causing the entire transaction to fail " +
			"or unexpected behavior.",
		Recommendation: "Add zero checks using assert! before division. Consider implementing proper " +
			"error handling with custom error types and clear error messages.",
	}
}

func (d *missingErrorHandling) Check(file, source string) []model.Finding {
	return checkArithmetic(d.Meta(), reDivAssign, file, source)
}

func checkArithmetic(m model.RuleMeta, trigger *regexp.Regexp, file, source string) []model.Finding {
	var findings []model.Finding
	for i, line := range strings.Split(source, "\n") {
		if trigger.MatchString(line) && !strings.Contains(line, guardMarker) {
			findings = append(findings, newFinding(m, file, source, i+1))
		}
	}
	return findings
}
