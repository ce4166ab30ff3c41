package detector

import (
	"strings"

	"github.com/xab-mack/moveguard/internal/model"
)

// incorrectStdFunction flags option::borrow calls that follow an
// option::extract. It is the only detector with sequential state: a
// two-state automaton (idle/extracted) rebuilt for every scan.
type incorrectStdFunction struct{}

func (d *incorrectStdFunction) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:       "MOVE-STD-OPTION-MISUSE",
		Title:    "Incorrect Standard Function Usage Vulnerability",
		Severity: model.SeverityMedium,
		Description: "Incorrect use of standard library function: Borrowing from an Option after extracting " +
			"its value can cause runtime aborts and unexpected failures.",
		Recommendation: "Use each stdlib function as intended and add tests for edge cases.",
		Experimental:   true,
	}
}

func (d *incorrectStdFunction) Check(file, source string) []model.Finding {
	var findings []model.Finding
	extracted := false
	for i, line := range strings.Split(source, "\n") {
		if strings.Contains(line, "option::extract") {
			extracted = true
		}
		if extracted && strings.Contains(line, "option::borrow") {
			findings = append(findings, newFinding(d.Meta(), file, source, i+1))
			extracted = false
		}
	}
	return findings
}
