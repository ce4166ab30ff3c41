package detector

import (
	"strings"

	"github.com/xab-mack/moveguard/internal/model"
)

// reentrancy flags an external value transfer followed by a state mutation
// within the next reentrancyWindow lines. This approximates a
// checks-effects-interactions violation without flow analysis.
type reentrancy struct{}

// reentrancyWindow is the fixed forward span searched after a trigger.
const reentrancyWindow = 4

func (d *reentrancy) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:       "MOVE-REENTRANCY",
		Title:    "Reentrancy Vulnerability",
		Severity: model.SeverityCritical,
		Description: "Potential reentrancy vulnerability detected: External call followed by state change. " +
			"This pattern could allow an attacker to re-enter the function before the state is updated, " +
			"potentially leading to multiple withdrawals or unauthorized state modifications.",
		Recommendation: "Implement the checks-effects-interactions pattern: 1) Validate all conditions first, " +
			"2) Update state variables, 3) Make external calls last. Consider using a reentrancy guard or " +
			"implementing the nonReentrant modifier pattern.",
		References: []string{"SWC-107"},
	}
}

func (d *reentrancy) Check(file, source string) []model.Finding {
	var findings []model.Finding
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		if !reExternalCall.MatchString(line) {
			continue
		}
		end := i + 1 + reentrancyWindow
		if end > len(lines) {
			end = len(lines)
		}
		for j := i + 1; j < end; j++ {
			if reStateChange.MatchString(lines[j]) {
				findings = append(findings, newFinding(d.Meta(), file, source, i+1))
				break
			}
		}
	}
	return findings
}
