package detector

import (
	"strings"

	"github.com/xab-mack/moveguard/internal/model"
)

// accessControl flags state mutations with no owner assertion nearby.
// Lines already flagged by the reentrancy or arithmetic detectors are
// suppressed so a single line is never explained twice.
type accessControl struct{}

// ownerCheckWindow is the total span searched for an owner assertion,
// starting 10 lines before the trigger (clipped at file start).
const (
	ownerCheckWindow = 20
	ownerCheckBefore = 10
)

func (d *accessControl) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:       "MOVE-ACCESS-CONTROL",
		Title:    "Access Control Vulnerability",
		Severity: model.SeverityHigh,
		Description: "Missing access control detected: State modification without owner check. This could " +
			"allow unauthorized users to modify critical contract state, potentially leading to " +
			"unauthorized access or fund theft.",
		Recommendation: "Implement proper access control: 1) Add owner checks before state modifications, " +
			"2) Use role-based access control where appropriate, 3) Consider implementing a " +
			"multi-signature requirement for critical operations.",
		References: []string{"SWC-105"},
	}
}

func (d *accessControl) Check(file, source string) []model.Finding {
	var findings []model.Finding
	lines := strings.Split(source, "\n")
	flagged := suppressedLines(source)
	for i, line := range lines {
		if !reStateChange.MatchString(line) {
			continue
		}
		if _, ok := flagged[i+1]; ok {
			continue
		}
		if !hasOwnerAssert(lines, i) {
			findings = append(findings, newFinding(d.Meta(), file, source, i+1))
		}
	}
	return findings
}

func hasOwnerAssert(lines []string, trigger int) bool {
	from := trigger - ownerCheckBefore
	if from < 0 {
		from = 0
	}
	to := from + ownerCheckWindow
	if to > len(lines) {
		to = len(lines)
	}
	for _, l := range lines[from:to] {
		if reOwnerAssert.MatchString(l) {
			return true
		}
	}
	return false
}
