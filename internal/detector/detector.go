// Package detector holds the pattern detectors moveguard runs against Move
// contract source. Each detector is a pure pass over the raw text: it knows
// nothing about the Move AST and keeps no state between scans.
package detector

import (
	"github.com/xab-mack/moveguard/internal/model"
	"github.com/xab-mack/moveguard/internal/util"
)

// Detector checks one vulnerability class against a single file's source
// text. Check returns findings in line order; it must be deterministic and
// must not retain state between calls.
type Detector interface {
	Meta() model.RuleMeta
	Check(file, source string) []model.Finding
}

// newFinding builds a finding at the given 1-based line from a rule's
// static metadata. Column is always 0.
func newFinding(m model.RuleMeta, file, source string, line int) model.Finding {
	return model.Finding{
		RuleID:         m.ID,
		Severity:       m.Severity,
		Title:          m.Title,
		Description:    m.Description,
		Location:       model.Location{File: file, Line: line, Column: 0},
		Recommendation: m.Recommendation,
		Snippet:        util.ExtractSnippet(source, line, 3),
		References:     m.References,
		Fingerprint:    util.Fingerprint(m.ID, file, line, ""),
	}
}
