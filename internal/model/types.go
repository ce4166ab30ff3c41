package model

import "time"

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func ParseSeverity(s string) Severity {
	switch s {
	case string(SeverityCritical):
		return SeverityCritical
	case string(SeverityHigh):
		return SeverityHigh
	case string(SeverityMedium):
		return SeverityMedium
	case string(SeverityLow):
		return SeverityLow
	default:
		return SeverityInfo
	}
}

func SeverityGTE(a, b Severity) bool {
	order := map[Severity]int{SeverityInfo: 1, SeverityLow: 2, SeverityMedium: 3, SeverityHigh: 4, SeverityCritical: 5}
	return order[a] >= order[b]
}

// RuleMeta is the static taxonomy entry for one detector: everything about
// a finding except where it was found. Severity and all texts are constants
// of the rule, never derived from the match.
type RuleMeta struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
	References     []string `json:"references,omitempty"`
	Experimental   bool     `json:"experimental,omitempty"`
}

// Location is a physical source position. Line is 1-based; Column is always
// 0 (no lexical column tracking).
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type Finding struct {
	RuleID         string   `json:"ruleId"`
	Severity       Severity `json:"severity"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Location       Location `json:"location"`
	Recommendation string   `json:"recommendation"`
	Snippet        string   `json:"snippet,omitempty"`
	References     []string `json:"references,omitempty"`
	Fingerprint    string   `json:"fingerprint,omitempty"`
}

type ScanRequest struct {
	Path         string
	Experimental bool
	ConfigPath   string
}

type ScanResult struct {
	Findings []Finding     `json:"findings"`
	Files    int           `json:"files"`
	Elapsed  time.Duration `json:"elapsed"`
}
