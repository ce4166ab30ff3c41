package detector

import (
	"regexp"
	"strings"

	"github.com/xab-mack/moveguard/internal/model"
)

// heuristic is the shared shape of the experimental single-pass detectors:
// a trigger pattern, an optional any-of keyword requirement, and optional
// negative keywords that veto a match on the same line.
type heuristic struct {
	meta     model.RuleMeta
	trigger  *regexp.Regexp
	requires []string
	excludes []string
}

func (d *heuristic) Meta() model.RuleMeta { return d.meta }

func (d *heuristic) Check(file, source string) []model.Finding {
	var findings []model.Finding
scan:
	for i, line := range strings.Split(source, "\n") {
		if !d.trigger.MatchString(line) {
			continue
		}
		if len(d.requires) > 0 {
			ok := false
			for _, kw := range d.requires {
				if strings.Contains(line, kw) {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}
		for _, kw := range d.excludes {
			if strings.Contains(line, kw) {
				continue scan
			}
		}
		findings = append(findings, newFinding(d.meta, file, source, i+1))
	}
	return findings
}

func newUnboundedExecution() Detector {
	return &heuristic{
		meta: model.RuleMeta{
			ID:       "MOVE-UNBOUNDED-EXEC",
			Title:    "Unbounded Execution Vulnerability",
			Severity: model.SeverityHigh,
			Description: "Potential unbounded execution: Loop condition may be user-controlled or unbounded, " +
				"leading to denial-of-service via gas exhaustion.",
			Recommendation: "Limit loop iterations, use data structures that prevent unbounded growth, or add " +
				"explicit iteration caps.",
			Experimental: true,
		},
		trigger:  regexp.MustCompile(`while\s*\(`),
		requires: []string{"vector::length", "len", "user", "input"},
	}
}

func newGenericsTypeCheck() Detector {
	return &heuristic{
		meta: model.RuleMeta{
			ID:       "MOVE-GENERIC-TYPE-CHECK",
			Title:    "Lack of Generics Type Checking Vulnerability",
			Severity: model.SeverityCritical,
			Description: "Public function with generic type parameter does not check type validity. This can " +
				"allow attackers to exploit type mismatches and drain assets.",
			Recommendation: "Add type checks/assertions to ensure the generic type matches the expected or " +
				"whitelisted type.",
			Experimental: true,
		},
		trigger:  regexp.MustCompile(`public\s+fun\s+\w+<`),
		excludes: []string{"type_of", "assert!"},
	}
}

func newPriceOracleManipulation() Detector {
	return &heuristic{
		meta: model.RuleMeta{
			ID:       "MOVE-PRICE-ORACLE",
			Title:    "Price Oracle Manipulation Vulnerability",
			Severity: model.SeverityCritical,
			Description: "Potential price oracle manipulation: Price is calculated from on-chain ratios or " +
				"manipulable sources without external validation.",
			Recommendation: "Use time-weighted or external oracles, and validate price sources to prevent " +
				"manipulation.",
			Experimental: true,
		},
		trigger:  regexp.MustCompile(`token_a\s*/\s*token_b|token_b\s*/\s*token_a|liquidity_ratio|price`),
		excludes: []string{"oracle"},
	}
}

func newArithmeticPrecision() Detector {
	return &heuristic{
		meta: model.RuleMeta{
			ID:       "MOVE-PRECISION-LOSS",
			Title:    "Arithmetic Precision Error Vulnerability",
			Severity: model.SeverityMedium,
			Description: "Potential arithmetic precision error: Division or multiplication may cause rounding " +
				"errors, allowing users to bypass fees or receive incorrect payouts.",
			Recommendation: "Require minimum amounts or ensure nonzero results after division/multiplication.",
			Experimental:   true,
		},
		trigger:  regexp.MustCompile(`/\s*\d+`),
		requires: []string{"fee", "amount", "size"},
	}
}

func newAccountRegistration() Detector {
	return &heuristic{
		meta: model.RuleMeta{
			ID:       "MOVE-ACCOUNT-REGISTRATION",
			Title:    "Lack of Account Registration Check Vulnerability",
			Severity: model.SeverityMedium,
			Description: "Potential lack of account registration check: Coin operations performed without " +
				"checking or registering the account, which can cause failed transactions or stuck funds.",
			Recommendation: "Always check and register accounts before coin operations.",
			Experimental:   true,
		},
		trigger:  regexp.MustCompile(`coin::(deposit|withdraw)`),
		excludes: []string{"is_account_registered", "register"},
	}
}

func newResourceManagement() Detector {
	return &heuristic{
		meta: model.RuleMeta{
			ID:       "MOVE-GLOBAL-RESOURCE",
			Title:    "Improper Resource Management Vulnerability",
			Severity: model.SeverityLow,
			Description: "Improper resource management: Resources are stored globally instead of in user " +
				"accounts, leading to ambiguous ownership and potential DoS.",
			Recommendation: "Store resources in user accounts whenever possible.",
			Experimental:   true,
		},
		trigger: regexp.MustCompile(`struct\s+\w+\s+has\s+key\s*\{[^}]*vector<`),
	}
}

func newBusinessLogicFlaw() Detector {
	return &heuristic{
		meta: model.RuleMeta{
			ID:       "MOVE-BUSINESS-LOGIC",
			Title:    "Business Logic Flaw Vulnerability",
			Severity: model.SeverityHigh,
			Description: "Potential business logic flaw: Function may allow repeated actions (e.g., double " +
				"withdrawal) or lacks invariant checks, leading to loss of funds or protocol failure.",
			Recommendation: "Carefully review and test all business logic paths, and enforce invariants with " +
				"assertions.",
			Experimental: true,
		},
		trigger:  regexp.MustCompile(`withdraw|deposit|transfer`),
		excludes: []string{"assert!"},
	}
}
