package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xab-mack/moveguard/internal/model"
)

func sampleFindings() []model.Finding {
	return []model.Finding{
		{
			RuleID:         "MOVE-REENTRANCY",
			Severity:       model.SeverityCritical,
			Title:          "Reentrancy Vulnerability",
			Description:    "External call followed by state change.",
			Location:       model.Location{File: "vault.move", Line: 5},
			Recommendation: "Apply checks-effects-interactions.",
		},
		{
			RuleID:         "MOVE-INT-OVERFLOW",
			Severity:       model.SeverityHigh,
			Title:          "Integer Overflow Vulnerability",
			Description:    "Arithmetic operation without overflow check.",
			Location:       model.Location{File: "pool.move", Line: 12},
			Recommendation: "Add overflow checks using assert!.",
		},
		{
			RuleID:         "MOVE-INT-OVERFLOW",
			Severity:       model.SeverityHigh,
			Title:          "Integer Overflow Vulnerability",
			Description:    "Arithmetic operation without overflow check.",
			Location:       model.Location{File: "pool.move", Line: 30},
			Recommendation: "Add overflow checks using assert!.",
		},
	}
}

func TestText_GroupsByTitle(t *testing.T) {
	out := Text(sampleFindings())

	assert.Equal(t, 1, strings.Count(out, "Reentrancy Vulnerability"))
	assert.Equal(t, 1, strings.Count(out, "Integer Overflow Vulnerability"))
	assert.Contains(t, out, "file://vault.move:5")
	assert.Contains(t, out, "file://pool.move:12")
	assert.Contains(t, out, "file://pool.move:30")
	assert.Contains(t, out, "Summary: 3 vulnerabilities found")
	// shared text rendered once per group
	assert.Equal(t, 1, strings.Count(out, "Add overflow checks using assert!."))
	// groups render in first-seen order
	assert.Less(t,
		strings.Index(out, "Reentrancy Vulnerability"),
		strings.Index(out, "Integer Overflow Vulnerability"))
}

func TestText_EmptyScanStillSummarizes(t *testing.T) {
	out := Text(nil)
	assert.Contains(t, out, "Summary: 0 vulnerabilities found")
}

func TestJSON_FlatOrderedList(t *testing.T) {
	data, err := JSON(sampleFindings())
	require.NoError(t, err)

	var got []model.Finding
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, sampleFindings(), got)
	assert.Contains(t, string(data), `"severity": "critical"`)
	assert.Contains(t, string(data), `"line": 5`)
}

func TestJSON_NilFindings(t *testing.T) {
	data, err := JSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestToSARIF_Levels(t *testing.T) {
	data, err := ToSARIF(sampleFindings())
	require.NoError(t, err)

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Results []struct {
				RuleID string `json:"ruleId"`
				Level  string `json:"level"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)
	require.Len(t, doc.Runs[0].Results, 3)
	assert.Equal(t, "error", doc.Runs[0].Results[0].Level)
}

func TestRender_UnknownFormatFails(t *testing.T) {
	_, err := Render("yaml", sampleFindings())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRender_KnownFormats(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON, FormatSARIF} {
		out, err := Render(format, sampleFindings())
		require.NoError(t, err, format)
		assert.NotEmpty(t, out, format)
	}
}
