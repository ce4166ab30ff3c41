package report

import (
	"encoding/json"

	"github.com/xab-mack/moveguard/internal/model"
)

// JSON serializes the flat ordered finding list.
func JSON(findings []model.Finding) ([]byte, error) {
	if findings == nil {
		findings = []model.Finding{}
	}
	return json.MarshalIndent(findings, "", "  ")
}
