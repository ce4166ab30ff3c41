package report

import (
	"fmt"

	"github.com/xab-mack/moveguard/internal/model"
)

const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatSARIF = "sarif"
)

// Render produces the selected report. Unknown formats are an explicit
// error, matching the I/O error policy.
func Render(format string, findings []model.Finding) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(Text(findings)), nil
	case FormatJSON:
		return JSON(findings)
	case FormatSARIF:
		return ToSARIF(findings)
	default:
		return nil, fmt.Errorf("unknown format %q (want text, json or sarif)", format)
	}
}
