package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/xab-mack/moveguard/internal/model"
)

type baseline struct {
	GeneratedAt  time.Time       `json:"generatedAt"`
	Fingerprints map[string]bool `json:"fingerprints"`
}

// ApplyBaseline drops findings whose fingerprint is recorded in the
// baseline file. An empty path is a no-op.
func ApplyBaseline(path string, findings []model.Finding) ([]model.Finding, error) {
	if path == "" {
		return findings, nil
	}
	b, err := loadBaseline(path)
	if err != nil {
		return nil, err
	}
	if len(b.Fingerprints) == 0 {
		return findings, nil
	}
	var out []model.Finding
	for _, f := range findings {
		if f.Fingerprint != "" && b.Fingerprints[f.Fingerprint] {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

// loadBaseline accepts both the bare fingerprint array written by
// WriteBaseline and the full struct form.
func loadBaseline(path string) (baseline, error) {
	var b baseline
	data, err := os.ReadFile(path)
	if err != nil {
		return b, fmt.Errorf("read baseline %s: %w", path, err)
	}
	var fp []string
	if err := json.Unmarshal(data, &fp); err == nil {
		m := make(map[string]bool, len(fp))
		for _, f := range fp {
			m[f] = true
		}
		b.Fingerprints = m
		return b, nil
	}
	if err := json.Unmarshal(data, &b); err != nil {
		return b, fmt.Errorf("parse baseline %s: %w", path, err)
	}
	if b.Fingerprints == nil {
		b.Fingerprints = map[string]bool{}
	}
	return b, nil
}

// WriteBaseline stores the deduplicated fingerprints of the given findings.
func WriteBaseline(path string, findings []model.Finding) error {
	if path == "" {
		return nil
	}
	seen := map[string]struct{}{}
	var arr []string
	for _, f := range findings {
		if f.Fingerprint == "" {
			continue
		}
		if _, ok := seen[f.Fingerprint]; ok {
			continue
		}
		seen[f.Fingerprint] = struct{}{}
		arr = append(arr, f.Fingerprint)
	}
	sort.Strings(arr)
	data, err := json.MarshalIndent(arr, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
