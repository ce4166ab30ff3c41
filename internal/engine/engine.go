package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xab-mack/moveguard/internal/config"
	"github.com/xab-mack/moveguard/internal/detector"
	"github.com/xab-mack/moveguard/internal/logging"
	"github.com/xab-mack/moveguard/internal/model"
)

// moveExt marks contract source files during directory scans.
const moveExt = ".move"

type Engine struct {
	registry *detector.Registry
	cfg      config.Config
}

// New builds an engine with the shipped detector set. The registry is
// resolved once here; every scan reuses it.
func New(req model.ScanRequest) (*Engine, error) {
	cfgDir := req.ConfigPath
	if cfgDir == "" {
		cfgDir = req.Path
	}
	cfg, path, err := config.Load(cfgDir)
	if err != nil {
		return nil, err
	}
	if path != "" {
		logging.Logger.Debugw("loaded config", "path", path)
	}
	reg := detector.NewRegistry()
	reg.RegisterBuiltin()
	if req.Experimental || cfg.Experimental {
		reg.RegisterExperimental()
	}
	return &Engine{registry: reg, cfg: cfg}, nil
}

// Registry exposes the resolved detector set, e.g. for listing rules.
func (e *Engine) Registry() *detector.Registry { return e.registry }

// Scan analyzes the file or directory at req.Path. Directory scans visit
// direct children only and abort on the first unreadable file.
func (e *Engine) Scan(req model.ScanRequest) (*model.ScanResult, error) {
	start := time.Now()
	fi, err := os.Stat(req.Path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", req.Path, err)
	}

	var findings []model.Finding
	files := 0
	if fi.IsDir() {
		findings, files, err = e.scanDir(req.Path)
	} else {
		findings, err = e.scanFile(req.Path)
		files = 1
	}
	if err != nil {
		return nil, err
	}

	findings = applyIgnores(findings, e.cfg)
	findings = filterByDetectors(findings, e.cfg)
	findings = filterBySeverity(findings, e.cfg)
	return &model.ScanResult{Findings: findings, Files: files, Elapsed: time.Since(start)}, nil
}

func (e *Engine) scanFile(path string) ([]model.Finding, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read contract %s: %w", path, err)
	}
	logging.Logger.Debugw("scanning file", "path", path, "bytes", len(b))
	findings := e.registry.Run(filepath.ToSlash(path), string(b))
	return findings, nil
}

// scanDir enumerates direct entries only; subdirectories and files without
// the .move extension are skipped silently.
func (e *Engine) scanDir(dir string) ([]model.Finding, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("read directory %s: %w", dir, err)
	}
	var out []model.Finding
	files := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), moveExt) {
			continue
		}
		fs, err := e.scanFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, 0, err
		}
		out = append(out, fs...)
		files++
	}
	return out, files, nil
}
