// Package pack aggregates a project's source files and its rules document
// into one text file for pasting into an AI assistant.
package pack

import (
	"fmt"
	"path/filepath"
	"time"

	"ctxpack/pkg/clipboard"

	"go.uber.org/zap"
)

// Observer receives progress notifications during a run.
type Observer interface {
	Started(root string)
	RulesLoaded(name string, found bool)
	ScanStarted(root string)
}

// Summary describes a finished run.
type Summary struct {
	Root       string           // Absolute traversal root.
	OutputPath string           // Output file name relative to the root.
	Packed     int              // File segments read successfully.
	Failed     int              // File segments carrying an error marker.
	HasRules   bool             // Whether a rules segment was emitted.
	Bytes      int              // Size of the aggregate in bytes.
	Clipboard  clipboard.Result // Outcome of the clipboard step.
}

// Packer runs the read, collect, persist and copy steps in order.
type Packer struct {
	cfg      Config
	copier   clipboard.Copier
	observer Observer
	logger   *zap.Logger
}

// New creates a Packer. copier and observer may be nil.
func New(cfg Config, copier clipboard.Copier, observer Observer, logger *zap.Logger) *Packer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Packer{cfg: cfg, copier: copier, observer: observer, logger: logger}
}

// Run performs one packing pass. It fails only when the root path cannot be
// resolved or the output file cannot be written; the clipboard outcome is
// reported on the Summary.
func (p *Packer) Run() (Summary, error) {
	startTime := time.Now()

	root, err := filepath.Abs(p.cfg.Root)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to get absolute path: %w", err)
	}
	p.logger.Info("Starting pack", zap.String("root", root))
	if p.observer != nil {
		p.observer.Started(root)
	}

	rules := ReadRules(p.cfg, p.logger)
	if p.observer != nil {
		p.observer.RulesLoaded(p.cfg.RulesFile, rules != nil)
		p.observer.ScanStarted(root)
	}

	files, err := CollectSegments(p.cfg, p.logger)
	if err != nil {
		p.logger.Error("Failed to collect files", zap.Error(err))
		return Summary{}, fmt.Errorf("failed to collect files: %w", err)
	}

	agg := Aggregate{Rules: rules, Files: files}
	text := agg.Text()

	if err := WriteOutput(p.cfg.OutputPath(), text, p.logger); err != nil {
		return Summary{}, fmt.Errorf("failed to write aggregate: %w", err)
	}

	res := clipboard.Try(p.copier, text)
	if res.Attempted && res.Err != nil {
		p.logger.Warn("Clipboard copy failed", zap.Error(res.Err))
	}

	summary := Summary{
		Root:       root,
		OutputPath: p.cfg.OutputFile,
		Packed:     agg.Packed(),
		Failed:     len(files) - agg.Packed(),
		HasRules:   rules != nil,
		Bytes:      len(text),
		Clipboard:  res,
	}
	p.logger.Info("Pack completed",
		zap.String("outputFile", p.cfg.OutputPath()),
		zap.Int("packedFiles", summary.Packed),
		zap.Int("failedFiles", summary.Failed),
		zap.Bool("clipboard", res.OK()),
		zap.Duration("elapsed", time.Since(startTime)))
	return summary, nil
}
