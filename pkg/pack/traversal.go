// File: pkg/pack/traversal.go
package pack

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// CollectSegments walks the tree under cfg.Root and reads every file with a
// target extension. Within a directory, files are handled before its
// subdirectories, each in listing order. Ignored directories are dropped from
// the listing before descent, so their subtrees are never opened.
//
// Only non-regular files and symlinks to them are skipped. A directory that
// cannot be listed, the root included, is logged and skipped; unreadable
// files become error segments.
func CollectSegments(cfg Config, logger *zap.Logger) ([]Segment, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	logger.Debug("Starting file traversal and collection", zap.String("root", root))

	entries, err := os.ReadDir(root)
	if err != nil {
		logger.Warn("Error accessing root directory during traversal", zap.String("path", root), zap.Error(err))
		return nil, nil
	}

	w := walker{cfg: cfg, root: root, logger: logger}
	w.visit(root, entries)

	logger.Debug("Completed file traversal and collection", zap.Int("matchedFiles", len(w.segments)))
	return w.segments, nil
}

type walker struct {
	cfg      Config
	root     string
	logger   *zap.Logger
	segments []Segment
}

// visit handles one directory whose entries have already been listed.
func (w *walker) visit(dir string, entries []fs.DirEntry) {
	files, dirs := w.split(dir, entries)

	for _, name := range files {
		if !w.cfg.MatchesExtension(name) {
			continue
		}
		filePath := filepath.Join(dir, name)
		w.segments = append(w.segments, ReadFileSegment(filePath, w.relative(filePath), w.logger))
	}

	for _, name := range pruneDirs(dirs, w.cfg) {
		sub := filepath.Join(dir, name)
		children, err := os.ReadDir(sub)
		if err != nil {
			w.logger.Warn("Error accessing directory during traversal", zap.String("path", sub), zap.Error(err))
			continue
		}
		w.visit(sub, children)
	}
}

// split separates directory entries into regular file names and
// subdirectory names. Symlinks are resolved for files only; directory
// symlinks, FIFOs, sockets and devices are dropped.
func (w *walker) split(dir string, entries []fs.DirEntry) (files, dirs []string) {
	for _, e := range entries {
		entryPath := filepath.Join(dir, e.Name())
		switch {
		case e.IsDir():
			dirs = append(dirs, e.Name())
		case e.Type().IsRegular():
			files = append(files, e.Name())
		case e.Type()&fs.ModeSymlink != 0:
			info, err := os.Stat(entryPath)
			if err != nil {
				w.logger.Debug("Skipping dangling symlink", zap.String("path", entryPath), zap.Error(err))
				continue
			}
			if !info.Mode().IsRegular() {
				w.logger.Debug("Skipping symlink to non-regular file", zap.String("path", entryPath), zap.Stringer("mode", info.Mode()))
				continue
			}
			files = append(files, e.Name())
		default:
			w.logger.Debug("Skipping non-regular file", zap.String("path", entryPath), zap.Stringer("mode", e.Type()))
		}
	}
	return files, dirs
}

// pruneDirs drops ignored directory names, keeping the order of the rest.
func pruneDirs(dirs []string, cfg Config) []string {
	kept := dirs[:0:0]
	for _, name := range dirs {
		if cfg.IsIgnoredDir(name) {
			continue
		}
		kept = append(kept, name)
	}
	return kept
}

func (w *walker) relative(filePath string) string {
	rel, err := filepath.Rel(w.root, filePath)
	if err != nil {
		w.logger.Warn("Unable to determine relative path, using absolute path",
			zap.String("filePath", filePath), zap.Error(err))
		return filePath
	}
	return rel
}
