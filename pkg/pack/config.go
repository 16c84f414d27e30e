// File: pkg/pack/config.go
package pack

import (
	"path/filepath"
	"strings"
)

// Default configuration values.
const (
	DefaultRulesFile  = "_AI_RULES.md"
	DefaultOutputFile = "_context_for_ai.txt"
)

// Config holds the options for one packing run. It is built once and passed
// by value; the lookup sets are never mutated after construction.
type Config struct {
	Root       string              // Traversal root; rules and output files are resolved against it.
	RulesFile  string              // Name of the optional rules document.
	OutputFile string              // Name of the aggregate output file.
	extensions map[string]struct{} // Lower-cased target extensions, including the leading dot.
	ignored    map[string]struct{} // Folder names pruned together with their subtrees.
}

// DefaultConfig returns the standard configuration rooted at root.
func DefaultConfig(root string) Config {
	return NewConfig(
		root,
		DefaultRulesFile,
		DefaultOutputFile,
		[]string{".cs", ".xaml", ".config", ".xml"},
		[]string{"obj", "bin", ".git", ".vs", "packages", "Properties"},
	)
}

// NewConfig builds a Config. Extensions are matched case-insensitively and
// may be given with or without the leading dot; folder names match exactly.
func NewConfig(root, rulesFile, outputFile string, extensions, ignoredDirs []string) Config {
	cfg := Config{
		Root:       root,
		RulesFile:  rulesFile,
		OutputFile: outputFile,
		extensions: make(map[string]struct{}, len(extensions)),
		ignored:    make(map[string]struct{}, len(ignoredDirs)),
	}
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.extensions[ext] = struct{}{}
	}
	for _, name := range ignoredDirs {
		cfg.ignored[name] = struct{}{}
	}
	return cfg
}

// MatchesExtension reports whether the file name carries a target extension.
// Leading dots belong to the name, so ".xml" alone has no extension.
func (c Config) MatchesExtension(name string) bool {
	if !strings.Contains(strings.TrimLeft(name, "."), ".") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := c.extensions[ext]
	return ok
}

// IsIgnoredDir reports whether a directory with this name is pruned.
func (c Config) IsIgnoredDir(name string) bool {
	_, ok := c.ignored[name]
	return ok
}

// RulesPath is the location of the rules document.
func (c Config) RulesPath() string {
	return filepath.Join(c.Root, c.RulesFile)
}

// OutputPath is the location of the aggregate output file.
func (c Config) OutputPath() string {
	return filepath.Join(c.Root, c.OutputFile)
}
